package config

import (
	"os"
)

type Config struct {
	Port        string
	SiteBaseURL string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	ContactEmail string

	// Fallback admin credential for bootstrapping before any admin user
	// exists in the database. Optional.
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	loadJWT()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		SiteBaseURL:   getEnv("SITE_BASE_URL", "https://thinkscope.in"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		ContactEmail:  os.Getenv("CONTACT_EMAIL"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
