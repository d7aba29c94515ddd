package main

import (
	"log"
	"net/http"
	"os"

	"thinkscope-cms/config"
	"thinkscope-cms/handlers"
	"thinkscope-cms/helper"
	"thinkscope-cms/logger"
	"thinkscope-cms/middleware"
	"thinkscope-cms/repositories"
	"thinkscope-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(os.Getenv("APP_ENV"))
	if envErr != nil {
		logger.Warn("no .env file found, using process environment", nil)
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	authorRepo := repositories.NewAuthorRepository(db)
	adminUserRepo := repositories.NewAdminUserRepository(db)

	// Initialize services
	articleService := services.NewArticleService(articleRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	authorService := services.NewAuthorService(authorRepo, articleRepo)
	authService := services.NewAuthService(adminUserRepo, cfg)
	mailService := services.NewMailService(cfg)
	feedService := services.NewFeedService(articleService, categoryService, cfg.SiteBaseURL)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	authorHandler := handlers.NewAuthorHandler(authorService, httpHelper)
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	contactHandler := handlers.NewContactHandler(mailService, httpHelper)
	feedHandler := handlers.NewFeedHandler(feedService)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// SEO artifacts
	router.GET("/feed.xml", feedHandler.RSS)
	router.GET("/sitemap.xml", feedHandler.Sitemap)
	router.GET("/news-sitemap.xml", feedHandler.NewsSitemap)
	router.GET("/image-sitemap.xml", feedHandler.ImageSitemap)

	// Public API routes
	api := router.Group("/api")
	{
		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.POST("", articleHandler.CreateArticle)
			articles.GET("/latest", articleHandler.GetLatest)
			articles.GET("/trending", articleHandler.GetTrending)
			articles.GET("/slug/:slug", articleHandler.GetArticleBySlug)
			articles.GET("/:id/related", articleHandler.GetRelated)
			articles.POST("/:id/view", articleHandler.IncrementView)
		}

		api.GET("/categories", categoryHandler.GetCategories)
		api.POST("/contact", contactHandler.SubmitContact)

		// Admin routes (bearer-token gated, except login)
		admin := api.Group("/admin")
		admin.POST("/login", authHandler.Login)

		protected := admin.Group("/")
		protected.Use(middleware.AuthMiddleware(authService))
		{
			protected.GET("/users", authHandler.GetUsers)
			protected.POST("/users", authHandler.CreateUser)

			protected.PATCH("/articles/:id", articleHandler.UpdateArticle)
			protected.DELETE("/articles/:id", articleHandler.DeleteArticle)
			protected.POST("/articles/:id/publish", articleHandler.PublishArticle)
			protected.POST("/articles/:id/unpublish", articleHandler.UnpublishArticle)
			protected.POST("/articles/:id/archive", articleHandler.ArchiveArticle)

			protected.GET("/categories/all", categoryHandler.GetAllCategories)
			protected.POST("/categories", categoryHandler.CreateCategory)
			protected.POST("/categories/reorder", categoryHandler.ReorderCategories)
			protected.PATCH("/categories/:id", categoryHandler.UpdateCategory)
			protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

			protected.GET("/authors", authorHandler.GetAuthors)
			protected.POST("/authors", authorHandler.CreateAuthor)
			protected.GET("/authors/:id", authorHandler.GetAuthor)
			protected.PATCH("/authors/:id", authorHandler.UpdateAuthor)
			protected.DELETE("/authors/:id", authorHandler.DeleteAuthor)
		}
	}

	// Start server
	logger.Info("server starting", map[string]interface{}{"port": cfg.Port})
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
