package models

import (
	"time"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

type Article struct {
	ID               uint          `json:"id" gorm:"primarykey"`
	Title            string        `json:"title" gorm:"not null"`
	Slug             string        `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt          string        `json:"excerpt" gorm:"type:text"`
	Content          string        `json:"content" gorm:"type:text"`
	CategoryID       uint          `json:"category_id" gorm:"not null;index"`
	Category         *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	AuthorID         *uint         `json:"author_id" gorm:"index"`
	Author           *Author       `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	FeaturedImageURL string        `json:"featured_image_url"`
	FeaturedImageAlt string        `json:"featured_image_alt"`
	MetaTitle        string        `json:"meta_title"`
	MetaDescription  string        `json:"meta_description"`
	MetaKeywords     string        `json:"meta_keywords"`
	ReadTime         string        `json:"read_time"`
	ViewCount        int           `json:"view_count" gorm:"default:0"`
	Status           ArticleStatus `json:"status" gorm:"default:'draft';index"`
	PublishedAt      *time.Time    `json:"published_at"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
