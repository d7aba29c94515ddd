package models

import (
	"time"
)

type Category struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"display_order" gorm:"default:999"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
