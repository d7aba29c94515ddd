package models

import (
	"time"
)

type AuthorRole string

const (
	RoleAdmin       AuthorRole = "admin"
	RoleEditor      AuthorRole = "editor"
	RoleWriter      AuthorRole = "writer"
	RoleContributor AuthorRole = "contributor"
)

type Author struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	Name      string     `json:"name" gorm:"not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Bio       string     `json:"bio"`
	AvatarURL string     `json:"avatar_url"`
	Role      AuthorRole `json:"role" gorm:"default:'writer'"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AuthorCategoryAssignment grants a writer/contributor author permission to
// publish under a category. Admin and editor roles bypass assignments.
type AuthorCategoryAssignment struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	AuthorID   uint      `json:"author_id" gorm:"index:idx_author_category,unique;not null"`
	CategoryID uint      `json:"category_id" gorm:"index:idx_author_category,unique;not null"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthorWithCategories struct {
	Author
	CategoryIDs        []uint     `json:"category_ids"`
	AssignedCategories []Category `json:"assigned_categories"`
}
