package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type CreateArticleRequest struct {
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	Excerpt          string        `json:"excerpt"`
	Content          string        `json:"content"`
	CategoryID       uint          `json:"category_id"`
	AuthorID         *uint         `json:"author_id"`
	FeaturedImageURL string        `json:"featured_image_url"`
	FeaturedImageAlt string        `json:"featured_image_alt"`
	MetaTitle        string        `json:"meta_title"`
	MetaDescription  string        `json:"meta_description"`
	MetaKeywords     string        `json:"meta_keywords"`
	ReadTime         string        `json:"read_time"`
	Status           ArticleStatus `json:"status"`
}

// UpdateArticleRequest uses pointer fields so absent keys are left untouched,
// mirroring a PATCH body.
type UpdateArticleRequest struct {
	Title            *string        `json:"title"`
	Slug             *string        `json:"slug"`
	Excerpt          *string        `json:"excerpt"`
	Content          *string        `json:"content"`
	CategoryID       *uint          `json:"category_id"`
	AuthorID         *uint          `json:"author_id"`
	FeaturedImageURL *string        `json:"featured_image_url"`
	FeaturedImageAlt *string        `json:"featured_image_alt"`
	MetaTitle        *string        `json:"meta_title"`
	MetaDescription  *string        `json:"meta_description"`
	MetaKeywords     *string        `json:"meta_keywords"`
	ReadTime         *string        `json:"read_time"`
	Status           *ArticleStatus `json:"status"`
}

type ArticleListOptions struct {
	Status     string `form:"status"`
	CategoryID uint   `form:"category_id"`
	AuthorID   uint   `form:"author_id"`
	Search     string `form:"search"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
	SortBy     string `form:"sort_by,default=published_at"`
	SortOrder  string `form:"sort_order,default=desc"`
}

type CreateCategoryRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	DisplayOrder *int   `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type ReorderCategoriesRequest struct {
	CategoryIDs []uint `json:"category_ids"`
}

type CreateAuthorRequest struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Bio         string     `json:"bio"`
	AvatarURL   string     `json:"avatar_url"`
	Role        AuthorRole `json:"role"`
	IsActive    *bool      `json:"is_active"`
	CategoryIDs []uint     `json:"category_ids"`
}

type UpdateAuthorRequest struct {
	Name        *string     `json:"name"`
	Email       *string     `json:"email"`
	Bio         *string     `json:"bio"`
	AvatarURL   *string     `json:"avatar_url"`
	Role        *AuthorRole `json:"role"`
	IsActive    *bool       `json:"is_active"`
	CategoryIDs []uint      `json:"category_ids"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
