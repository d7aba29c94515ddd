package services

import (
	"errors"

	"thinkscope-cms/helper"
	"thinkscope-cms/models"
	"thinkscope-cms/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	GetAll(activeOnly bool) ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	ActiveCount() (int64, error)
	Create(req models.CreateCategoryRequest) (*models.Category, error)
	Update(id uint, req models.UpdateCategoryRequest) (*models.Category, error)
	Delete(id uint) error
	ToggleActive(id uint, isActive bool) (*models.Category, error)
	Reorder(categoryIDs []uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// GetAll lists categories in display order. Public reads keep the
// active-only default; the admin listing passes activeOnly=false.
func (s *categoryService) GetAll(activeOnly bool) ([]models.Category, error) {
	q := repositories.ListQuery{
		SortBy:    "display_order",
		SortOrder: "asc",
	}

	if activeOnly {
		q.Filters = append(q.Filters, repositories.Filter{
			Field: "is_active", Op: repositories.OpEq, Value: true,
		})
	}

	return s.categoryRepo.List(q)
}

func (s *categoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "category not found"}
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetBySlug(slug string) (*models.Category, error) {
	categories, err := s.categoryRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "slug", Op: repositories.OpEq, Value: slug},
		},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, models.ErrorNotFound{Message: "category not found"}
	}
	return &categories[0], nil
}

func (s *categoryService) ActiveCount() (int64, error) {
	return s.categoryRepo.Count(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "is_active", Op: repositories.OpEq, Value: true},
		},
	})
}

func (s *categoryService) Create(req models.CreateCategoryRequest) (*models.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = helper.GenerateSlug(req.Name)
	}

	existing, err := s.categoryRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "slug", Op: repositories.OpEq, Value: slug},
		},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, models.ErrorConflict{Message: "a category with this slug already exists"}
	}

	category := &models.Category{
		Name:         req.Name,
		Slug:         slug,
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: 999,
		IsActive:     true,
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) Update(id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Slug != nil {
		fields["slug"] = *req.Slug
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Icon != nil {
		fields["icon"] = *req.Icon
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) == 0 {
		return nil, models.ErrorValidation{Message: "no fields to update"}
	}

	category, err := s.categoryRepo.Updates(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "category not found"}
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(id uint) error {
	err := s.categoryRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Message: "category not found"}
	}
	return err
}

func (s *categoryService) ToggleActive(id uint, isActive bool) (*models.Category, error) {
	category, err := s.categoryRepo.Updates(id, map[string]interface{}{"is_active": isActive})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "category not found"}
		}
		return nil, err
	}
	return category, nil
}

// Reorder assigns sequential display_order values following the given id
// list. The repository runs it in one transaction.
func (s *categoryService) Reorder(categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return models.ErrorValidation{Message: "category_ids must not be empty"}
	}

	err := s.categoryRepo.Reorder(categoryIDs)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Message: "category not found"}
	}
	return err
}
