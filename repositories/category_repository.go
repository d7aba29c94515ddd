package repositories

import (
	"thinkscope-cms/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	List(q ListQuery) ([]models.Category, error)
	Count(q ListQuery) (int64, error)
	Updates(id uint, fields map[string]interface{}) (*models.Category, error)
	Delete(id uint) error
	Reorder(categoryIDs []uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(q ListQuery) ([]models.Category, error) {
	var categories []models.Category
	err := Apply(r.db.Model(&models.Category{}), q).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Count(q ListQuery) (int64, error) {
	var total int64
	err := ApplyFilters(r.db.Model(&models.Category{}), q).Count(&total).Error
	return total, err
}

func (r *categoryRepository) Updates(id uint, fields map[string]interface{}) (*models.Category, error) {
	result := r.db.Model(&models.Category{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *categoryRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reorder reassigns display_order by position in one transaction, so a
// failed update never leaves a mixed ordering behind.
func (r *categoryRepository) Reorder(categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range categoryIDs {
			result := tx.Model(&models.Category{}).
				Where("id = ?", id).
				UpdateColumn("display_order", i+1)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
