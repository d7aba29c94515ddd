package repositories

import (
	"thinkscope-cms/models"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	Create(author *models.Author) error
	GetByID(id uint) (*models.Author, error)
	List(q ListQuery) ([]models.Author, error)
	Updates(id uint, fields map[string]interface{}) (*models.Author, error)
	Delete(id uint) error
	GetAssignments(authorID uint) ([]models.AuthorCategoryAssignment, error)
	GetAssignmentsByCategory(categoryID uint) ([]models.AuthorCategoryAssignment, error)
	ReplaceAssignments(authorID uint, categoryIDs []uint) error
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(author *models.Author) error {
	return r.db.Create(author).Error
}

func (r *authorRepository) GetByID(id uint) (*models.Author, error) {
	var author models.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) List(q ListQuery) ([]models.Author, error) {
	var authors []models.Author
	err := Apply(r.db.Model(&models.Author{}), q).Find(&authors).Error
	return authors, err
}

func (r *authorRepository) Updates(id uint, fields map[string]interface{}) (*models.Author, error) {
	result := r.db.Model(&models.Author{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete removes the author and their category assignments together.
func (r *authorRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).
			Delete(&models.AuthorCategoryAssignment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Author{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *authorRepository) GetAssignments(authorID uint) ([]models.AuthorCategoryAssignment, error) {
	var assignments []models.AuthorCategoryAssignment
	err := r.db.Preload("Category").
		Where("author_id = ?", authorID).
		Order("category_id asc").
		Find(&assignments).Error
	return assignments, err
}

func (r *authorRepository) GetAssignmentsByCategory(categoryID uint) ([]models.AuthorCategoryAssignment, error) {
	var assignments []models.AuthorCategoryAssignment
	err := r.db.Where("category_id = ?", categoryID).
		Order("author_id asc").
		Find(&assignments).Error
	return assignments, err
}

// ReplaceAssignments swaps the full assignment set for an author in one
// transaction (delete existing, insert the new list).
func (r *authorRepository) ReplaceAssignments(authorID uint, categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", authorID).
			Delete(&models.AuthorCategoryAssignment{}).Error; err != nil {
			return err
		}

		if len(categoryIDs) == 0 {
			return nil
		}

		assignments := make([]models.AuthorCategoryAssignment, 0, len(categoryIDs))
		for _, categoryID := range categoryIDs {
			assignments = append(assignments, models.AuthorCategoryAssignment{
				AuthorID:   authorID,
				CategoryID: categoryID,
			})
		}
		return tx.Create(&assignments).Error
	})
}
