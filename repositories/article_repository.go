package repositories

import (
	"thinkscope-cms/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	List(q ListQuery) ([]models.Article, error)
	Count(q ListQuery) (int64, error)
	Updates(id uint, fields map[string]interface{}) (*models.Article, error)
	Delete(id uint) error
	IncrementViewCount(id uint) error
	CountByAuthor(authorID uint) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Author").First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(q ListQuery) ([]models.Article, error) {
	var articles []models.Article
	err := Apply(r.db.Model(&models.Article{}), q).Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Count(q ListQuery) (int64, error) {
	var total int64
	err := ApplyFilters(r.db.Model(&models.Article{}), q).Count(&total).Error
	return total, err
}

func (r *articleRepository) Updates(id uint, fields map[string]interface{}) (*models.Article, error) {
	result := r.db.Model(&models.Article{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *articleRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViewCount bumps the counter in a single UPDATE so concurrent
// readers never lose increments.
func (r *articleRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *articleRepository) CountByAuthor(authorID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).Where("author_id = ?", authorID).Count(&total).Error
	return total, err
}
