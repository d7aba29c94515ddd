package services

import (
	"errors"

	"thinkscope-cms/models"
	"thinkscope-cms/repositories"

	"gorm.io/gorm"
)

type AuthorService interface {
	GetAll(activeOnly bool, role string) ([]models.AuthorWithCategories, error)
	GetByID(id uint) (*models.AuthorWithCategories, error)
	GetByEmail(email string) (*models.Author, error)
	GetByRole(role models.AuthorRole) ([]models.Author, error)
	GetAuthorCategories(authorID uint) ([]models.AuthorCategoryAssignment, error)
	Create(req models.CreateAuthorRequest) (*models.AuthorWithCategories, error)
	Update(id uint, req models.UpdateAuthorRequest) (*models.AuthorWithCategories, error)
	Delete(id uint) error
	AssignCategories(authorID uint, categoryIDs []uint) error
	CanWriteForCategory(authorID, categoryID uint) (bool, error)
}

type authorService struct {
	authorRepo  repositories.AuthorRepository
	articleRepo repositories.ArticleRepository
}

func NewAuthorService(authorRepo repositories.AuthorRepository, articleRepo repositories.ArticleRepository) AuthorService {
	return &authorService{
		authorRepo:  authorRepo,
		articleRepo: articleRepo,
	}
}

// GetAll lists authors by name, active-only unless the caller opts out, with
// their assigned categories attached.
func (s *authorService) GetAll(activeOnly bool, role string) ([]models.AuthorWithCategories, error) {
	q := repositories.ListQuery{
		SortBy:    "name",
		SortOrder: "asc",
	}

	if activeOnly {
		q.Filters = append(q.Filters, repositories.Filter{
			Field: "is_active", Op: repositories.OpEq, Value: true,
		})
	}
	if role != "" {
		q.Filters = append(q.Filters, repositories.Filter{
			Field: "role", Op: repositories.OpEq, Value: role,
		})
	}

	authors, err := s.authorRepo.List(q)
	if err != nil {
		return nil, err
	}

	result := make([]models.AuthorWithCategories, 0, len(authors))
	for _, author := range authors {
		withCategories, err := s.attachCategories(author)
		if err != nil {
			return nil, err
		}
		result = append(result, *withCategories)
	}
	return result, nil
}

func (s *authorService) GetByID(id uint) (*models.AuthorWithCategories, error) {
	author, err := s.authorRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "author not found"}
		}
		return nil, err
	}
	return s.attachCategories(*author)
}

func (s *authorService) GetByEmail(email string) (*models.Author, error) {
	authors, err := s.authorRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "email", Op: repositories.OpEq, Value: email},
		},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, models.ErrorNotFound{Message: "author not found"}
	}
	return &authors[0], nil
}

func (s *authorService) GetByRole(role models.AuthorRole) ([]models.Author, error) {
	return s.authorRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "role", Op: repositories.OpEq, Value: role},
			{Field: "is_active", Op: repositories.OpEq, Value: true},
		},
		SortBy:    "name",
		SortOrder: "asc",
	})
}

func (s *authorService) GetAuthorCategories(authorID uint) ([]models.AuthorCategoryAssignment, error) {
	return s.authorRepo.GetAssignments(authorID)
}

func (s *authorService) Create(req models.CreateAuthorRequest) (*models.AuthorWithCategories, error) {
	existing, err := s.authorRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "email", Op: repositories.OpEq, Value: req.Email},
		},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, models.ErrorConflict{Message: "an author with this email already exists"}
	}

	role := req.Role
	if role == "" {
		role = models.RoleWriter
	}

	author := &models.Author{
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		Role:      role,
		IsActive:  true,
	}
	if req.IsActive != nil {
		author.IsActive = *req.IsActive
	}

	if err := s.authorRepo.Create(author); err != nil {
		return nil, err
	}

	if len(req.CategoryIDs) > 0 {
		if err := s.authorRepo.ReplaceAssignments(author.ID, req.CategoryIDs); err != nil {
			return nil, err
		}
	}

	return s.attachCategories(*author)
}

func (s *authorService) Update(id uint, req models.UpdateAuthorRequest) (*models.AuthorWithCategories, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	var author *models.Author
	var err error

	if len(fields) > 0 {
		author, err = s.authorRepo.Updates(id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "author not found"}
			}
			return nil, err
		}
	} else {
		author, err = s.authorRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "author not found"}
			}
			return nil, err
		}
	}

	if req.CategoryIDs != nil {
		if err := s.authorRepo.ReplaceAssignments(id, req.CategoryIDs); err != nil {
			return nil, err
		}
	}

	return s.attachCategories(*author)
}

// Delete refuses to remove an author who still has articles; the caller must
// reassign or delete those first.
func (s *authorService) Delete(id uint) error {
	if _, err := s.authorRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "author not found"}
		}
		return err
	}

	count, err := s.articleRepo.CountByAuthor(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrorValidation{
			Message: "cannot delete author with existing articles; reassign or delete the articles first",
		}
	}

	return s.authorRepo.Delete(id)
}

func (s *authorService) AssignCategories(authorID uint, categoryIDs []uint) error {
	return s.authorRepo.ReplaceAssignments(authorID, categoryIDs)
}

// CanWriteForCategory: admin and editor write anywhere; writers and
// contributors need an assignment row; inactive or missing authors never can.
func (s *authorService) CanWriteForCategory(authorID, categoryID uint) (bool, error) {
	author, err := s.authorRepo.GetByID(authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if !author.IsActive {
		return false, nil
	}

	if author.Role == models.RoleAdmin || author.Role == models.RoleEditor {
		return true, nil
	}

	assignments, err := s.authorRepo.GetAssignments(authorID)
	if err != nil {
		return false, err
	}
	for _, a := range assignments {
		if a.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (s *authorService) attachCategories(author models.Author) (*models.AuthorWithCategories, error) {
	assignments, err := s.authorRepo.GetAssignments(author.ID)
	if err != nil {
		return nil, err
	}

	result := &models.AuthorWithCategories{
		Author:             author,
		CategoryIDs:        make([]uint, 0, len(assignments)),
		AssignedCategories: make([]models.Category, 0, len(assignments)),
	}
	for _, a := range assignments {
		result.CategoryIDs = append(result.CategoryIDs, a.CategoryID)
		if a.Category != nil {
			result.AssignedCategories = append(result.AssignedCategories, *a.Category)
		}
	}
	return result, nil
}
