package services

import (
	"testing"

	"thinkscope-cms/models"
	"thinkscope-cms/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockAuthorRepo struct {
	authors     []models.Author
	assignments map[uint][]models.AuthorCategoryAssignment
	lastListQ   repositories.ListQuery
	created     []*models.Author
	replaced    map[uint][]uint
	deleted     []uint
}

func newMockAuthorRepo() *mockAuthorRepo {
	return &mockAuthorRepo{
		assignments: map[uint][]models.AuthorCategoryAssignment{},
		replaced:    map[uint][]uint{},
	}
}

func (m *mockAuthorRepo) Create(author *models.Author) error {
	author.ID = uint(len(m.authors) + len(m.created) + 1)
	m.created = append(m.created, author)
	return nil
}

func (m *mockAuthorRepo) GetByID(id uint) (*models.Author, error) {
	for i := range m.authors {
		if m.authors[i].ID == id {
			return &m.authors[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAuthorRepo) List(q repositories.ListQuery) ([]models.Author, error) {
	m.lastListQ = q
	return m.authors, nil
}

func (m *mockAuthorRepo) Updates(id uint, fields map[string]interface{}) (*models.Author, error) {
	return m.GetByID(id)
}

func (m *mockAuthorRepo) Delete(id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockAuthorRepo) GetAssignments(authorID uint) ([]models.AuthorCategoryAssignment, error) {
	return m.assignments[authorID], nil
}

func (m *mockAuthorRepo) GetAssignmentsByCategory(categoryID uint) ([]models.AuthorCategoryAssignment, error) {
	var out []models.AuthorCategoryAssignment
	for _, list := range m.assignments {
		for _, a := range list {
			if a.CategoryID == categoryID {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (m *mockAuthorRepo) ReplaceAssignments(authorID uint, categoryIDs []uint) error {
	m.replaced[authorID] = categoryIDs
	list := make([]models.AuthorCategoryAssignment, 0, len(categoryIDs))
	for _, cid := range categoryIDs {
		list = append(list, models.AuthorCategoryAssignment{AuthorID: authorID, CategoryID: cid})
	}
	m.assignments[authorID] = list
	return nil
}

func TestAuthorCreateDefaultsToWriter(t *testing.T) {
	authorRepo := newMockAuthorRepo()
	svc := NewAuthorService(authorRepo, newMockArticleRepo())

	author, err := svc.Create(models.CreateAuthorRequest{
		Name:  "Jordan Lee",
		Email: "jordan@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleWriter, author.Role)
	assert.True(t, author.IsActive)
	assert.Empty(t, author.CategoryIDs)
}

func TestAuthorCreateDuplicateEmailConflicts(t *testing.T) {
	authorRepo := newMockAuthorRepo()
	authorRepo.authors = []models.Author{{ID: 1, Email: "jordan@example.com"}}
	svc := NewAuthorService(authorRepo, newMockArticleRepo())

	_, err := svc.Create(models.CreateAuthorRequest{
		Name:  "Jordan Lee",
		Email: "jordan@example.com",
	})
	assert.IsType(t, models.ErrorConflict{}, err)
	assert.Empty(t, authorRepo.created)
}

func TestAuthorCreateAssignsCategories(t *testing.T) {
	authorRepo := newMockAuthorRepo()
	svc := NewAuthorService(authorRepo, newMockArticleRepo())

	author, err := svc.Create(models.CreateAuthorRequest{
		Name:        "Jordan Lee",
		Email:       "jordan@example.com",
		CategoryIDs: []uint{2, 5},
	})
	require.NoError(t, err)

	assert.Equal(t, []uint{2, 5}, authorRepo.replaced[author.ID])
	assert.Equal(t, []uint{2, 5}, author.CategoryIDs)
}

func TestAuthorUpdateReplacesAssignments(t *testing.T) {
	authorRepo := newMockAuthorRepo()
	authorRepo.authors = []models.Author{{ID: 1, Name: "Jordan Lee"}}
	svc := NewAuthorService(authorRepo, newMockArticleRepo())

	_, err := svc.Update(1, models.UpdateAuthorRequest{CategoryIDs: []uint{3}})
	require.NoError(t, err)

	assert.Equal(t, []uint{3}, authorRepo.replaced[1])
}

func TestAuthorDeleteWithArticlesRefused(t *testing.T) {
	authorRepo := newMockAuthorRepo()
	authorRepo.authors = []models.Author{{ID: 1}}
	articleRepo := newMockArticleRepo()
	articleRepo.authorCounts[1] = 3
	svc := NewAuthorService(authorRepo, articleRepo)

	err := svc.Delete(1)
	assert.IsType(t, models.ErrorValidation{}, err)
	assert.Empty(t, authorRepo.deleted)
}

func TestAuthorDeleteWithoutArticles(t *testing.T) {
	authorRepo := newMockAuthorRepo()
	authorRepo.authors = []models.Author{{ID: 1}}
	svc := NewAuthorService(authorRepo, newMockArticleRepo())

	err := svc.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, authorRepo.deleted)
}

func TestAuthorDeleteNotFound(t *testing.T) {
	authorRepo := newMockAuthorRepo()
	svc := NewAuthorService(authorRepo, newMockArticleRepo())

	err := svc.Delete(9)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestCanWriteForCategory(t *testing.T) {
	authorRepo := newMockAuthorRepo()
	authorRepo.authors = []models.Author{
		{ID: 1, Role: models.RoleAdmin, IsActive: true},
		{ID: 2, Role: models.RoleEditor, IsActive: true},
		{ID: 3, Role: models.RoleWriter, IsActive: true},
		{ID: 4, Role: models.RoleWriter, IsActive: false},
	}
	authorRepo.assignments[3] = []models.AuthorCategoryAssignment{
		{AuthorID: 3, CategoryID: 7},
	}
	svc := NewAuthorService(authorRepo, newMockArticleRepo())

	tests := []struct {
		name       string
		authorID   uint
		categoryID uint
		want       bool
	}{
		{"admin writes anywhere", 1, 99, true},
		{"editor writes anywhere", 2, 99, true},
		{"writer with assignment", 3, 7, true},
		{"writer without assignment", 3, 8, false},
		{"inactive writer", 4, 7, false},
		{"unknown author", 42, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CanWriteForCategory(tt.authorID, tt.categoryID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorGetAllFilters(t *testing.T) {
	authorRepo := newMockAuthorRepo()
	svc := NewAuthorService(authorRepo, newMockArticleRepo())

	_, err := svc.GetAll(true, "editor")
	require.NoError(t, err)

	require.Len(t, authorRepo.lastListQ.Filters, 2)
	assert.Equal(t, "is_active", authorRepo.lastListQ.Filters[0].Field)
	assert.Equal(t, "role", authorRepo.lastListQ.Filters[1].Field)
	assert.Equal(t, "editor", authorRepo.lastListQ.Filters[1].Value)
	assert.Equal(t, "name", authorRepo.lastListQ.SortBy)
}
