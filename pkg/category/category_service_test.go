package category

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/entities"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCategoryRepository struct {
	categories   map[uint]*entities.Category
	recipeCounts map[uint]int64
	nextID       uint
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{
		categories:   map[uint]*entities.Category{},
		recipeCounts: map[uint]int64{},
		nextID:       1,
	}
}

func (f *fakeCategoryRepository) WithTx(tx *gorm.DB) CategoryRepository { return f }

func (f *fakeCategoryRepository) CreateCategory(ctx context.Context, c *entities.Category) error {
	c.ID = f.nextID
	f.nextID++
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepository) UpdateCategory(ctx context.Context, c *entities.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepository) DeleteCategory(ctx context.Context, id uint) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepository) GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepository) GetCategoriesByIDs(ctx context.Context, ids []uint) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, id := range ids {
		if c, ok := f.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	for _, c := range f.categories {
		if strings.EqualFold(c.Name, name) && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepository) CountRecipes(ctx context.Context, categoryID uint) (int64, error) {
	return f.recipeCounts[categoryID], nil
}

func (f *fakeCategoryRepository) CountCategories(ctx context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

func TestCategoryServiceCreate(t *testing.T) {
	repo := newFakeCategoryRepository()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	res, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Soups", IconName: "soup-bowl"})
	require.NoError(t, err)
	assert.Equal(t, "Soups", res.Name)
	assert.Zero(t, res.RecipeCount)

	t.Run("name conflict is case-insensitive", func(t *testing.T) {
		_, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: "soups"})
		assert.ErrorIs(t, err, domain.ErrBusinessRule)
	})

	t.Run("blank name is a validation error", func(t *testing.T) {
		_, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: "   "})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCategoryServiceUpdate(t *testing.T) {
	repo := newFakeCategoryRepository()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	soups, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Soups"})
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Desserts"})
	require.NoError(t, err)

	t.Run("renaming onto another category fails", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, soups.ID, domain.CategoryRequest{Name: "Desserts"})
		assert.ErrorIs(t, err, domain.ErrBusinessRule)
	})

	t.Run("keeping the own name is allowed", func(t *testing.T) {
		res, err := svc.UpdateCategory(ctx, soups.ID, domain.CategoryRequest{Name: "Soups", Description: "warm things"})
		require.NoError(t, err)
		assert.Equal(t, "warm things", res.Description)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, 99, domain.CategoryRequest{Name: "Salads"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCategoryServiceRecipeCount(t *testing.T) {
	repo := newFakeCategoryRepository()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	res, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Soups"})
	require.NoError(t, err)

	repo.recipeCounts[res.ID] = 3

	got, err := svc.GetCategoryByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.RecipeCount)
}
