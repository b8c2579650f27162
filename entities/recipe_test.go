package entities

import (
	"errors"
	"testing"
	"time"

	"Culinary-Assistant/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T, at time.Time) {
	t.Helper()
	restore := SetNowFunc(func() time.Time { return at })
	t.Cleanup(restore)
}

func draftRecipe(t *testing.T) *Recipe {
	t.Helper()
	r, err := NewRecipe("brs-01", "Borscht", "Ukrainian", DishFirstCourse, 90, 6, "", "Simmer the beets, then everything else.")
	require.NoError(t, err)
	return r
}

func TestNewRecipe(t *testing.T) {
	r := draftRecipe(t)

	assert.Equal(t, StatusDraft, r.Status)
	assert.Nil(t, r.PublishedAt)
	assert.Nil(t, r.ArchivedAt)
	assert.True(t, r.CanEdit())
	assert.Equal(t, "BRS-01", r.Code, "code is normalized to upper case")

	t.Run("empty code rejected", func(t *testing.T) {
		_, err := NewRecipe("", "Borscht", "Ukrainian", DishFirstCourse, 90, 6, "", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("overlong code rejected", func(t *testing.T) {
		_, err := NewRecipe("THIS-CODE-IS-FAR-TOO-LONG", "Borscht", "Ukrainian", DishFirstCourse, 90, 6, "", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("non-positive cooking time rejected", func(t *testing.T) {
		_, err := NewRecipe("BRS-02", "Borscht", "Ukrainian", DishFirstCourse, 0, 6, "", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestRecipePublish(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fixedNow(t, now)

	t.Run("fails without ingredients and leaves state untouched", func(t *testing.T) {
		r := draftRecipe(t)
		err := r.Publish()
		assert.ErrorIs(t, err, domain.ErrBusinessRule)
		assert.Equal(t, StatusDraft, r.Status)
		assert.Nil(t, r.PublishedAt)
	})

	t.Run("fails without instructions", func(t *testing.T) {
		r := draftRecipe(t)
		r.SetInstructions("   ")
		_, err := r.AddIngredient("Beetroot", 3, UnitPiece, false, "")
		require.NoError(t, err)
		err = r.Publish()
		assert.ErrorIs(t, err, domain.ErrBusinessRule)
		assert.Equal(t, StatusDraft, r.Status)
	})

	t.Run("succeeds from draft with ingredient and instructions", func(t *testing.T) {
		r := draftRecipe(t)
		_, err := r.AddIngredient("Beetroot", 3, UnitPiece, false, "")
		require.NoError(t, err)
		require.NoError(t, r.Publish())

		assert.Equal(t, StatusPublished, r.Status)
		require.NotNil(t, r.PublishedAt)
		assert.Equal(t, now, *r.PublishedAt)
		assert.False(t, r.CanEdit())
	})

	t.Run("fails when already published", func(t *testing.T) {
		r := draftRecipe(t)
		_, err := r.AddIngredient("Beetroot", 3, UnitPiece, false, "")
		require.NoError(t, err)
		require.NoError(t, r.Publish())
		assert.ErrorIs(t, r.Publish(), domain.ErrBusinessRule)
	})
}

func TestRecipeArchiveRestore(t *testing.T) {
	publishedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fixedNow(t, publishedAt)

	r := draftRecipe(t)
	_, err := r.AddIngredient("Beetroot", 3, UnitPiece, false, "")
	require.NoError(t, err)
	require.NoError(t, r.Publish())

	fixedNow(t, publishedAt.Add(48*time.Hour))

	require.NoError(t, r.Archive())
	assert.Equal(t, StatusArchived, r.Status)
	require.NotNil(t, r.ArchivedAt)

	require.NoError(t, r.Restore())
	assert.Equal(t, StatusPublished, r.Status)
	assert.Nil(t, r.ArchivedAt)
	require.NotNil(t, r.PublishedAt)
	assert.Equal(t, publishedAt, *r.PublishedAt, "restore keeps the original publish time")

	t.Run("archive requires published", func(t *testing.T) {
		draft := draftRecipe(t)
		assert.ErrorIs(t, draft.Archive(), domain.ErrBusinessRule)
	})

	t.Run("restore requires archived", func(t *testing.T) {
		assert.ErrorIs(t, r.Restore(), domain.ErrBusinessRule)
	})
}

func TestRecipeReturnToDraft(t *testing.T) {
	fixedNow(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	t.Run("fails when already draft", func(t *testing.T) {
		r := draftRecipe(t)
		assert.ErrorIs(t, r.ReturnToDraft(), domain.ErrBusinessRule)
	})

	t.Run("clears both workflow timestamps", func(t *testing.T) {
		r := draftRecipe(t)
		_, err := r.AddIngredient("Beetroot", 3, UnitPiece, false, "")
		require.NoError(t, err)
		require.NoError(t, r.Publish())
		require.NoError(t, r.Archive())

		require.NoError(t, r.ReturnToDraft())
		assert.Equal(t, StatusDraft, r.Status)
		assert.Nil(t, r.PublishedAt)
		assert.Nil(t, r.ArchivedAt)
		assert.True(t, r.CanEdit())
	})
}

func TestRecipeIngredients(t *testing.T) {
	fixedNow(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	t.Run("duplicate name is rejected case-insensitively", func(t *testing.T) {
		r := draftRecipe(t)
		_, err := r.AddIngredient("Beetroot", 3, UnitPiece, false, "")
		require.NoError(t, err)

		_, err = r.AddIngredient("beetroot", 1, UnitPiece, false, "")
		assert.ErrorIs(t, err, domain.ErrBusinessRule)
		assert.Len(t, r.Ingredients, 1)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		r := draftRecipe(t)
		_, err := r.AddIngredient("Beetroot", 0, UnitPiece, false, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("mutation is locked outside draft", func(t *testing.T) {
		r := draftRecipe(t)
		_, err := r.AddIngredient("Beetroot", 3, UnitPiece, false, "")
		require.NoError(t, err)
		require.NoError(t, r.Publish())

		_, err = r.AddIngredient("Carrot", 2, UnitPiece, false, "")
		assert.ErrorIs(t, err, domain.ErrBusinessRule)
		assert.ErrorIs(t, r.ClearIngredients(), domain.ErrBusinessRule)

		require.NoError(t, r.ReturnToDraft())
		_, err = r.AddIngredient("Carrot", 2, UnitPiece, false, "")
		assert.NoError(t, err)
	})

	t.Run("remove unknown ingredient fails", func(t *testing.T) {
		r := draftRecipe(t)
		err := r.RemoveIngredient(99)
		assert.ErrorIs(t, err, domain.ErrBusinessRule)
	})

	t.Run("remove and clear", func(t *testing.T) {
		r := draftRecipe(t)
		ing, err := r.AddIngredient("Beetroot", 3, UnitPiece, false, "")
		require.NoError(t, err)
		ing.ID = 7

		require.NoError(t, r.RemoveIngredient(7))
		assert.Empty(t, r.Ingredients)

		_, err = r.AddIngredient("Carrot", 2, UnitPiece, true, "grated")
		require.NoError(t, err)
		require.NoError(t, r.ClearIngredients())
		assert.Empty(t, r.Ingredients)
	})
}

func TestRecipeCategories(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fixedNow(t, now)

	r := draftRecipe(t)
	r.AddCategory(4)
	require.Len(t, r.Categories, 1)
	assert.Equal(t, uint(4), r.Categories[0].CategoryID)
	assert.Equal(t, now, r.Categories[0].AssignedAt)
	assert.True(t, r.HasCategory(4))

	r.AddCategory(4)
	assert.Len(t, r.Categories, 1, "re-adding an association is a no-op")

	r.RemoveCategory(12)
	assert.Len(t, r.Categories, 1, "removing a missing association is a no-op")

	r.RemoveCategory(4)
	assert.Empty(t, r.Categories)

	t.Run("allowed in any workflow state", func(t *testing.T) {
		_, err := r.AddIngredient("Beetroot", 3, UnitPiece, false, "")
		require.NoError(t, err)
		require.NoError(t, r.Publish())

		r.AddCategory(4)
		assert.True(t, r.HasCategory(4))
		r.RemoveCategory(4)
		assert.False(t, r.HasCategory(4))
	})
}

func TestRecipeWorkflowErrorsNameStatus(t *testing.T) {
	r := draftRecipe(t)
	_, err := r.AddIngredient("Beetroot", 3, UnitPiece, false, "")
	require.NoError(t, err)
	require.NoError(t, r.Publish())

	_, err = r.AddIngredient("Carrot", 1, UnitPiece, false, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(StatusPublished))
	assert.True(t, errors.Is(err, domain.ErrBusinessRule))
}
