package category

import (
	"context"
	"testing"

	domainerrors "vimo/internal/errors"
	"vimo/internal/models"
	"vimo/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
	counts     map[uint]int64
	nextID     uint
}

func newFakeCategoryRepo(seed ...*models.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{
		categories: make(map[uint]*models.Category),
		counts:     make(map[uint]int64),
	}
	for _, c := range seed {
		r.nextID++
		c.ID = r.nextID
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *models.Category) error {
	r.nextID++
	c.ID = r.nextID
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetVisible(id, userID uint) (*models.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, repositories.ErrCategoryNotFound
	}
	if c.IsDefault || (c.UserID != nil && *c.UserID == userID) {
		return c, nil
	}
	return nil, repositories.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) GetOwned(id, userID uint) (*models.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.IsDefault || c.UserID == nil || *c.UserID != userID {
		return nil, repositories.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) ListVisible(userID uint) ([]*models.Category, error) {
	var out []*models.Category
	for _, c := range r.categories {
		if c.IsDefault || (c.UserID != nil && *c.UserID == userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ExistsByName(userID uint, name string) (bool, error) {
	for _, c := range r.categories {
		if c.Name != name {
			continue
		}
		if c.IsDefault || (c.UserID != nil && *c.UserID == userID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(c *models.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(id uint) error {
	if _, ok := r.categories[id]; !ok {
		return repositories.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) CountTransactions(categoryID uint) (int64, error) {
	return r.counts[categoryID], nil
}

func ownerID(id uint) *uint { return &id }

func defaultCategory(name string) *models.Category {
	return &models.Category{Name: name, IsDefault: true}
}

func TestList(t *testing.T) {
	repo := newFakeCategoryRepo(
		defaultCategory("Ăn uống"),
		&models.Category{Name: "Nuôi mèo", UserID: ownerID(1)},
		&models.Category{Name: "Của người khác", UserID: ownerID(2)},
	)
	repo.counts[2] = 3
	svc := NewService(repo)

	views, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, views, 2, "defaults plus own categories only")

	for _, v := range views {
		if v.Name == "Nuôi mèo" {
			assert.Equal(t, int64(3), v.TransactionCount)
			assert.False(t, v.IsDefault)
		}
	}
}

func TestCreateCategory(t *testing.T) {
	t.Run("creates an owned category", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		svc := NewService(repo)

		view, err := svc.Create(context.Background(), 1, Input{Name: " Nuôi mèo ", Icon: "🐱", Color: "pink"})
		require.NoError(t, err)
		assert.Equal(t, "Nuôi mèo", view.Name)
		assert.False(t, view.IsDefault)

		stored := repo.categories[view.ID]
		require.NotNil(t, stored.UserID)
		assert.Equal(t, uint(1), *stored.UserID)
	})

	t.Run("rejects a blank name as invalid input", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		svc := NewService(repo)

		_, err := svc.Create(context.Background(), 1, Input{Name: "   "})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCategoryName)
		assert.Empty(t, repo.categories)
	})

	t.Run("rejects a name clashing with a default", func(t *testing.T) {
		repo := newFakeCategoryRepo(defaultCategory("Ăn uống"))
		svc := NewService(repo)

		_, err := svc.Create(context.Background(), 1, Input{Name: "Ăn uống"})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
	})

	t.Run("rejects a duplicate of own category", func(t *testing.T) {
		repo := newFakeCategoryRepo(&models.Category{Name: "Nuôi mèo", UserID: ownerID(1)})
		svc := NewService(repo)

		_, err := svc.Create(context.Background(), 1, Input{Name: "Nuôi mèo"})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
	})

	t.Run("same name is fine for another user", func(t *testing.T) {
		repo := newFakeCategoryRepo(&models.Category{Name: "Nuôi mèo", UserID: ownerID(2)})
		svc := NewService(repo)

		_, err := svc.Create(context.Background(), 1, Input{Name: "Nuôi mèo"})
		assert.NoError(t, err)
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("renames an owned category", func(t *testing.T) {
		repo := newFakeCategoryRepo(&models.Category{Name: "Nuôi mèo", Icon: "🐱", UserID: ownerID(1)})
		svc := NewService(repo)

		view, err := svc.Update(context.Background(), 1, 1, Input{Name: "Thú cưng", Color: "pink"})
		require.NoError(t, err)
		assert.Equal(t, "Thú cưng", view.Name)
		assert.Equal(t, "🐱", view.Icon, "unset fields keep their value")
		assert.Equal(t, "pink", view.Color)
	})

	t.Run("default categories are not editable", func(t *testing.T) {
		repo := newFakeCategoryRepo(defaultCategory("Ăn uống"))
		svc := NewService(repo)

		_, err := svc.Update(context.Background(), 1, 1, Input{Name: "Khác đi"})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})

	t.Run("cannot rename onto a taken name", func(t *testing.T) {
		repo := newFakeCategoryRepo(
			&models.Category{Name: "Nuôi mèo", UserID: ownerID(1)},
			&models.Category{Name: "Thú cưng", UserID: ownerID(1)},
		)
		svc := NewService(repo)

		_, err := svc.Update(context.Background(), 1, 1, Input{Name: "Thú cưng"})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("deletes an owned category", func(t *testing.T) {
		repo := newFakeCategoryRepo(&models.Category{Name: "Nuôi mèo", UserID: ownerID(1)})
		svc := NewService(repo)

		require.NoError(t, svc.Delete(context.Background(), 1, 1))
		assert.Empty(t, repo.categories)
	})

	t.Run("default categories are not deletable", func(t *testing.T) {
		repo := newFakeCategoryRepo(defaultCategory("Ăn uống"))
		svc := NewService(repo)

		assert.ErrorIs(t, svc.Delete(context.Background(), 1, 1), domainerrors.ErrCategoryNotFound)
		assert.Len(t, repo.categories, 1)
	})

	t.Run("not the owner", func(t *testing.T) {
		repo := newFakeCategoryRepo(&models.Category{Name: "Nuôi mèo", UserID: ownerID(2)})
		svc := NewService(repo)

		assert.ErrorIs(t, svc.Delete(context.Background(), 1, 1), domainerrors.ErrCategoryNotFound)
	})
}
