// Package category manages the labels attached to ledger entries.
// Default categories are shared and read-only; users may add, rename
// and delete their own.
package category

import (
	"context"
	"errors"
	"strings"

	domainerrors "vimo/internal/errors"
	"vimo/internal/models"
	"vimo/internal/repositories"
)

// Input is the create/update payload.
type Input struct {
	Name  string
	Icon  string
	Color string
}

// View is the category shape returned to the UI.
type View struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Icon             string `json:"icon"`
	Color            string `json:"color"`
	IsDefault        bool   `json:"isDefault"`
	TransactionCount int64  `json:"transactionCount"`
}

// Service defines category operations.
type Service interface {
	List(ctx context.Context, ownerID uint) ([]View, error)
	Create(ctx context.Context, ownerID uint, input Input) (*View, error)
	Update(ctx context.Context, ownerID, categoryID uint, input Input) (*View, error)
	Delete(ctx context.Context, ownerID, categoryID uint) error
}

type service struct {
	repo repositories.CategoryRepository
}

func NewService(repo repositories.CategoryRepository) Service {
	if repo == nil {
		panic("category repository is required")
	}
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, ownerID uint) ([]View, error) {
	categories, err := s.repo.ListVisible(ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(categories))
	for _, c := range categories {
		count, err := s.repo.CountTransactions(c.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, toView(c, count))
	}
	return views, nil
}

func (s *service) Create(ctx context.Context, ownerID uint, input Input) (*View, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrInvalidCategoryName
	}

	taken, err := s.repo.ExistsByName(ownerID, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.ErrCategoryNameTaken
	}

	category := &models.Category{
		UserID:    &ownerID,
		Name:      name,
		Icon:      input.Icon,
		Color:     input.Color,
		IsDefault: false,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}

	view := toView(category, 0)
	return &view, nil
}

func (s *service) Update(ctx context.Context, ownerID, categoryID uint, input Input) (*View, error) {
	category, err := s.repo.GetOwned(categoryID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" && name != category.Name {
		taken, err := s.repo.ExistsByName(ownerID, name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domainerrors.ErrCategoryNameTaken
		}
		category.Name = name
	}
	if input.Icon != "" {
		category.Icon = input.Icon
	}
	if input.Color != "" {
		category.Color = input.Color
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}

	count, err := s.repo.CountTransactions(category.ID)
	if err != nil {
		return nil, err
	}
	view := toView(category, count)
	return &view, nil
}

func (s *service) Delete(ctx context.Context, ownerID, categoryID uint) error {
	// Only user-owned, non-default categories are deletable.
	category, err := s.repo.GetOwned(categoryID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}
		return err
	}
	return s.repo.Delete(category.ID)
}

func toView(c *models.Category, txCount int64) View {
	return View{
		ID:               c.ID,
		Name:             c.Name,
		Icon:             c.Icon,
		Color:            c.Color,
		IsDefault:        c.IsDefault,
		TransactionCount: txCount,
	}
}
