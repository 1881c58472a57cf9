package repositories

import (
	"errors"

	"vimo/internal/models"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category name already exists")
)

// CategoryRepository defines category persistence operations. A user
// sees the shared default categories plus their own.
type CategoryRepository interface {
	Create(category *models.Category) error
	// GetVisible returns the category when it is a default or owned by
	// userID; ErrCategoryNotFound otherwise.
	GetVisible(id, userID uint) (*models.Category, error)
	// GetOwned returns the category only when owned (non-default).
	GetOwned(id, userID uint) (*models.Category, error)
	ListVisible(userID uint) ([]*models.Category, error)
	ExistsByName(userID uint, name string) (bool, error)
	Update(category *models.Category) error
	Delete(id uint) error
	CountTransactions(categoryID uint) (int64, error)
}
