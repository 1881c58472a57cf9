package repositories

import (
	"fmt"

	"vimo/internal/models"

	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	if result := r.db.Create(category); result.Error != nil {
		return fmt.Errorf("failed to create category: %w", result.Error)
	}
	return nil
}

func (r *categoryRepository) GetVisible(id, userID uint) (*models.Category, error) {
	var category models.Category
	err := r.db.
		Where("id = ? AND (is_default = ? OR user_id = ?)", id, true, userID).
		First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) GetOwned(id, userID uint) (*models.Category, error) {
	var category models.Category
	err := r.db.
		Where("id = ? AND user_id = ? AND is_default = ?", id, userID, false).
		First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) ListVisible(userID uint) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.
		Where("is_default = ? OR user_id = ?", true, userID).
		Order("is_default DESC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) ExistsByName(userID uint, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

func (r *categoryRepository) Update(category *models.Category) error {
	if result := r.db.Save(category); result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	return nil
}

// Delete detaches the category from its ledger entries before removing
// it; the entries themselves are immutable and stay, falling back to
// the uncategorized bucket in reports.
func (r *categoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Transaction{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error
		if err != nil {
			return fmt.Errorf("failed to detach transactions: %w", err)
		}

		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}

func (r *categoryRepository) CountTransactions(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).Where("category_id = ?", categoryID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
