package repositories

import (
	"errors"
	"fmt"
	"strings"

	"vimo/internal/models"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if result := r.db.Create(user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) ||
			strings.Contains(result.Error.Error(), "duplicate key") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", result.Error)
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	if result := r.db.Save(user); result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *userRepository) IncrementTokenVersion(id uint) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("token_version", gorm.Expr("token_version + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment token version: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) CountWallets(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Wallet{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count wallets: %w", err)
	}
	return count, nil
}
