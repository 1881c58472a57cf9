package repositories

import (
	"fmt"

	"vimo/internal/models"

	"gorm.io/gorm"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(wallet *models.Wallet) error {
	if result := r.db.Create(wallet); result.Error != nil {
		return fmt.Errorf("failed to create wallet: %w", result.Error)
	}
	return nil
}

func (r *walletRepository) GetByID(id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.Preload("Type").First(&wallet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) GetOwnedActive(id, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Preload("Type").
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		First(&wallet).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) ListActiveByUser(userID uint) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	err := r.db.Preload("Type").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) Update(wallet *models.Wallet) error {
	if result := r.db.Save(wallet); result.Error != nil {
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	return nil
}

func (r *walletRepository) Deactivate(id, userID uint) error {
	result := r.db.Model(&models.Wallet{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *walletRepository) CountTransactions(walletID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).Where("wallet_id = ?", walletID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func (r *walletRepository) GetWalletType(id string) (*models.WalletType, error) {
	var wt models.WalletType
	if err := r.db.First(&wt, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletTypeNotFound
		}
		return nil, fmt.Errorf("failed to get wallet type: %w", err)
	}
	return &wt, nil
}

func (r *walletRepository) ListWalletTypes() ([]*models.WalletType, error) {
	var types []*models.WalletType
	if err := r.db.Order("id ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallet types: %w", err)
	}
	return types, nil
}
