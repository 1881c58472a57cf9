// Package user serves account profile data.
package user

import (
	"context"
	"errors"
	"time"

	"vimo/internal/repositories"
)

var ErrUserNotFound = errors.New("user not found")

// Profile is the payload of GET /api/account.
type Profile struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	AvatarURL   string     `json:"avatarUrl"`
	IsPremium   bool       `json:"isPremium"`
	MemberSince time.Time  `json:"memberSince"`
	LastLogin   *time.Time `json:"lastLogin"`
	Stats       Stats      `json:"stats"`
}

type Stats struct {
	TransactionCount int64 `json:"transactionCount"`
	WalletCount      int64 `json:"walletCount"`
	DaysSinceMember  int   `json:"daysSinceMember"`
}

// Service exposes account profile reads.
type Service interface {
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
}

type service struct {
	users  repositories.UserRepository
	ledger repositories.LedgerRepository
}

func NewService(users repositories.UserRepository, ledger repositories.LedgerRepository) Service {
	return &service{users: users, ledger: ledger}
}

func (s *service) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	txCount, err := s.ledger.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	walletCount, err := s.users.CountWallets(userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		AvatarURL:   u.AvatarURL,
		IsPremium:   u.IsPremium,
		MemberSince: u.CreatedAt,
		LastLogin:   u.LastLoginAt,
		Stats: Stats{
			TransactionCount: txCount,
			WalletCount:      walletCount,
			DaysSinceMember:  int(time.Since(u.CreatedAt).Hours() / 24),
		},
	}, nil
}
