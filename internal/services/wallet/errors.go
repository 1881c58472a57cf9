package wallet

import "errors"

var (
	ErrInvalidName       = errors.New("wallet name is required")
	ErrInvalidWalletType = errors.New("invalid wallet type")
	ErrNegativeBalance   = errors.New("initial balance cannot be negative")
	ErrWalletNotFound    = errors.New("wallet not found")
)
