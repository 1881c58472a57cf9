package errors

var (
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "Số tiền không hợp lệ",
	}
	ErrInvalidTransactionType = &DomainError{
		Code:    "INVALID_TRANSACTION_TYPE",
		Message: "Loại giao dịch không hợp lệ",
	}
	ErrMissingCategoryOrWallet = &DomainError{
		Code:    "MISSING_CATEGORY_OR_WALLET",
		Message: "Thiếu danh mục hoặc ví",
	}
	ErrWalletNotFound = &DomainError{
		Code:    "WALLET_NOT_FOUND",
		Message: "Ví không hợp lệ",
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "Số dư ví không đủ",
	}
	ErrSameWalletTransfer = &DomainError{
		Code:    "SAME_WALLET_TRANSFER",
		Message: "Không thể chuyển giữa cùng một ví",
	}
	ErrMissingTransferFields = &DomainError{
		Code:    "MISSING_TRANSFER_FIELDS",
		Message: "Thiếu thông tin chuyển khoản",
	}
)
