package errors

var (
	ErrInvalidCategoryName = &DomainError{
		Code:    "INVALID_CATEGORY_NAME",
		Message: "Tên danh mục không hợp lệ",
	}
	ErrCategoryNotFound = &DomainError{
		Code:    "CATEGORY_NOT_FOUND",
		Message: "Danh mục không hợp lệ",
	}
	ErrCategoryNameTaken = &DomainError{
		Code:    "CATEGORY_NAME_TAKEN",
		Message: "Tên danh mục đã tồn tại",
	}
)
