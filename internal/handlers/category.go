package handlers

import (
	"errors"
	"strconv"

	domainerrors "vimo/internal/errors"
	"vimo/internal/middleware"
	"vimo/internal/services/category"
	"vimo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categoryService category.Service
}

func NewCategoryHandler(categoryService category.Service) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	categories, err := h.categoryService.List(c.Context(), ownerID)
	if err != nil {
		return utils.InternalError(c, "Không thể tải danh mục")
	}
	return utils.Success(c, categories)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	input, err := parseCategoryInput(c)
	if err != nil {
		return utils.BadRequest(c, "Dữ liệu không hợp lệ")
	}

	view, err := h.categoryService.Create(c.Context(), ownerID, input)
	if err != nil {
		return respondCategoryError(c, err, "Tạo danh mục thất bại")
	}
	return utils.Success(c, view)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "ID danh mục không hợp lệ")
	}

	input, err := parseCategoryInput(c)
	if err != nil {
		return utils.BadRequest(c, "Dữ liệu không hợp lệ")
	}

	view, err := h.categoryService.Update(c.Context(), ownerID, uint(categoryID), input)
	if err != nil {
		return respondCategoryError(c, err, "Cập nhật danh mục thất bại")
	}
	return utils.Success(c, view)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "ID danh mục không hợp lệ")
	}

	if err := h.categoryService.Delete(c.Context(), ownerID, uint(categoryID)); err != nil {
		return respondCategoryError(c, err, "Xóa danh mục thất bại")
	}
	return utils.Success(c, fiber.Map{"message": "Đã xóa danh mục"})
}

func parseCategoryInput(c *fiber.Ctx) (category.Input, error) {
	var input struct {
		Name  string `json:"name"`
		Icon  string `json:"icon"`
		Color string `json:"color"`
	}
	if err := c.BodyParser(&input); err != nil {
		return category.Input{}, err
	}
	return category.Input{Name: input.Name, Icon: input.Icon, Color: input.Color}, nil
}

func respondCategoryError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domainerrors.ErrCategoryNotFound):
		return utils.NotFound(c, domainerrors.ErrCategoryNotFound.Message)
	case errors.Is(err, domainerrors.ErrInvalidCategoryName):
		return utils.BadRequest(c, domainerrors.ErrInvalidCategoryName.Message)
	case errors.Is(err, domainerrors.ErrCategoryNameTaken):
		return utils.BadRequest(c, domainerrors.ErrCategoryNameTaken.Message)
	default:
		return utils.InternalError(c, fallback)
	}
}
