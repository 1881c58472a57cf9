package handlers

import (
	"errors"

	"vimo/internal/middleware"
	"vimo/internal/services/user"
	"vimo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	userService user.Service
}

func NewAccountHandler(userService user.Service) *AccountHandler {
	return &AccountHandler{userService: userService}
}

func (h *AccountHandler) Get(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	profile, err := h.userService.GetProfile(c.Context(), ownerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "Không tìm thấy tài khoản")
		}
		return utils.InternalError(c, "Không thể tải tài khoản")
	}
	return utils.Success(c, profile)
}
