package handlers

import (
	"errors"

	"vimo/internal/middleware"
	"vimo/internal/models"
	"vimo/internal/services/auth"
	"vimo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user signup.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Dữ liệu không hợp lệ")
	}

	user, err := h.authService.Register(input.Email, input.Password, input.FullName)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return utils.BadRequest(c, "Email, password và họ tên là bắt buộc")
		case errors.Is(err, auth.ErrInvalidEmail):
			return utils.BadRequest(c, "Email không hợp lệ")
		case errors.Is(err, auth.ErrWeakPassword):
			return utils.BadRequest(c, "Mật khẩu phải có ít nhất 6 ký tự")
		case errors.Is(err, auth.ErrEmailTaken):
			return utils.BadRequest(c, "Email này đã được sử dụng")
		default:
			return utils.InternalError(c, "Đăng ký thất bại")
		}
	}

	return utils.Success(c, fiber.Map{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
	})
}

// Login authenticates a user and returns JWT tokens.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Dữ liệu không hợp lệ")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email và mật khẩu là bắt buộc")
	}

	user, accessToken, refreshToken, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Email hoặc mật khẩu không đúng")
		}
		return utils.InternalError(c, "Đăng nhập thất bại")
	}

	return utils.Success(c, fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user": fiber.Map{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
		},
	})
}

// Refresh exchanges a refresh token for a new token pair.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return utils.Unauthorized(c, "Thiếu refresh token")
	}

	accessToken, refreshToken, err := h.authService.RefreshTokens(input.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "Refresh token không hợp lệ")
	}

	return utils.Success(c, fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Logout invalidates all outstanding tokens for the caller.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}
	if err := h.authService.Logout(ownerID); err != nil {
		return utils.InternalError(c, "Đăng xuất thất bại")
	}
	return utils.Success(c, fiber.Map{"message": "Đã đăng xuất"})
}
