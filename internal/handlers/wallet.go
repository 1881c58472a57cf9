package handlers

import (
	"errors"
	"strconv"

	"vimo/internal/middleware"
	"vimo/internal/services/wallet"
	"vimo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// List returns the caller's active wallets with the combined balance.
func (h *WalletHandler) List(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	overview, err := h.walletService.Overview(c.Context(), ownerID)
	if err != nil {
		return utils.InternalError(c, "Không thể tải danh sách ví")
	}
	return utils.Success(c, overview)
}

// Create adds a wallet for the caller.
func (h *WalletHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Name           string  `json:"name"`
		WalletType     string  `json:"walletType"`
		InitialBalance float64 `json:"initialBalance"`
		Description    string  `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Dữ liệu không hợp lệ")
	}

	view, err := h.walletService.Create(c.Context(), ownerID, wallet.CreateInput{
		Name:           input.Name,
		WalletType:     input.WalletType,
		InitialBalance: input.InitialBalance,
		Description:    input.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidName):
			return utils.BadRequest(c, "Tên ví là bắt buộc")
		case errors.Is(err, wallet.ErrInvalidWalletType):
			return utils.BadRequest(c, "Loại ví không hợp lệ")
		case errors.Is(err, wallet.ErrNegativeBalance):
			return utils.BadRequest(c, "Số dư ban đầu không hợp lệ")
		default:
			return utils.InternalError(c, "Tạo ví thất bại")
		}
	}
	return utils.Success(c, view)
}

// Deactivate soft-deletes a wallet; its ledger history stays.
func (h *WalletHandler) Deactivate(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	walletID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "ID ví không hợp lệ")
	}

	if err := h.walletService.Deactivate(c.Context(), ownerID, uint(walletID)); err != nil {
		if errors.Is(err, wallet.ErrWalletNotFound) {
			return utils.NotFound(c, "Ví không hợp lệ")
		}
		return utils.InternalError(c, "Không thể đóng ví")
	}
	return utils.Success(c, fiber.Map{"message": "Đã đóng ví"})
}

// ListTypes returns the seeded wallet type catalogue.
func (h *WalletHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.walletService.ListTypes(c.Context())
	if err != nil {
		return utils.InternalError(c, "Không thể tải loại ví")
	}
	return utils.Success(c, types)
}
