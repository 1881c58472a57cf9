package handlers

import (
	"errors"

	domainerrors "vimo/internal/errors"
	"vimo/internal/middleware"
	"vimo/internal/services/ledger"
	"vimo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	ledgerService ledger.Service
}

func NewTransferHandler(ledgerService ledger.Service) *TransferHandler {
	return &TransferHandler{ledgerService: ledgerService}
}

// Create moves funds between two of the caller's wallets: debit, credit
// and transfer record commit together or not at all.
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		FromWalletID uint    `json:"fromWalletId"`
		ToWalletID   uint    `json:"toWalletId"`
		Amount       float64 `json:"amount"`
		Note         string  `json:"note"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Dữ liệu không hợp lệ")
	}

	transfer, err := h.ledgerService.Transfer(c.Context(), ownerID, ledger.TransferInput{
		FromWalletID: input.FromWalletID,
		ToWalletID:   input.ToWalletID,
		Amount:       input.Amount,
		Note:         input.Note,
	})
	if err != nil {
		return respondLedgerError(c, err, "Chuyển khoản thất bại")
	}
	return utils.Success(c, transfer)
}

// respondLedgerError maps domain errors onto the HTTP statuses of the
// API contract: validation and balance failures are 400, missing or
// unauthorized resources are 404, anything else is 500.
func respondLedgerError(c *fiber.Ctx, err error, fallback string) error {
	var domainErr *domainerrors.DomainError
	if !errors.As(err, &domainErr) {
		return utils.InternalError(c, fallback)
	}

	switch domainErr {
	case domainerrors.ErrWalletNotFound, domainerrors.ErrCategoryNotFound:
		return utils.NotFound(c, domainErr.Message)
	default:
		return utils.BadRequest(c, domainErr.Message)
	}
}
