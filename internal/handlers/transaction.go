package handlers

import (
	"strconv"
	"time"

	"vimo/internal/middleware"
	"vimo/internal/services/ledger"
	"vimo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const maxTransactionLimit = 100 // maximum transactions per page

type TransactionHandler struct {
	ledgerService ledger.Service
}

func NewTransactionHandler(ledgerService ledger.Service) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// Create records an income or expense against one of the caller's
// wallets. The balance mutation and the ledger append happen in one
// database transaction.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Type            string  `json:"type"`
		Amount          float64 `json:"amount"`
		CategoryID      *uint   `json:"categoryId"`
		WalletID        uint    `json:"walletId"`
		Description     string  `json:"description"`
		TransactionDate string  `json:"transactionDate"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Dữ liệu không hợp lệ")
	}

	var transactionDate *time.Time
	if input.TransactionDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.TransactionDate)
		if err != nil {
			return utils.BadRequest(c, "Ngày giao dịch không hợp lệ")
		}
		transactionDate = &parsed
	}

	entry, err := h.ledgerService.RecordTransaction(c.Context(), ownerID, ledger.TransactionInput{
		WalletID:        input.WalletID,
		CategoryID:      input.CategoryID,
		Type:            input.Type,
		Amount:          input.Amount,
		Description:     input.Description,
		TransactionDate: transactionDate,
	})
	if err != nil {
		return respondLedgerError(c, err, "Thêm giao dịch thất bại")
	}
	return utils.Success(c, entry)
}

// List returns the caller's transactions, newest first.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 || limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}
	if page < 1 {
		page = 1
	}

	transactions, err := h.ledgerService.ListTransactions(c.Context(), ownerID, limit, (page-1)*limit)
	if err != nil {
		return utils.InternalError(c, "Không thể tải giao dịch")
	}

	return utils.Success(c, fiber.Map{
		"transactions": transactions,
		"page":         page,
		"limit":        limit,
	})
}
