package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "vimo/internal/errors"
	"vimo/internal/models"
	"vimo/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLedgerService answers every call with the configured result.
type stubLedgerService struct {
	transaction *models.Transaction
	transfer    *models.Transfer
	err         error
}

func (s *stubLedgerService) RecordTransaction(context.Context, uint, ledger.TransactionInput) (*models.Transaction, error) {
	return s.transaction, s.err
}

func (s *stubLedgerService) Transfer(context.Context, uint, ledger.TransferInput) (*models.Transfer, error) {
	return s.transfer, s.err
}

func (s *stubLedgerService) ListTransactions(context.Context, uint, int, int) ([]*models.Transaction, error) {
	return nil, s.err
}

// newLedgerApp mounts the transaction and transfer handlers behind a
// middleware that plants the authenticated claims.
func newLedgerApp(svc ledger.Service) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("claims", &models.UserClaims{UserID: 1, Email: "an.nguyen@example.com"})
		return c.Next()
	})
	transactionHandler := NewTransactionHandler(svc)
	transferHandler := NewTransferHandler(svc)
	app.Post("/api/transactions", transactionHandler.Create)
	app.Get("/api/transactions", transactionHandler.List)
	app.Post("/api/transfer", transferHandler.Create)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestTransactionHandlerStatusMapping(t *testing.T) {
	body := fiber.Map{"type": "expense", "amount": 30000, "categoryId": 1, "walletId": 1}

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{"insufficient balance", domainerrors.ErrInsufficientBalance, http.StatusBadRequest, "Số dư ví không đủ"},
		{"invalid amount", domainerrors.ErrInvalidAmount, http.StatusBadRequest, "Số tiền không hợp lệ"},
		{"invalid type", domainerrors.ErrInvalidTransactionType, http.StatusBadRequest, "Loại giao dịch không hợp lệ"},
		{"wallet not found", domainerrors.ErrWalletNotFound, http.StatusNotFound, "Ví không hợp lệ"},
		{"category not found", domainerrors.ErrCategoryNotFound, http.StatusNotFound, "Danh mục không hợp lệ"},
		{"store failure", assert.AnError, http.StatusInternalServerError, "Thêm giao dịch thất bại"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newLedgerApp(&stubLedgerService{err: tt.serviceErr})

			resp := postJSON(t, app, "/api/transactions", body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			envelope := decodeEnvelope(t, resp)
			assert.Equal(t, false, envelope["success"])
			assert.Equal(t, tt.wantError, envelope["error"])
		})
	}
}

func TestTransactionHandlerSuccessEnvelope(t *testing.T) {
	app := newLedgerApp(&stubLedgerService{transaction: &models.Transaction{
		ID: 12, Reference: "ref-12", UserID: 1, WalletID: 1, Type: models.TransactionTypeExpense, Amount: 30000,
	}})

	resp := postJSON(t, app, "/api/transactions", fiber.Map{
		"type": "expense", "amount": 30000, "categoryId": 1, "walletId": 1,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, true, envelope["success"])
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ref-12", data["reference"])
	assert.Equal(t, float64(30000), data["amount"])
}

func TestTransactionHandlerRejectsBadDate(t *testing.T) {
	app := newLedgerApp(&stubLedgerService{})

	resp := postJSON(t, app, "/api/transactions", fiber.Map{
		"type": "expense", "amount": 30000, "categoryId": 1, "walletId": 1,
		"transactionDate": "hôm qua",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Ngày giao dịch không hợp lệ", decodeEnvelope(t, resp)["error"])
}

func TestTransferHandlerStatusMapping(t *testing.T) {
	body := fiber.Map{"fromWalletId": 1, "toWalletId": 2, "amount": 50000}

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{"same wallet", domainerrors.ErrSameWalletTransfer, http.StatusBadRequest, "Không thể chuyển giữa cùng một ví"},
		{"missing fields", domainerrors.ErrMissingTransferFields, http.StatusBadRequest, "Thiếu thông tin chuyển khoản"},
		{"insufficient balance", domainerrors.ErrInsufficientBalance, http.StatusBadRequest, "Số dư ví không đủ"},
		{"wallet not found", domainerrors.ErrWalletNotFound, http.StatusNotFound, "Ví không hợp lệ"},
		{"store failure", assert.AnError, http.StatusInternalServerError, "Chuyển khoản thất bại"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newLedgerApp(&stubLedgerService{err: tt.serviceErr})

			resp := postJSON(t, app, "/api/transfer", body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			envelope := decodeEnvelope(t, resp)
			assert.Equal(t, false, envelope["success"])
			assert.Equal(t, tt.wantError, envelope["error"])
		})
	}
}

func TestTransferHandlerSuccessEnvelope(t *testing.T) {
	app := newLedgerApp(&stubLedgerService{transfer: &models.Transfer{
		ID: 3, Reference: "ref-3", UserID: 1, FromWalletID: 1, ToWalletID: 2, Amount: 50000,
	}})

	resp := postJSON(t, app, "/api/transfer", fiber.Map{
		"fromWalletId": 1, "toWalletId": 2, "amount": 50000,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, true, envelope["success"])
}

func TestLedgerHandlersRequireClaims(t *testing.T) {
	app := fiber.New()
	handler := NewTransactionHandler(&stubLedgerService{})
	app.Post("/api/transactions", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
