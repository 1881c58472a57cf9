package handlers

import (
	"vimo/internal/middleware"
	"vimo/internal/services/report"
	"vimo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Get returns the aggregated report for ?period=week|month|year
// (month when absent or unrecognized).
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	result, err := h.reportService.Generate(c.Context(), ownerID, c.Query("period", report.PeriodMonth))
	if err != nil {
		return utils.InternalError(c, "Không thể tải báo cáo")
	}
	return utils.Success(c, result)
}
