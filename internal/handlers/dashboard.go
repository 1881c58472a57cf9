package handlers

import (
	"vimo/internal/middleware"
	"vimo/internal/services/dashboard"
	"vimo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	snapshot, err := h.dashboardService.Snapshot(c.Context(), ownerID)
	if err != nil {
		return utils.InternalError(c, "Không thể tải trang chủ")
	}
	return utils.Success(c, snapshot)
}
