package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"intranet-portal/internal/app/service"
)

// DashboardHandler handles dashboard-related HTTP requests.
type DashboardHandler struct {
	directoryService *service.DirectoryService
	logger           *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.DirectoryService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		directoryService: svc,
		logger:           logger,
	}
}

// Render handles GET /dashboard
// Renders the portal stats HTML page using Fiber's template engine.
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	stats, err := h.directoryService.Stats(c.Context())
	if err != nil {
		h.logger.Warn("dashboard stats unavailable", zap.Error(err))
	}

	return c.Render("pages/dashboard", fiber.Map{
		"Title":       "Intranet Portal Dashboard",
		"Contents":    stats.Contents,
		"Users":       stats.Users,
		"Departments": stats.Departments,
		"Tags":        stats.Tags,
	}, "layouts/base")
}
