package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"intranet-portal/internal/app/service"
	"intranet-portal/internal/domain"
	"intranet-portal/internal/transport/httpserver/dto"
)

// DirectoryHandler handles user directory and aggregate HTTP requests.
type DirectoryHandler struct {
	service *service.DirectoryService
	logger  *zap.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(svc *service.DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: svc,
		logger:  logger,
	}
}

// Users handles GET /api/v1/users
func (h *DirectoryHandler) Users(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid query parameters", "INVALID_PARAMS"))
	}

	users, meta, err := h.service.Users(c.Context(), req.ToQuery())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPage):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Page number must be greater than 0", dto.CodeInvalidPage))
		case errors.Is(err, domain.ErrInvalidLimit):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Limit must be between 1 and 100", dto.CodeInvalidLimit))
		default:
			h.logger.Error("user list failed", zap.Error(err))

			return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal server error", dto.CodeInternalError))
		}
	}

	return c.JSON(dto.OKPaginated(users, meta))
}

// Departments handles GET /api/v1/departments
// Query parameters are not consumed, unknown ones are ignored.
func (h *DirectoryHandler) Departments(c *fiber.Ctx) error {
	departments, err := h.service.Departments(c.Context())
	if err != nil {
		h.logger.Error("department aggregate failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal server error", dto.CodeInternalError))
	}

	return c.JSON(dto.OK(departments))
}

// Tags handles GET /api/v1/tags
func (h *DirectoryHandler) Tags(c *fiber.Ctx) error {
	tags, err := h.service.Tags(c.Context())
	if err != nil {
		h.logger.Error("tag aggregate failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal server error", dto.CodeInternalError))
	}

	return c.JSON(dto.OK(tags))
}
