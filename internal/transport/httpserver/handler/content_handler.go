// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"intranet-portal/internal/app/service"
	"intranet-portal/internal/domain"
	"intranet-portal/internal/transport/httpserver/dto"
)

// ContentHandler handles content listing and search HTTP requests.
type ContentHandler struct {
	service *service.ContentService
	logger  *zap.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(svc *service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/v1/content
func (h *ContentHandler) List(c *fiber.Ctx) error {
	var req dto.ContentRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid query parameters", "INVALID_PARAMS"))
	}

	items, meta, err := h.service.List(c.Context(), req.ToQuery())
	if err != nil {
		return h.queryError(c, err, "content list failed")
	}

	return c.JSON(dto.OKPaginated(items, meta))
}

// Search handles GET /api/v1/content/search
func (h *ContentHandler) Search(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid query parameters", "INVALID_PARAMS"))
	}

	query := req.ToQuery()
	out, err := h.service.Search(c.Context(), query)
	if err != nil {
		return h.queryError(c, err, "content search failed")
	}

	return c.JSON(dto.Envelope{
		Success: true,
		Data:    out.Results,
		Meta: dto.SearchMeta{
			PageMeta:      out.Meta,
			Query:         dto.EchoQuery(query),
			ExecutionTime: time.Since(start).Milliseconds(),
		},
	})
}

// queryError maps pagination validation errors to 400 responses with their
// specific codes. Anything else is logged and surfaced as a generic 500.
func (h *ContentHandler) queryError(c *fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidPage):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Page number must be greater than 0", dto.CodeInvalidPage))
	case errors.Is(err, domain.ErrInvalidLimit):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Limit must be between 1 and 100", dto.CodeInvalidLimit))
	default:
		h.logger.Error(msg, zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal server error", dto.CodeInternalError))
	}
}
