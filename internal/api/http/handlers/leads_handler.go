package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/eventpass/internal/api/dto"
	"github.com/spec-kit/eventpass/internal/service"
	apperrors "github.com/spec-kit/eventpass/pkg/util"
)

// LeadsHandler manages lead capture.
type LeadsHandler struct {
	service *service.LeadService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(leadService *service.LeadService) *LeadsHandler {
	return &LeadsHandler{service: leadService}
}

// Register POST /api/leads/register. Public.
func (h *LeadsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if _, err := h.service.Register(c.Context(), service.LeadInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		City:       req.City,
		SourceQRID: req.SourceQRID,
	}); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Cadastro realizado com sucesso!",
	})
}

// List GET /api/leads.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	leads, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		items = append(items, dto.LeadResponse{
			Name:       lead.Name,
			Email:      lead.Email,
			Phone:      lead.Phone,
			City:       lead.City,
			SourceQRID: lead.SourceQRID,
			Timestamp:  lead.Timestamp,
		})
	}
	return c.JSON(items)
}
