package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/eventpass/internal/api/dto"
	"github.com/spec-kit/eventpass/internal/domain"
	"github.com/spec-kit/eventpass/internal/service"
	apperrors "github.com/spec-kit/eventpass/pkg/util"
)

// MarketingHandler manages short-link QR codes.
type MarketingHandler struct {
	service *service.MarketingService
}

// NewMarketingHandler constructs handler.
func NewMarketingHandler(marketingService *service.MarketingService) *MarketingHandler {
	return &MarketingHandler{service: marketingService}
}

// Create POST /api/marketing/qr/create.
func (h *MarketingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateQRRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	qr, err := h.service.Create(c.Context(), service.QRCreateInput{
		Type:           req.Type,
		Title:          req.Title,
		DestinationURL: req.DestinationURL,
		Links:          req.Links,
		LeadCapture:    req.LeadCapture,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"message":   "QR Code criado com sucesso!",
		"shortId":   qr.ShortID,
		"qrCodeUrl": c.BaseURL() + "/r/" + qr.ShortID,
	})
}

// List GET /api/marketing/qrs.
func (h *MarketingHandler) List(c *fiber.Ctx) error {
	qrs, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.QRResponse, 0, len(qrs))
	for i := range qrs {
		items = append(items, qrResponse(&qrs[i]))
	}
	return c.JSON(items)
}

// Get GET /api/marketing/qr/:shortId.
func (h *MarketingHandler) Get(c *fiber.Ctx) error {
	qr, err := h.service.Get(c.Context(), c.Params("shortId"))
	if err != nil {
		return err
	}
	return c.JSON(qrResponse(qr))
}

// Update PUT /api/marketing/qr/update/:shortId.
func (h *MarketingHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateQRRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.Update(c.Context(), c.Params("shortId"), req.Title, req.DestinationURL); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "QR Code atualizado com sucesso.",
	})
}

// Delete DELETE /api/marketing/qr/delete/:shortId.
func (h *MarketingHandler) Delete(c *fiber.Ctx) error {
	shortID := c.Params("shortId")
	if err := h.service.Delete(c.Context(), shortID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "QR Code " + shortID + " excluído com sucesso.",
	})
}

func qrResponse(qr *domain.MarketingQR) dto.QRResponse {
	return dto.QRResponse{
		ShortID:        qr.ShortID,
		Title:          qr.Title,
		Type:           qr.Type,
		DestinationURL: qr.DestinationURL,
		Links:          qr.Links,
		ScanCount:      qr.ScanCount,
		LeadCapture:    qr.LeadCapture,
		CreatedAt:      qr.CreatedAt,
	}
}
