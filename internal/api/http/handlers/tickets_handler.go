package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/eventpass/internal/api/dto"
	"github.com/spec-kit/eventpass/internal/auth"
	"github.com/spec-kit/eventpass/internal/domain"
	"github.com/spec-kit/eventpass/internal/report"
	"github.com/spec-kit/eventpass/internal/service"
	apperrors "github.com/spec-kit/eventpass/pkg/util"
)

// TicketsHandler manages ticket issuance, check-in and reporting.
type TicketsHandler struct {
	tickets *service.TicketService
	events  *service.EventService
	pdf     *report.TicketPDFGenerator
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService, events *service.EventService, pdf *report.TicketPDFGenerator) *TicketsHandler {
	return &TicketsHandler{tickets: tickets, events: events, pdf: pdf}
}

// Create POST /api/event/ticket/create.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.tickets.Issue(c.Context(), principal.DisplayName(), service.TicketIssueInput{
		EventID:       req.EventID,
		EventName:     req.EventName,
		BuyerName:     req.BuyerName,
		BuyerPhone:    req.BuyerPhone,
		TicketType:    req.TicketType,
		PricePaid:     req.PricePaid,
		PaymentMethod: req.PaymentMethod,
		ControlNumber: req.ControlNumber,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"ticketId": ticket.ID,
		"pdfUrl":   c.BaseURL() + "/api/event/ticket/" + ticket.ID + "/pdf",
	})
}

// Delete DELETE /api/event/ticket/delete/:id. Soft delete only.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	if err := h.tickets.SoftDelete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Convite excluído com sucesso.",
	})
}

// Scan POST /api/event/ticket/scan. All outcomes are 200 payloads.
func (h *TicketsHandler) Scan(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.TicketID) == "" {
		return apperrors.NewValidationError("ticketId is required", nil)
	}
	result, err := h.tickets.Scan(c.Context(), req.TicketID, principal.DisplayName())
	if err != nil {
		return err
	}
	return c.JSON(dto.ScanResponse{
		Status:    string(result.Status),
		Message:   result.Message,
		BuyerName: result.BuyerName,
	})
}

// ListByEvent GET /api/events/:id/tickets.
func (h *TicketsHandler) ListByEvent(c *fiber.Ctx) error {
	tickets, err := h.tickets.ListByEvent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return c.JSON(items)
}

// ExportCSV GET /api/events/:id/tickets/export.
func (h *TicketsHandler) ExportCSV(c *fiber.Ctx) error {
	eventID := c.Params("id")
	eventName := "evento"
	if event, err := h.events.Get(c.Context(), eventID); err == nil {
		eventName = event.Name
	}

	tickets, err := h.tickets.ListByEventForExport(c.Context(), eventID)
	if err != nil {
		return err
	}
	payload, err := report.SalesCSV(tickets)
	if err != nil {
		return err
	}

	filename := "relatorio_vendas_" + strings.ReplaceAll(eventName, " ", "_") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(payload)
}

// PDF GET /api/event/ticket/:id/pdf. Public: the link is handed to buyers.
func (h *TicketsHandler) PDF(c *fiber.Ctx) error {
	ticket, err := h.tickets.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	// Event lookup is best effort; the ticket renders without it.
	event, err := h.events.Get(c.Context(), ticket.EventID)
	if err != nil {
		event = nil
	}

	qrImage, err := report.TicketQR(ticket.ID)
	if err != nil {
		return err
	}
	payload, err := h.pdf.Generate(ticket, event, qrImage)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=convite_`+ticket.ID+`.pdf`)
	return c.Send(payload)
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		TicketID:         ticket.ID,
		EventID:          ticket.EventID,
		EventName:        ticket.EventName,
		BuyerName:        ticket.BuyerName,
		BuyerPhone:       ticket.BuyerPhone,
		TicketType:       ticket.TicketType,
		PricePaid:        ticket.PricePaid,
		PaymentMethod:    ticket.PaymentMethod,
		SoldBy:           ticket.SoldBy,
		PurchaseDate:     ticket.PurchaseDate,
		Status:           ticket.Status,
		CheckInTimestamp: ticket.CheckInTimestamp,
		ScannedBy:        ticket.ScannedBy,
		IsDeleted:        ticket.IsDeleted,
		ControlNumber:    ticket.ControlNumber,
	}
}
