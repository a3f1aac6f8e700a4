package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/eventpass/internal/api/dto"
	"github.com/spec-kit/eventpass/internal/domain"
	"github.com/spec-kit/eventpass/internal/service"
	apperrors "github.com/spec-kit/eventpass/pkg/util"
)

// EventsHandler manages event CRUD endpoints.
type EventsHandler struct {
	service *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventService *service.EventService) *EventsHandler {
	return &EventsHandler{service: eventService}
}

// Create POST /api/events/create.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	event, err := h.service.Create(c.Context(), eventInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Evento criado com sucesso!",
		"eventId": event.ID,
	})
}

// Update PUT /api/events/update/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.Update(c.Context(), c.Params("id"), eventInput(req)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Evento atualizado com sucesso.",
	})
}

// Get GET /api/events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	event, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(eventResponse(event))
}

// List GET /api/events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	events, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		items = append(items, eventResponse(&events[i]))
	}
	return c.JSON(items)
}

func eventInput(req dto.EventRequest) service.EventInput {
	return service.EventInput{
		Name:           req.EventName,
		Location:       req.EventLocation,
		Date:           req.EventDate,
		Time:           req.EventTime,
		OrganizerName:  req.OrganizerName,
		SupportContact: req.SupportContact,
		Details:        req.EventDetails,
		TicketTypes:    req.TicketTypes,
		Combos:         req.Combos,
	}
}

func eventResponse(event *domain.Event) dto.EventResponse {
	return dto.EventResponse{
		EventID:        event.ID,
		EventName:      event.Name,
		EventLocation:  event.Location,
		EventDate:      event.Date,
		EventTime:      event.Time,
		OrganizerName:  event.OrganizerName,
		SupportContact: event.SupportContact,
		EventDetails:   event.Details,
		TicketTypes:    event.TicketTypes,
		Combos:         event.Combos,
		CreatedAt:      event.CreatedAt,
	}
}
