package dto

import (
	"time"

	"github.com/spec-kit/eventpass/internal/domain"
)

// EventRequest payload for event create and update.
type EventRequest struct {
	EventName      string              `json:"eventName"`
	EventLocation  string              `json:"eventLocation"`
	EventDate      string              `json:"eventDate"`
	EventTime      string              `json:"eventTime"`
	OrganizerName  string              `json:"organizerName"`
	SupportContact string              `json:"supportContact"`
	EventDetails   string              `json:"eventDetails"`
	TicketTypes    []domain.TicketType `json:"ticketTypes"`
	Combos         []domain.Combo      `json:"combos"`
}

// EventResponse is the wire shape of an event.
type EventResponse struct {
	EventID        string              `json:"eventId"`
	EventName      string              `json:"eventName"`
	EventLocation  string              `json:"eventLocation"`
	EventDate      string              `json:"eventDate"`
	EventTime      string              `json:"eventTime"`
	OrganizerName  string              `json:"organizerName,omitempty"`
	SupportContact string              `json:"supportContact,omitempty"`
	EventDetails   string              `json:"eventDetails"`
	TicketTypes    []domain.TicketType `json:"ticketTypes"`
	Combos         []domain.Combo      `json:"combos"`
	CreatedAt      time.Time           `json:"createdAt"`
}
