package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/eventpass/internal/domain"
	"github.com/spec-kit/eventpass/internal/repository"
	"github.com/spec-kit/eventpass/internal/shortid"
	apperrors "github.com/spec-kit/eventpass/pkg/util"
)

// EventInput carries the mutable fields of an event.
type EventInput struct {
	Name           string
	Location       string
	Date           string
	Time           string
	OrganizerName  string
	SupportContact string
	Details        string
	TicketTypes    []domain.TicketType
	Combos         []domain.Combo
}

func (in EventInput) validate() error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" ||
		len(in.TicketTypes) == 0 {
		return apperrors.NewValidationError("eventName, eventLocation, eventDate, eventTime and ticketTypes are required", nil)
	}
	return nil
}

// EventService coordinates event CRUD.
type EventService struct {
	events repository.EventRepository
}

// NewEventService builds the service.
func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events}
}

// Create stores a new event under a human-readable id derived from the
// name plus a random suffix. A primary-key collision retries once with a
// fresh suffix.
func (s *EventService) Create(ctx context.Context, input EventInput) (*domain.Event, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	event := eventFromInput(input)
	for attempt := 0; ; attempt++ {
		event.ID = deriveEventID(input.Name)
		err := s.events.Create(ctx, event)
		if err == repository.ErrDuplicateID && attempt == 0 {
			continue
		}
		if err != nil {
			return nil, err
		}
		return event, nil
	}
}

// Update replaces the mutable fields of an event. The id never changes.
func (s *EventService) Update(ctx context.Context, id string, input EventInput) error {
	if err := input.validate(); err != nil {
		return err
	}
	event := eventFromInput(input)
	event.ID = id
	err := s.events.Update(ctx, event)
	if err == pgx.ErrNoRows {
		return apperrors.NewNotFound("event", nil)
	}
	return err
}

// Get returns a single event.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("event", nil)
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// List returns all events, newest first.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func eventFromInput(input EventInput) *domain.Event {
	combos := input.Combos
	if combos == nil {
		combos = []domain.Combo{}
	}
	return &domain.Event{
		Name:           input.Name,
		Location:       input.Location,
		Date:           input.Date,
		Time:           input.Time,
		OrganizerName:  input.OrganizerName,
		SupportContact: input.SupportContact,
		Details:        input.Details,
		TicketTypes:    input.TicketTypes,
		Combos:         combos,
	}
}

// deriveEventID uppercases the alphanumeric characters of the name and
// appends a random 4-character suffix, e.g. "GALA_x9Qk".
func deriveEventID(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String() + "_" + shortid.New(shortid.EventSuffixLength)
}
