package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/eventpass/internal/domain"
	"github.com/spec-kit/eventpass/internal/repository"
	apperrors "github.com/spec-kit/eventpass/pkg/util"
)

// Scan outcome messages, kept verbatim for the deployed validator clients.
const (
	scanMsgInvalid = "Convite Inválido"
	scanMsgDeleted = "Convite Excluído"
	scanMsgGranted = "Entrada Liberada"
)

// ScanStatus classifies a scan outcome. Outcomes are normal results, not
// errors; they always travel as 200 payloads.
type ScanStatus string

const (
	ScanStatusSuccess ScanStatus = "success"
	ScanStatusWarning ScanStatus = "warning"
	ScanStatusError   ScanStatus = "error"
)

// ScanResult is what the validator client sees after scanning a ticket.
type ScanResult struct {
	Status    ScanStatus
	Message   string
	BuyerName string
}

// TicketIssueInput carries the fields of a sale. PricePaid is a pointer
// so a missing price is rejected while an explicit zero (courtesy ticket)
// is accepted.
type TicketIssueInput struct {
	EventID       string
	EventName     string
	BuyerName     string
	BuyerPhone    *string
	TicketType    string
	PricePaid     *float64
	PaymentMethod string
	ControlNumber string
}

// TicketService coordinates ticket issuance, soft deletion and the
// check-in state machine.
type TicketService struct {
	tickets repository.TicketRepository
}

// NewTicketService builds the service.
func NewTicketService(tickets repository.TicketRepository) *TicketService {
	return &TicketService{tickets: tickets}
}

// Issue records a sale and returns the new ticket.
func (s *TicketService) Issue(ctx context.Context, soldBy string, input TicketIssueInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.EventID) == "" ||
		strings.TrimSpace(input.EventName) == "" ||
		strings.TrimSpace(input.BuyerName) == "" ||
		strings.TrimSpace(input.TicketType) == "" ||
		input.PricePaid == nil ||
		strings.TrimSpace(input.PaymentMethod) == "" {
		return nil, apperrors.NewValidationError("eventId, eventName, buyerName, ticketType, pricePaid and paymentMethod are required", nil)
	}

	ticket := &domain.Ticket{
		ID:            uuid.NewString(),
		EventID:       input.EventID,
		EventName:     input.EventName,
		BuyerName:     input.BuyerName,
		BuyerPhone:    input.BuyerPhone,
		TicketType:    input.TicketType,
		PricePaid:     *input.PricePaid,
		PaymentMethod: input.PaymentMethod,
		SoldBy:        soldBy,
		Status:        domain.TicketStatusValid,
		ControlNumber: input.ControlNumber,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Get returns a ticket by id.
func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("ticket", nil)
	}
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListByEvent returns all tickets for an event, newest sale first.
func (s *TicketService) ListByEvent(ctx context.Context, eventID string) ([]domain.Ticket, error) {
	return s.tickets.ListByEvent(ctx, eventID, false)
}

// ListByEventForExport returns all tickets for an event, oldest sale first.
func (s *TicketService) ListByEventForExport(ctx context.Context, eventID string) ([]domain.Ticket, error) {
	return s.tickets.ListByEvent(ctx, eventID, true)
}

// SoftDelete marks a ticket EXCLUIDO. The record stays in the store; the
// flag short-circuits scanning from then on.
func (s *TicketService) SoftDelete(ctx context.Context, id string) error {
	err := s.tickets.SoftDelete(ctx, id)
	if err == pgx.ErrNoRows {
		return apperrors.NewNotFound("ticket", nil)
	}
	return err
}

// Scan runs the check-in state machine. Only step 4 of the machine writes,
// through a conditional update that exactly one concurrent scanner can win.
func (s *TicketService) Scan(ctx context.Context, ticketID, scannedBy string) (*ScanResult, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err == pgx.ErrNoRows {
		return &ScanResult{Status: ScanStatusError, Message: scanMsgInvalid}, nil
	}
	if err != nil {
		return nil, err
	}

	if outcome := terminalOutcome(ticket); outcome != nil {
		return outcome, nil
	}

	updated, err := s.tickets.CheckIn(ctx, ticketID, scannedBy)
	if err == pgx.ErrNoRows {
		// Lost the race (or the ticket was deleted underneath us):
		// re-read and report the terminal state.
		ticket, err = s.tickets.GetByID(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		if outcome := terminalOutcome(ticket); outcome != nil {
			return outcome, nil
		}
		return &ScanResult{Status: ScanStatusError, Message: scanMsgInvalid}, nil
	}
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		Status:    ScanStatusSuccess,
		Message:   scanMsgGranted,
		BuyerName: updated.BuyerName,
	}, nil
}

// terminalOutcome reports the deleted/already-used outcomes. The deleted
// flag wins regardless of the status field.
func terminalOutcome(ticket *domain.Ticket) *ScanResult {
	if ticket.IsDeleted {
		return &ScanResult{Status: ScanStatusError, Message: scanMsgDeleted}
	}
	if ticket.Status == domain.TicketStatusCheckedIn {
		checkinTime := ""
		if ticket.CheckInTimestamp != nil {
			checkinTime = ticket.CheckInTimestamp.Format("15:04:05")
		}
		scannedBy := "Desconhecido"
		if ticket.ScannedBy != nil && *ticket.ScannedBy != "" {
			scannedBy = *ticket.ScannedBy
		}
		return &ScanResult{
			Status:    ScanStatusWarning,
			Message:   "Convite Já Utilizado às " + checkinTime + " por " + scannedBy,
			BuyerName: ticket.BuyerName,
		}
	}
	return nil
}
