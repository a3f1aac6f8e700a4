package domain

import "time"

// TicketStatus enumerates the ticket lifecycle. The wire values are kept
// as stored by the deployed validator clients.
type TicketStatus string

const (
	TicketStatusValid     TicketStatus = "VALIDO"
	TicketStatusCheckedIn TicketStatus = "CHECK_IN_REALIZADO"
	TicketStatusDeleted   TicketStatus = "EXCLUIDO"
)

// Ticket is a sold admission. Status moves VALIDO -> CHECK_IN_REALIZADO
// only; IsDeleted overlays both states and always wins at scan time.
// Tickets are never hard-deleted.
type Ticket struct {
	ID               string
	EventID          string
	EventName        string
	BuyerName        string
	BuyerPhone       *string
	TicketType       string
	PricePaid        float64
	PaymentMethod    string
	SoldBy           string
	PurchaseDate     time.Time
	Status           TicketStatus
	CheckInTimestamp *time.Time
	ScannedBy        *string
	IsDeleted        bool
	ControlNumber    string
}
