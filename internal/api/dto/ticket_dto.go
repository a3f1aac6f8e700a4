package dto

import (
	"time"

	"github.com/spec-kit/eventpass/internal/domain"
)

// CreateTicketRequest payload for POST /api/event/ticket/create.
// PricePaid is a pointer so an absent field is distinguishable from an
// explicit zero.
type CreateTicketRequest struct {
	EventID       string   `json:"eventId"`
	EventName     string   `json:"eventName"`
	BuyerName     string   `json:"buyerName"`
	BuyerPhone    *string  `json:"buyerPhone"`
	TicketType    string   `json:"ticketType"`
	PricePaid     *float64 `json:"pricePaid"`
	PaymentMethod string   `json:"paymentMethod"`
	ControlNumber string   `json:"controlNumber"`
}

// ScanRequest payload for POST /api/event/ticket/scan.
type ScanRequest struct {
	TicketID string `json:"ticketId"`
}

// ScanResponse is the structured scan outcome, always delivered with a
// 200 status.
type ScanResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	BuyerName string `json:"buyerName,omitempty"`
}

// TicketResponse is the wire shape of a ticket.
type TicketResponse struct {
	TicketID         string              `json:"ticketId"`
	EventID          string              `json:"eventId"`
	EventName        string              `json:"eventName"`
	BuyerName        string              `json:"buyerName"`
	BuyerPhone       *string             `json:"buyerPhone"`
	TicketType       string              `json:"ticketType"`
	PricePaid        float64             `json:"pricePaid"`
	PaymentMethod    string              `json:"paymentMethod"`
	SoldBy           string              `json:"soldBy"`
	PurchaseDate     time.Time           `json:"purchaseDate"`
	Status           domain.TicketStatus `json:"status"`
	CheckInTimestamp *time.Time          `json:"checkInTimestamp"`
	ScannedBy        *string             `json:"scannedBy"`
	IsDeleted        bool                `json:"isDeleted"`
	ControlNumber    string              `json:"controlNumber"`
}
