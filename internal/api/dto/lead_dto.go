package dto

import "time"

// RegisterLeadRequest payload for the public POST /api/leads/register.
type RegisterLeadRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	City       *string `json:"city"`
	SourceQRID string  `json:"sourceQrId"`
}

// LeadResponse is the wire shape of a captured lead.
type LeadResponse struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	City       *string   `json:"city"`
	SourceQRID string    `json:"sourceQrId"`
	Timestamp  time.Time `json:"timestamp"`
}
