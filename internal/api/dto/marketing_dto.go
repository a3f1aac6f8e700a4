package dto

import (
	"time"

	"github.com/spec-kit/eventpass/internal/domain"
)

// CreateQRRequest payload for POST /api/marketing/qr/create.
type CreateQRRequest struct {
	Type           domain.QRType       `json:"type"`
	Title          string              `json:"title"`
	DestinationURL string              `json:"destinationUrl"`
	Links          []domain.PageLink   `json:"links"`
	LeadCapture    *domain.LeadCapture `json:"leadCapture"`
}

// UpdateQRRequest payload for PUT /api/marketing/qr/update/:shortId.
type UpdateQRRequest struct {
	Title          string `json:"title"`
	DestinationURL string `json:"destinationUrl"`
}

// QRResponse is the wire shape of a marketing QR.
type QRResponse struct {
	ShortID        string             `json:"shortId"`
	Title          string             `json:"title"`
	Type           domain.QRType      `json:"type"`
	DestinationURL string             `json:"destinationUrl,omitempty"`
	Links          []domain.PageLink  `json:"links,omitempty"`
	ScanCount      int64              `json:"scanCount"`
	LeadCapture    domain.LeadCapture `json:"leadCapture"`
	CreatedAt      time.Time          `json:"createdAt"`
}
