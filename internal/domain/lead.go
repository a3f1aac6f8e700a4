package domain

import "time"

// Lead is a prospective-customer contact captured through a marketing QR
// landing page. Append-only.
type Lead struct {
	ID         string
	Name       string
	Email      string
	Phone      *string
	City       *string
	SourceQRID string
	Timestamp  time.Time
}
