package domain

import "time"

// TicketType is a single priced admission category offered by an event.
type TicketType struct {
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// Combo bundles several admissions at a special price. Stored as-is,
// never computed against individual ticket types.
type Combo struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Active   bool    `json:"active"`
}

// Event is an event definition. The ID is derived from the name at
// creation time and never changes afterwards.
type Event struct {
	ID             string
	Name           string
	Location       string
	Date           string
	Time           string
	OrganizerName  string
	SupportContact string
	Details        string
	TicketTypes    []TicketType
	Combos         []Combo
	CreatedAt      time.Time
}
