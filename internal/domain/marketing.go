package domain

import "time"

// QRType selects what a short-link resolves to.
type QRType string

const (
	QRTypeRedirect QRType = "redirect"
	QRTypeLinkPage QRType = "linkpage"
)

// PageLink is one entry on a linkpage.
type PageLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LeadCapture configures the optional contact form on a linkpage.
type LeadCapture struct {
	Enabled    bool   `json:"enabled"`
	Title      string `json:"title,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
}

// MarketingQR maps a short id to either a redirect target or a linkpage.
// ScanCount is incremented on every resolution attempt, before the
// redirect or page is served.
type MarketingQR struct {
	ShortID        string
	Title          string
	Type           QRType
	DestinationURL string
	Links          []PageLink
	ScanCount      int64
	LeadCapture    LeadCapture
	CreatedAt      time.Time
}
