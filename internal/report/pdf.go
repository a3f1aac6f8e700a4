package report

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/signintech/gopdf"

	"github.com/spec-kit/eventpass/internal/domain"
)

// TicketPDFGenerator renders printable tickets.
type TicketPDFGenerator struct {
	fontPath string
}

// NewTicketPDFGenerator builds a generator that loads its font from
// fontPath on each render.
func NewTicketPDFGenerator(fontPath string) *TicketPDFGenerator {
	return &TicketPDFGenerator{fontPath: fontPath}
}

// Generate renders the ticket with its event details and an embedded QR
// image of the ticket id.
func (g *TicketPDFGenerator) Generate(ticket *domain.Ticket, event *domain.Event, qrCode []byte) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := pdf.AddTTFFont("ticket", g.fontPath); err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	if err := pdf.SetFont("ticket", "", 18); err != nil {
		return nil, fmt.Errorf("failed to set font: %w", err)
	}
	pdf.SetX(40)
	pdf.SetY(40)
	pdf.Cell(nil, ticket.EventName)

	if err := pdf.SetFont("ticket", "", 12); err != nil {
		return nil, fmt.Errorf("failed to set font: %w", err)
	}
	pdf.SetY(75)
	for _, line := range ticketLines(ticket, event) {
		pdf.SetX(40)
		pdf.Cell(nil, line)
		pdf.Br(18)
	}

	if len(qrCode) > 0 {
		if err := drawQR(pdf, qrCode); err != nil {
			return nil, err
		}
	}

	pdf.SetY(780)
	pdf.SetX(40)
	pdf.Cell(nil, "Apresente este convite na entrada do evento.")

	var buf bytes.Buffer
	if err := pdf.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func ticketLines(ticket *domain.Ticket, event *domain.Event) []string {
	lines := []string{
		"Convite: " + ticket.ID,
		"Comprador: " + ticket.BuyerName,
		"Tipo: " + ticket.TicketType,
	}
	if ticket.ControlNumber != "" {
		lines = append(lines, "Nº de Controle: "+ticket.ControlNumber)
	}
	if event != nil {
		if event.Location != "" {
			lines = append(lines, "Local: "+event.Location)
		}
		if event.Date != "" {
			lines = append(lines, "Data: "+formatEventDate(event.Date)+" "+event.Time)
		}
		if event.OrganizerName != "" {
			lines = append(lines, "Organização: "+event.OrganizerName)
		}
		if event.SupportContact != "" {
			lines = append(lines, "Suporte: "+event.SupportContact)
		}
	}
	return lines
}

func drawQR(pdf *gopdf.GoPdf, qrCode []byte) error {
	img, err := png.Decode(bytes.NewReader(qrCode))
	if err != nil {
		return fmt.Errorf("failed to decode QR image: %w", err)
	}
	rect := &gopdf.Rect{W: 160, H: 160}
	if err := pdf.ImageFrom(img, 217, 420, rect); err != nil {
		return fmt.Errorf("failed to draw QR image: %w", err)
	}
	return nil
}

// formatEventDate converts the stored YYYY-MM-DD date to DD/MM/YYYY.
// Unparseable dates pass through untouched.
func formatEventDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("02/01/2006")
}
