package report

import qrcode "github.com/skip2/go-qrcode"

// TicketQR encodes a ticket id as a 256px PNG QR image. The validator app
// scans this to drive the check-in endpoint.
func TicketQR(ticketID string) ([]byte, error) {
	return qrcode.Encode(ticketID, qrcode.Medium, 256)
}
