package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/eventpass/internal/domain"
)

// utf8BOM keeps spreadsheet applications from misreading accented names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"Data Venda", "Comprador", "Telefone", "Tipo Convite", "Preco",
	"Metodo Pagamento", "Vendido Por", "Estado", "Data CheckIn", "Validado Por",
}

const csvTimeLayout = "02/01/2006 15:04:05"

// SalesCSV renders the sales report for a list of tickets. Callers pass
// tickets already sorted by purchase date ascending.
func SalesCSV(tickets []domain.Ticket) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for i := range tickets {
		if err := writer.Write(salesRow(&tickets[i])); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func salesRow(ticket *domain.Ticket) []string {
	phone := ""
	if ticket.BuyerPhone != nil {
		phone = *ticket.BuyerPhone
	}
	scannedBy := ""
	if ticket.ScannedBy != nil {
		scannedBy = *ticket.ScannedBy
	}
	return []string{
		ticket.PurchaseDate.Format(csvTimeLayout),
		ticket.BuyerName,
		phone,
		ticket.TicketType,
		localizedPrice(ticket.PricePaid),
		ticket.PaymentMethod,
		ticket.SoldBy,
		string(ticket.Status),
		formatOptionalTime(ticket.CheckInTimestamp),
		scannedBy,
	}
}

// localizedPrice formats with a comma decimal separator, e.g. "100,5".
func localizedPrice(price float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(price, 'f', -1, 64), ".", ",")
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(csvTimeLayout)
}
