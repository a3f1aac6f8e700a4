package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/eventpass/internal/domain"
)

func TestSalesCSV(t *testing.T) {
	phone := "11999990000"
	scannedBy := "Porteiro A"
	checkIn := time.Date(2026, 9, 12, 22, 15, 3, 0, time.UTC)
	tickets := []domain.Ticket{
		{
			PurchaseDate:     time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
			BuyerName:        "José da Silva",
			BuyerPhone:       &phone,
			TicketType:       "Pista",
			PricePaid:        100.5,
			PaymentMethod:    "pix",
			SoldBy:           "vendedor@example.com",
			Status:           domain.TicketStatusCheckedIn,
			CheckInTimestamp: &checkIn,
			ScannedBy:        &scannedBy,
		},
		{
			PurchaseDate:  time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC),
			BuyerName:     "Ana",
			TicketType:    "VIP",
			PricePaid:     150,
			PaymentMethod: "dinheiro",
			SoldBy:        "vendedor@example.com",
			Status:        domain.TicketStatusValid,
		},
	}

	out, err := SalesCSV(tickets)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Data Venda", "Comprador", "Telefone", "Tipo Convite", "Preco",
		"Metodo Pagamento", "Vendido Por", "Estado", "Data CheckIn", "Validado Por",
	}, records[0])

	assert.Equal(t, "01/09/2026 10:30:00", records[1][0])
	assert.Equal(t, "José da Silva", records[1][1])
	assert.Equal(t, "100,5", records[1][4])
	assert.Equal(t, "CHECK_IN_REALIZADO", records[1][7])
	assert.Equal(t, "12/09/2026 22:15:03", records[1][8])
	assert.Equal(t, "Porteiro A", records[1][9])

	assert.Equal(t, "", records[2][2])
	assert.Equal(t, "150", records[2][4])
	assert.Equal(t, "VALIDO", records[2][7])
	assert.Equal(t, "", records[2][8])
	assert.Equal(t, "", records[2][9])
}

func TestSalesCSVEmpty(t *testing.T) {
	out, err := SalesCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
