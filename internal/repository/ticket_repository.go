package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/eventpass/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByEvent(ctx context.Context, eventID string, ascending bool) ([]domain.Ticket, error)
	SoftDelete(ctx context.Context, id string) error
	CheckIn(ctx context.Context, id, scannedBy string) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `ticket_id, event_id, event_name, buyer_name, buyer_phone, ticket_type,
       price_paid, payment_method, sold_by, purchase_date, status,
       check_in_timestamp, scanned_by, is_deleted, control_number`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO event_tickets (ticket_id, event_id, event_name, buyer_name, buyer_phone,
            ticket_type, price_paid, payment_method, sold_by, status, control_number)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING purchase_date`
	return r.pool.QueryRow(ctx, query,
		ticket.ID,
		ticket.EventID,
		ticket.EventName,
		ticket.BuyerName,
		ticket.BuyerPhone,
		ticket.TicketType,
		ticket.PricePaid,
		ticket.PaymentMethod,
		ticket.SoldBy,
		ticket.Status,
		ticket.ControlNumber,
	).Scan(&ticket.PurchaseDate)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM event_tickets WHERE ticket_id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *ticketRepository) ListByEvent(ctx context.Context, eventID string, ascending bool) ([]domain.Ticket, error) {
	order := "DESC"
	if ascending {
		order = "ASC"
	}
	query := `SELECT ` + ticketColumns + ` FROM event_tickets WHERE event_id=$1 ORDER BY purchase_date ` + order
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		ticket, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *ticket)
	}
	return tickets, rows.Err()
}

func (r *ticketRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `UPDATE event_tickets SET status=$1, is_deleted=TRUE WHERE ticket_id=$2`
	cmd, err := r.pool.Exec(ctx, query, domain.TicketStatusDeleted, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CheckIn performs the check-in transition as a single conditional update.
// The WHERE clause guarantees exactly one concurrent scanner wins; losers
// get pgx.ErrNoRows and re-read the ticket for the already-used outcome.
func (r *ticketRepository) CheckIn(ctx context.Context, id, scannedBy string) (*domain.Ticket, error) {
	query := `
        UPDATE event_tickets
        SET status=$1, check_in_timestamp=NOW(), scanned_by=$2
        WHERE ticket_id=$3 AND status=$4 AND NOT is_deleted
        RETURNING ` + ticketColumns
	return r.scanOne(r.pool.QueryRow(ctx, query,
		domain.TicketStatusCheckedIn,
		scannedBy,
		id,
		domain.TicketStatusValid,
	))
}

func (r *ticketRepository) scanOne(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := row.Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.EventName,
		&ticket.BuyerName,
		&ticket.BuyerPhone,
		&ticket.TicketType,
		&ticket.PricePaid,
		&ticket.PaymentMethod,
		&ticket.SoldBy,
		&ticket.PurchaseDate,
		&ticket.Status,
		&ticket.CheckInTimestamp,
		&ticket.ScannedBy,
		&ticket.IsDeleted,
		&ticket.ControlNumber,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}
