package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/eventpass/internal/domain"
)

// EventRepository encapsulates event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (event_id, event_name, event_location, event_date, event_time,
            organizer_name, support_contact, event_details, ticket_types, combos)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING created_at`
	err := r.pool.QueryRow(ctx, query,
		event.ID,
		event.Name,
		event.Location,
		event.Date,
		event.Time,
		event.OrganizerName,
		event.SupportContact,
		event.Details,
		event.TicketTypes,
		event.Combos,
	).Scan(&event.CreatedAt)
	return translateUnique(err)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
        UPDATE events SET event_name=$1, event_location=$2, event_date=$3, event_time=$4,
            organizer_name=$5, support_contact=$6, event_details=$7, ticket_types=$8, combos=$9
        WHERE event_id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		event.Name,
		event.Location,
		event.Date,
		event.Time,
		event.OrganizerName,
		event.SupportContact,
		event.Details,
		event.TicketTypes,
		event.Combos,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	const query = `
        SELECT event_id, event_name, event_location, event_date, event_time,
               organizer_name, support_contact, event_details, ticket_types, combos, created_at
        FROM events WHERE event_id=$1`
	var event domain.Event
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Location,
		&event.Date,
		&event.Time,
		&event.OrganizerName,
		&event.SupportContact,
		&event.Details,
		&event.TicketTypes,
		&event.Combos,
		&event.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	const query = `
        SELECT event_id, event_name, event_location, event_date, event_time,
               organizer_name, support_contact, event_details, ticket_types, combos, created_at
        FROM events ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Location,
			&event.Date,
			&event.Time,
			&event.OrganizerName,
			&event.SupportContact,
			&event.Details,
			&event.TicketTypes,
			&event.Combos,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
