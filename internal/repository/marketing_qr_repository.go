package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/eventpass/internal/domain"
)

// MarketingQRRepository encapsulates short-link persistence.
type MarketingQRRepository interface {
	Create(ctx context.Context, qr *domain.MarketingQR) error
	GetByShortID(ctx context.Context, shortID string) (*domain.MarketingQR, error)
	List(ctx context.Context) ([]domain.MarketingQR, error)
	Update(ctx context.Context, shortID, title, destinationURL string) error
	Delete(ctx context.Context, shortID string) error
	IncrementScanCount(ctx context.Context, shortID string) error
}

type marketingQRRepository struct {
	pool *pgxpool.Pool
}

// NewMarketingQRRepository instantiates repository.
func NewMarketingQRRepository(pool *pgxpool.Pool) MarketingQRRepository {
	return &marketingQRRepository{pool: pool}
}

const qrColumns = `short_id, title, qr_type, destination_url, links, scan_count, lead_capture, created_at`

func (r *marketingQRRepository) Create(ctx context.Context, qr *domain.MarketingQR) error {
	const query = `
        INSERT INTO marketing_qrs (short_id, title, qr_type, destination_url, links, lead_capture)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at`
	err := r.pool.QueryRow(ctx, query,
		qr.ShortID,
		qr.Title,
		qr.Type,
		qr.DestinationURL,
		qr.Links,
		qr.LeadCapture,
	).Scan(&qr.CreatedAt)
	return translateUnique(err)
}

func (r *marketingQRRepository) GetByShortID(ctx context.Context, shortID string) (*domain.MarketingQR, error) {
	query := `SELECT ` + qrColumns + ` FROM marketing_qrs WHERE short_id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, shortID))
}

func (r *marketingQRRepository) List(ctx context.Context) ([]domain.MarketingQR, error) {
	query := `SELECT ` + qrColumns + ` FROM marketing_qrs ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var qrs []domain.MarketingQR
	for rows.Next() {
		qr, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		qrs = append(qrs, *qr)
	}
	return qrs, rows.Err()
}

func (r *marketingQRRepository) Update(ctx context.Context, shortID, title, destinationURL string) error {
	const query = `UPDATE marketing_qrs SET title=$1, destination_url=$2 WHERE short_id=$3`
	cmd, err := r.pool.Exec(ctx, query, title, destinationURL, shortID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *marketingQRRepository) Delete(ctx context.Context, shortID string) error {
	const query = `DELETE FROM marketing_qrs WHERE short_id=$1`
	cmd, err := r.pool.Exec(ctx, query, shortID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// IncrementScanCount adds one to the scan counter. The increment is a
// single atomic statement; it runs before the redirect or page is served
// so every resolution attempt counts.
func (r *marketingQRRepository) IncrementScanCount(ctx context.Context, shortID string) error {
	const query = `UPDATE marketing_qrs SET scan_count = scan_count + 1 WHERE short_id=$1`
	cmd, err := r.pool.Exec(ctx, query, shortID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *marketingQRRepository) scanOne(row pgx.Row) (*domain.MarketingQR, error) {
	var qr domain.MarketingQR
	if err := row.Scan(
		&qr.ShortID,
		&qr.Title,
		&qr.Type,
		&qr.DestinationURL,
		&qr.Links,
		&qr.ScanCount,
		&qr.LeadCapture,
		&qr.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &qr, nil
}
