package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/eventpass/internal/domain"
	"github.com/spec-kit/eventpass/internal/repository"
	"github.com/spec-kit/eventpass/internal/shortid"
	apperrors "github.com/spec-kit/eventpass/pkg/util"
)

// QRCreateInput carries the fields of a new marketing QR.
type QRCreateInput struct {
	Type           domain.QRType
	Title          string
	DestinationURL string
	Links          []domain.PageLink
	LeadCapture    *domain.LeadCapture
}

// Resolution is the outcome of resolving a short-link. Exactly one of the
// two shapes is meaningful: a redirect URL, or a linkpage document.
type Resolution struct {
	Type        domain.QRType
	RedirectURL string
	QR          *domain.MarketingQR
}

// MarketingService coordinates short-link CRUD and resolution.
type MarketingService struct {
	qrs   repository.MarketingQRRepository
	cache *repository.QRCache
}

// NewMarketingService builds the service. cache may be nil.
func NewMarketingService(qrs repository.MarketingQRRepository, cache *repository.QRCache) *MarketingService {
	return &MarketingService{qrs: qrs, cache: cache}
}

// Create validates the type-specific payload and stores a new QR under a
// random 7-character short id. A collision retries once.
func (s *MarketingService) Create(ctx context.Context, input QRCreateInput) (*domain.MarketingQR, error) {
	qr := &domain.MarketingQR{
		Title:       input.Title,
		Type:        input.Type,
		LeadCapture: domain.LeadCapture{Enabled: false},
	}
	if qr.Title == "" {
		qr.Title = "Página de Links"
	}
	if input.LeadCapture != nil {
		qr.LeadCapture = *input.LeadCapture
	}

	switch input.Type {
	case domain.QRTypeRedirect:
		if strings.TrimSpace(input.DestinationURL) == "" {
			return nil, apperrors.NewValidationError("destinationUrl is required for type 'redirect'", nil)
		}
		qr.DestinationURL = input.DestinationURL
		qr.Links = []domain.PageLink{}
	case domain.QRTypeLinkPage:
		if len(input.Links) == 0 {
			return nil, apperrors.NewValidationError("a non-empty links list is required for type 'linkpage'", nil)
		}
		qr.Links = input.Links
	case "":
		return nil, apperrors.NewValidationError("type is required", nil)
	default:
		return nil, apperrors.NewValidationError("unknown QR type", map[string]any{"type": string(input.Type)})
	}

	for attempt := 0; ; attempt++ {
		qr.ShortID = shortid.New(shortid.ShortLinkLength)
		err := s.qrs.Create(ctx, qr)
		if err == repository.ErrDuplicateID && attempt == 0 {
			continue
		}
		if err != nil {
			return nil, err
		}
		return qr, nil
	}
}

// List returns all QRs, newest first.
func (s *MarketingService) List(ctx context.Context) ([]domain.MarketingQR, error) {
	return s.qrs.List(ctx)
}

// Get returns a single QR.
func (s *MarketingService) Get(ctx context.Context, shortID string) (*domain.MarketingQR, error) {
	qr, err := s.qrs.GetByShortID(ctx, shortID)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("QR code", nil)
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}

// Update replaces the title and destination URL of a QR.
func (s *MarketingService) Update(ctx context.Context, shortID, title, destinationURL string) error {
	if title == "" || destinationURL == "" {
		return apperrors.NewValidationError("title and destinationUrl are required", nil)
	}
	err := s.qrs.Update(ctx, shortID, title, destinationURL)
	if err == pgx.ErrNoRows {
		return apperrors.NewNotFound("QR code", nil)
	}
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, shortID)
	return nil
}

// Delete removes a QR. Unlike tickets, QRs are configuration and are
// hard-deleted.
func (s *MarketingService) Delete(ctx context.Context, shortID string) error {
	err := s.qrs.Delete(ctx, shortID)
	if err == pgx.ErrNoRows {
		return apperrors.NewNotFound("QR code", nil)
	}
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, shortID)
	return nil
}

// Resolve looks up a short id, counts the scan and decides the outcome.
// The counter increment happens before anything is served, so a scan
// counts even when the client never follows the redirect.
func (s *MarketingService) Resolve(ctx context.Context, shortID string) (*Resolution, error) {
	qr, cached := s.cache.Get(ctx, shortID)
	if !cached {
		var err error
		qr, err = s.qrs.GetByShortID(ctx, shortID)
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("short link", nil)
		}
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, qr)
	}

	if err := s.qrs.IncrementScanCount(ctx, shortID); err != nil {
		if err == pgx.ErrNoRows {
			// Deleted between cache fill and resolve.
			s.cache.Invalidate(ctx, shortID)
			return nil, apperrors.NewNotFound("short link", nil)
		}
		return nil, err
	}

	if qr.Type == domain.QRTypeLinkPage {
		return &Resolution{Type: domain.QRTypeLinkPage, QR: qr}, nil
	}
	return &Resolution{
		Type:        domain.QRTypeRedirect,
		RedirectURL: normalizeDestination(qr.DestinationURL),
		QR:          qr,
	}, nil
}

// normalizeDestination prepends http:// when the stored URL has no scheme.
func normalizeDestination(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "http://" + url
}
