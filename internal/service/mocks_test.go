package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/eventpass/internal/domain"
	"github.com/spec-kit/eventpass/internal/repository"
	apperrors "github.com/spec-kit/eventpass/pkg/util"
)

func requireDomainStatus(t *testing.T, err error, status int) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, status, domainErr.HTTPStatus)
}

// mockTicketRepo is an in-memory TicketRepository. CheckIn mirrors the
// conditional-update semantics of the real store.
type mockTicketRepo struct {
	tickets       map[string]*domain.Ticket
	checkInDenied bool
	failWith      error
}

func newMockTicketRepo() *mockTicketRepo {
	return &mockTicketRepo{tickets: map[string]*domain.Ticket{}}
}

func (m *mockTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	if m.failWith != nil {
		return m.failWith
	}
	ticket.PurchaseDate = time.Now()
	clone := *ticket
	m.tickets[ticket.ID] = &clone
	return nil
}

func (m *mockTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	ticket, ok := m.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *ticket
	return &clone, nil
}

func (m *mockTicketRepo) ListByEvent(_ context.Context, eventID string, ascending bool) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, ticket := range m.tickets {
		if ticket.EventID == eventID {
			out = append(out, *ticket)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].PurchaseDate.Before(out[j].PurchaseDate)
		}
		return out[j].PurchaseDate.Before(out[i].PurchaseDate)
	})
	return out, nil
}

func (m *mockTicketRepo) SoftDelete(_ context.Context, id string) error {
	ticket, ok := m.tickets[id]
	if !ok {
		return pgx.ErrNoRows
	}
	ticket.Status = domain.TicketStatusDeleted
	ticket.IsDeleted = true
	return nil
}

func (m *mockTicketRepo) CheckIn(_ context.Context, id, scannedBy string) (*domain.Ticket, error) {
	ticket, ok := m.tickets[id]
	if !ok || m.checkInDenied || ticket.IsDeleted || ticket.Status != domain.TicketStatusValid {
		return nil, pgx.ErrNoRows
	}
	now := time.Now()
	ticket.Status = domain.TicketStatusCheckedIn
	ticket.CheckInTimestamp = &now
	ticket.ScannedBy = &scannedBy
	clone := *ticket
	return &clone, nil
}

// mockEventRepo is an in-memory EventRepository.
type mockEventRepo struct {
	events     map[string]*domain.Event
	createIDs  []string
	duplicates int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: map[string]*domain.Event{}}
}

func (m *mockEventRepo) Create(_ context.Context, event *domain.Event) error {
	m.createIDs = append(m.createIDs, event.ID)
	if m.duplicates > 0 {
		m.duplicates--
		return repository.ErrDuplicateID
	}
	event.CreatedAt = time.Now()
	clone := *event
	m.events[event.ID] = &clone
	return nil
}

func (m *mockEventRepo) Update(_ context.Context, event *domain.Event) error {
	existing, ok := m.events[event.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	createdAt := existing.CreatedAt
	clone := *event
	clone.CreatedAt = createdAt
	m.events[event.ID] = &clone
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *event
	return &clone, nil
}

func (m *mockEventRepo) List(_ context.Context) ([]domain.Event, error) {
	var out []domain.Event
	for _, event := range m.events {
		out = append(out, *event)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[j].CreatedAt.Before(out[i].CreatedAt)
	})
	return out, nil
}

// mockQRRepo is an in-memory MarketingQRRepository.
type mockQRRepo struct {
	qrs        map[string]*domain.MarketingQR
	duplicates int
}

func newMockQRRepo() *mockQRRepo {
	return &mockQRRepo{qrs: map[string]*domain.MarketingQR{}}
}

func (m *mockQRRepo) Create(_ context.Context, qr *domain.MarketingQR) error {
	if m.duplicates > 0 {
		m.duplicates--
		return repository.ErrDuplicateID
	}
	qr.CreatedAt = time.Now()
	clone := *qr
	m.qrs[qr.ShortID] = &clone
	return nil
}

func (m *mockQRRepo) GetByShortID(_ context.Context, shortID string) (*domain.MarketingQR, error) {
	qr, ok := m.qrs[shortID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *qr
	return &clone, nil
}

func (m *mockQRRepo) List(_ context.Context) ([]domain.MarketingQR, error) {
	var out []domain.MarketingQR
	for _, qr := range m.qrs {
		out = append(out, *qr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[j].CreatedAt.Before(out[i].CreatedAt)
	})
	return out, nil
}

func (m *mockQRRepo) Update(_ context.Context, shortID, title, destinationURL string) error {
	qr, ok := m.qrs[shortID]
	if !ok {
		return pgx.ErrNoRows
	}
	qr.Title = title
	qr.DestinationURL = destinationURL
	return nil
}

func (m *mockQRRepo) Delete(_ context.Context, shortID string) error {
	if _, ok := m.qrs[shortID]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.qrs, shortID)
	return nil
}

func (m *mockQRRepo) IncrementScanCount(_ context.Context, shortID string) error {
	qr, ok := m.qrs[shortID]
	if !ok {
		return pgx.ErrNoRows
	}
	qr.ScanCount++
	return nil
}

// mockLeadRepo is an in-memory LeadRepository.
type mockLeadRepo struct {
	leads []domain.Lead
}

func (m *mockLeadRepo) Create(_ context.Context, lead *domain.Lead) error {
	lead.Timestamp = time.Now()
	m.leads = append(m.leads, *lead)
	return nil
}

func (m *mockLeadRepo) List(_ context.Context) ([]domain.Lead, error) {
	out := make([]domain.Lead, len(m.leads))
	copy(out, m.leads)
	sort.Slice(out, func(i, j int) bool {
		return out[j].Timestamp.Before(out[i].Timestamp)
	})
	return out, nil
}

// mockUserRepo is an in-memory UserRepository keyed by email.
type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*domain.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := m.users[user.Email]; ok {
		return repository.ErrDuplicateID
	}
	user.CreatedAt = time.Now()
	clone := *user
	m.users[user.Email] = &clone
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, user := range m.users {
		out = append(out, *user)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
