package service

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/eventpass/internal/domain"
)

var eventIDPattern = regexp.MustCompile(`^[A-Z0-9]+_[A-Za-z0-9]{4}$`)

func validEventInput() EventInput {
	return EventInput{
		Name:     "Noite de Gala",
		Location: "Espaço Villa",
		Date:     "2026-09-12",
		Time:     "20:00",
		TicketTypes: []domain.TicketType{
			{Type: "Pista", Price: 80},
			{Type: "VIP", Price: 150},
		},
	}
}

func TestEventCreateDerivesReadableID(t *testing.T) {
	repo := newMockEventRepo()
	svc := NewEventService(repo)

	event, err := svc.Create(context.Background(), validEventInput())
	require.NoError(t, err)
	assert.Regexp(t, eventIDPattern, event.ID)
	assert.Contains(t, event.ID, "NOITEDEGALA_")
	assert.Equal(t, []domain.Combo{}, event.Combos)

	got, err := svc.Get(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Noite de Gala", got.Name)
	assert.Len(t, got.TicketTypes, 2)
}

func TestEventCreateStripsNonAlphanumerics(t *testing.T) {
	svc := NewEventService(newMockEventRepo())

	input := validEventInput()
	input.Name = "Festa Junina 2026!"
	event, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Contains(t, event.ID, "FESTAJUNINA2026_")
}

func TestEventCreateValidation(t *testing.T) {
	svc := NewEventService(newMockEventRepo())

	input := validEventInput()
	input.TicketTypes = nil
	_, err := svc.Create(context.Background(), input)
	requireDomainStatus(t, err, http.StatusBadRequest)

	input = validEventInput()
	input.Date = ""
	_, err = svc.Create(context.Background(), input)
	requireDomainStatus(t, err, http.StatusBadRequest)
}

func TestEventCreateRetriesOnceOnCollision(t *testing.T) {
	repo := newMockEventRepo()
	repo.duplicates = 1
	svc := NewEventService(repo)

	event, err := svc.Create(context.Background(), validEventInput())
	require.NoError(t, err)
	require.Len(t, repo.createIDs, 2)
	assert.NotEqual(t, repo.createIDs[0], repo.createIDs[1])
	assert.Equal(t, repo.createIDs[1], event.ID)
}

func TestEventCreateGivesUpAfterSecondCollision(t *testing.T) {
	repo := newMockEventRepo()
	repo.duplicates = 2
	svc := NewEventService(repo)

	_, err := svc.Create(context.Background(), validEventInput())
	require.Error(t, err)
	assert.Len(t, repo.createIDs, 2)
}

func TestEventUpdateKeepsID(t *testing.T) {
	repo := newMockEventRepo()
	svc := NewEventService(repo)

	event, err := svc.Create(context.Background(), validEventInput())
	require.NoError(t, err)

	input := validEventInput()
	input.Name = "Noite de Gala (2ª edição)"
	require.NoError(t, svc.Update(context.Background(), event.ID, input))

	got, err := svc.Get(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, "Noite de Gala (2ª edição)", got.Name)
}

func TestEventUpdateUnknown(t *testing.T) {
	svc := NewEventService(newMockEventRepo())

	err := svc.Update(context.Background(), "GALA_none", validEventInput())
	requireDomainStatus(t, err, http.StatusNotFound)
}
