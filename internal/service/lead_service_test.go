package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadRegister(t *testing.T) {
	repo := &mockLeadRepo{}
	svc := NewLeadService(repo)

	phone := "11999990000"
	lead, err := svc.Register(context.Background(), LeadInput{
		Name:       "Carlos",
		Email:      "carlos@example.com",
		Phone:      &phone,
		SourceQRID: "abc1234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "abc1234", lead.SourceQRID)

	leads, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "carlos@example.com", leads[0].Email)
}

func TestLeadRegisterValidation(t *testing.T) {
	svc := NewLeadService(&mockLeadRepo{})

	_, err := svc.Register(context.Background(), LeadInput{Email: "carlos@example.com", SourceQRID: "abc1234"})
	requireDomainStatus(t, err, http.StatusBadRequest)

	_, err = svc.Register(context.Background(), LeadInput{Name: "Carlos", Email: "carlos@example.com"})
	requireDomainStatus(t, err, http.StatusBadRequest)
}
