package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/eventpass/internal/domain"
	"github.com/spec-kit/eventpass/internal/repository"
	apperrors "github.com/spec-kit/eventpass/pkg/util"
)

// LeadInput carries a lead-capture submission.
type LeadInput struct {
	Name       string
	Email      string
	Phone      *string
	City       *string
	SourceQRID string
}

// LeadService coordinates lead capture. No dedup, no rate limiting; every
// valid submission is appended.
type LeadService struct {
	leads repository.LeadRepository
}

// NewLeadService builds the service.
func NewLeadService(leads repository.LeadRepository) *LeadService {
	return &LeadService{leads: leads}
}

// Register appends a lead record.
func (s *LeadService) Register(ctx context.Context, input LeadInput) (*domain.Lead, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.SourceQRID) == "" {
		return nil, apperrors.NewValidationError("name, email and sourceQrId are required", nil)
	}

	lead := &domain.Lead{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		City:       input.City,
		SourceQRID: input.SourceQRID,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// List returns all captured leads, newest first.
func (s *LeadService) List(ctx context.Context) ([]domain.Lead, error) {
	return s.leads.List(ctx)
}
