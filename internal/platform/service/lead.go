package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/pkg/idx"
	"github.com/peakprep/platform/pkg/slogx"
)

var ErrInvalidLead = errors.New("invalid lead details")

type LeadInput struct {
	Name       string `validate:"required,max=200"`
	Email      string `validate:"required,email"`
	Message    string `validate:"required,max=4000"`
	SourcePage string `validate:"omitempty,max=500"`
}

// LeadService records marketing enquiries from the public site. Submission
// is unauthenticated; the abuse control is the rate limit at the edge, not
// anything in here.
type LeadService struct {
	Store store.Store

	validate *validator.Validate
}

func NewLeadService(st store.Store) *LeadService {
	return &LeadService{Store: st, validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (s *LeadService) Submit(ctx context.Context, in LeadInput) (string, error) {
	log := slogx.FromContext(ctx)

	if err := s.validate.Struct(in); err != nil {
		return "", ErrInvalidLead
	}

	lead := domain.Lead{
		ID:         idx.New().String(),
		Name:       in.Name,
		Email:      in.Email,
		Message:    in.Message,
		SourcePage: in.SourcePage,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Store.Leads().CreateLead(ctx, lead); err != nil {
		log.Error("failed to store lead", slog.Any("error", err))
		return "", err
	}

	log.Info("lead captured", slog.String("lead_id", lead.ID), slog.String("source", in.SourcePage))
	return lead.ID, nil
}
