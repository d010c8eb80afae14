package service

import (
	"context"
	"fmt"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/brunovale/prancheta/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, userID)
}

func (s *profileService) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.UserID == "" {
		return fmt.Errorf("profile user is required: %w", domain.ErrValidation)
	}
	if p.Plan == "" {
		p.Plan = domain.PlanFree
	}
	if !domain.ValidPlans[string(p.Plan)] {
		return fmt.Errorf("invalid plan %q: %w", p.Plan, domain.ErrValidation)
	}
	return s.profiles.Upsert(ctx, p)
}
