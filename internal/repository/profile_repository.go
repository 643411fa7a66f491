package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	SetComplete(ctx context.Context, id string, complete bool) error
	FindCandidates(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Profile, error)
}
