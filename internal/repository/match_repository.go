package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type MatchRepository interface {
	// Create inserts a new directed row. The unordered pair is unique;
	// a concurrent duplicate surfaces as domain.ErrMatchAlreadyExists.
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	// GetByPair returns the single row for the unordered pair, in
	// whichever direction it was created.
	GetByPair(ctx context.Context, profileA, profileB string) (*domain.Match, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateIcebreakers(ctx context.Context, id string, icebreakers []string) error
	// GetPartnerIDs returns the other-party profile id of every row
	// involving the given profile, regardless of status.
	GetPartnerIDs(ctx context.Context, profileID string) ([]string, error)
	GetMatched(ctx context.Context, profileID string) ([]*domain.Match, error)
}
