package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) error
	GetByID(ctx context.Context, id string) (*domain.Photo, error)
	GetByProfile(ctx context.Context, profileID string) ([]*domain.Photo, error)
	// GetDisplayPhoto returns the primary photo, or the first photo by
	// order index when none is flagged, or nil when the profile has no
	// photos.
	GetDisplayPhoto(ctx context.Context, profileID string) (*domain.Photo, error)
	// SetPrimary flags exactly one photo as primary in a single
	// conditional update.
	SetPrimary(ctx context.Context, profileID, photoID string) error
	Delete(ctx context.Context, id string) error
	NextOrderIndex(ctx context.Context, profileID string) (int, error)
}
