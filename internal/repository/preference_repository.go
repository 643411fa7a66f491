package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type PreferenceRepository interface {
	// Get returns the stored row or domain.ErrProfileNotFound when the
	// profile has never saved preferences.
	Get(ctx context.Context, profileID string) (*domain.Preferences, error)
	// Upsert inserts or patches the row for the profile.
	Upsert(ctx context.Context, prefs *domain.Preferences) error
}
