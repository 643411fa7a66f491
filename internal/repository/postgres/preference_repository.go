package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type preferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Get(ctx context.Context, profileID string) (*domain.Preferences, error) {
	var prefs domain.Preferences
	query := `
		SELECT profile_id, min_age, max_age, interested_in, max_distance, show_me, updated_at
		FROM preferences WHERE profile_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&prefs.ProfileID, &prefs.MinAge, &prefs.MaxAge,
		pq.Array(&prefs.InterestedIn), &prefs.MaxDistance, &prefs.ShowMe,
		&prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &prefs, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, prefs *domain.Preferences) error {
	query := `
		INSERT INTO preferences (profile_id, min_age, max_age, interested_in, max_distance, show_me)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (profile_id) DO UPDATE
		SET min_age = EXCLUDED.min_age,
		    max_age = EXCLUDED.max_age,
		    interested_in = EXCLUDED.interested_in,
		    max_distance = EXCLUDED.max_distance,
		    show_me = EXCLUDED.show_me,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		prefs.ProfileID, prefs.MinAge, prefs.MaxAge,
		pq.Array(prefs.InterestedIn), prefs.MaxDistance, prefs.ShowMe,
	).Scan(&prefs.UpdatedAt)
}
