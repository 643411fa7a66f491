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

type photoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	query := `
		INSERT INTO photos (id, profile_id, storage_path, is_primary, order_index)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		photo.ID, photo.ProfileID, photo.StoragePath, photo.IsPrimary, photo.OrderIndex,
	).Scan(&photo.CreatedAt)
	if isPrimaryConflict(err) {
		return domain.ErrPrimaryPhotoExists
	}
	return err
}

// isPrimaryConflict reports whether err is a violation of the partial
// unique index guarding one primary photo per profile.
func isPrimaryConflict(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == "idx_photos_primary"
	}
	return false
}

func (r *photoRepository) GetByID(ctx context.Context, id string) (*domain.Photo, error) {
	var photo domain.Photo
	query := `SELECT * FROM photos WHERE id = $1`
	err := r.db.GetContext(ctx, &photo, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) GetByProfile(ctx context.Context, profileID string) ([]*domain.Photo, error) {
	var photos []*domain.Photo
	query := `SELECT * FROM photos WHERE profile_id = $1 ORDER BY order_index`
	err := r.db.SelectContext(ctx, &photos, query, profileID)
	return photos, err
}

func (r *photoRepository) GetDisplayPhoto(ctx context.Context, profileID string) (*domain.Photo, error) {
	var photo domain.Photo
	query := `
		SELECT * FROM photos
		WHERE profile_id = $1
		ORDER BY is_primary DESC, order_index
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &photo, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

// SetPrimary flips is_primary for all of the profile's photos in one
// statement so the at-most-one invariant holds under concurrent calls.
func (r *photoRepository) SetPrimary(ctx context.Context, profileID, photoID string) error {
	query := `UPDATE photos SET is_primary = (id = $2) WHERE profile_id = $1`
	result, err := r.db.ExecContext(ctx, query, profileID, photoID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *photoRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM photos WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *photoRepository) NextOrderIndex(ctx context.Context, profileID string) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(order_index) + 1, 0) FROM photos WHERE profile_id = $1`
	err := r.db.GetContext(ctx, &next, query, profileID)
	return next, err
}
