package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const matchColumns = `id, user1_id, user2_id, status, icebreakers, created_at, updated_at`

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func scanMatch(row rowScanner) (*domain.Match, error) {
	var m domain.Match
	err := row.Scan(
		&m.ID, &m.User1ID, &m.User2ID, &m.Status,
		pq.Array(&m.Icebreakers), &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	query := `
		INSERT INTO matches (id, user1_id, user2_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, match.ID, match.User1ID, match.User2ID, match.Status).
		Scan(&match.CreatedAt, &match.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrMatchAlreadyExists
	}
	return err
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	query := fmt.Sprintf(`SELECT %s FROM matches WHERE id = $1`, matchColumns)
	match, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (r *matchRepository) GetByPair(ctx context.Context, profileA, profileB string) (*domain.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM matches
		WHERE (user1_id = $1 AND user2_id = $2)
		   OR (user1_id = $2 AND user2_id = $1)
	`, matchColumns)
	match, err := scanMatch(r.db.QueryRowContext(ctx, query, profileA, profileB))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE matches SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) UpdateIcebreakers(ctx context.Context, id string, icebreakers []string) error {
	query := `UPDATE matches SET icebreakers = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, pq.Array(icebreakers), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) GetPartnerIDs(ctx context.Context, profileID string) ([]string, error) {
	query := `
		SELECT CASE WHEN user1_id = $1 THEN user2_id ELSE user1_id END
		FROM matches
		WHERE user1_id = $1 OR user2_id = $1
	`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, profileID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *matchRepository) GetMatched(ctx context.Context, profileID string) ([]*domain.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM matches
		WHERE (user1_id = $1 OR user2_id = $1) AND status = $2
		ORDER BY updated_at DESC
	`, matchColumns)
	rows, err := r.db.QueryContext(ctx, query, profileID, domain.MatchStatusMatched)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}
