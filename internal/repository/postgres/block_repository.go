package postgres

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type blockRepository struct {
	db *sqlx.DB
}

func NewBlockRepository(db *sqlx.DB) repository.BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Block(ctx context.Context, blockerID, blockedID string) error {
	query := `INSERT INTO blocked_users (blocker_id, blocked_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, blockerID, blockedID)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyBlocked
	}
	return err
}

func (r *blockRepository) Unblock(ctx context.Context, blockerID, blockedID string) error {
	query := `DELETE FROM blocked_users WHERE blocker_id = $1 AND blocked_id = $2`
	_, err := r.db.ExecContext(ctx, query, blockerID, blockedID)
	return err
}

func (r *blockRepository) GetBlockedIDs(ctx context.Context, blockerID string) ([]string, error) {
	var ids []string
	query := `SELECT blocked_id FROM blocked_users WHERE blocker_id = $1`
	if err := r.db.SelectContext(ctx, &ids, query, blockerID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *blockRepository) GetBlocked(ctx context.Context, blockerID string) ([]*domain.BlockedUser, error) {
	var blocked []*domain.BlockedUser
	query := `SELECT * FROM blocked_users WHERE blocker_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &blocked, query, blockerID)
	return blocked, err
}
