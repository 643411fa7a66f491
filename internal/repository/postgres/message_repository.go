package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (id, match_id, sender_id, content, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		message.ID, message.MatchID, message.SenderID, message.Content, message.Status,
	).Scan(&message.CreatedAt)
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	var message domain.Message
	query := `SELECT * FROM messages WHERE id = $1`
	err := r.db.GetContext(ctx, &message, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) GetByMatch(ctx context.Context, matchID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `SELECT * FROM messages WHERE match_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &messages, query, matchID)
	return messages, err
}

func (r *messageRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE messages SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, profile_id, type, body, is_read)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		notification.ID, notification.ProfileID, notification.Type,
		notification.Body, notification.IsRead,
	).Scan(&notification.CreatedAt)
}

func (r *notificationRepository) GetByProfile(ctx context.Context, profileID string) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	query := `SELECT * FROM notifications WHERE profile_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &notifications, query, profileID)
	return notifications, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, profileID string) error {
	query := `UPDATE notifications SET is_read = true WHERE id = $1 AND profile_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, profileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
