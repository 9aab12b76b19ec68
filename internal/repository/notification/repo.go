package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/greenfield-grocer/notifier/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// Repository provides methods to interact with the notifications table.
//
// Records in a terminal status (sent or failed) are never updated by
// UpdateStatus; the only way out of "failed" is the explicit Requeue.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new notification record with status "pending" and the
// already-rendered content, and returns its ID.
func (r *Repository) Create(ctx context.Context, notification model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    customer_id, type, method, content, status
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx, query,
		notification.CustomerID, notification.Type, notification.Method,
		notification.Content, model.StatusPending,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// UpdateStatus transitions a pending record to the given status.
//
// When the status is "sent" and sentAt is nil it defaults to now; when the
// status is "failed" sentAt is forced to NULL. Updating a record that does
// not exist or is already terminal returns ErrNotificationNotFound.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, sentAt *time.Time) error {
	if status == model.StatusSent && sentAt == nil {
		now := time.Now()
		sentAt = &now
	}

	if status == model.StatusFailed {
		sentAt = nil
	}

	query := `
		UPDATE notifications
		SET status = $1, sent_at = $2
		WHERE id = $3 AND status = 'pending';
    `

	res, err := r.db.ExecContext(ctx, query, status, sentAt, id)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// Requeue resets a failed record back to pending so the queue processor
// picks it up again. Requeueing a record that is not failed returns
// ErrNotificationNotFound.
func (r *Repository) Requeue(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET status = 'pending', sent_at = NULL
		WHERE id = $1 AND status = 'failed';
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to requeue notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// GetStatusByID retrieves the status of a single notification record.
func (r *Repository) GetStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error) {
	query := `
		SELECT status
		FROM notifications
		WHERE id = $1;
    `

	var status model.Status
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotificationNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

// ListPending retrieves all pending notifications, oldest first.
func (r *Repository) ListPending(ctx context.Context) ([]model.Notification, error) {
	query := `
		SELECT id, customer_id, type, method, content, status, sent_at, created_at
		FROM notifications
		WHERE status = 'pending'
		ORDER BY created_at ASC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID, &n.CustomerID, &n.Type, &n.Method, &n.Content, &n.Status, &n.SentAt, &n.CreatedAt,
		); err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, nil
}

// ListAll retrieves all notifications, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]model.Notification, error) {
	query := `
		SELECT id, customer_id, type, method, content, status, sent_at, created_at
		FROM notifications
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID, &n.CustomerID, &n.Type, &n.Method, &n.Content, &n.Status, &n.SentAt, &n.CreatedAt,
		); err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, nil
}
