package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/habiro-server/internal/model"
)

var _ model.MessageStore = (*MessageRepository)(nil)

type MessageRepository struct {
	db *Connection
}

func NewMessageRepository(db *Connection) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

const messageColumns = `id, sender_id, receiver_id, body, key_material, is_read, deleted_by_sender, deleted_by_receiver, created_at`

// visibleBetween matches messages between $1 (viewer) and $2 that the viewer
// has not deleted.
const visibleBetween = `
	((sender_id = $1 AND receiver_id = $2 AND NOT deleted_by_sender)
	 OR (sender_id = $2 AND receiver_id = $1 AND NOT deleted_by_receiver))`

func (r *MessageRepository) Create(ctx context.Context, msg model.Message) (model.Message, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, body, key_material)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + messageColumns

	saved, err := scanMessage(r.db.QueryRow(ctx, query, msg.SenderID, msg.ReceiverID, msg.Body, msg.Key))
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}

	return saved, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, senderID, receiverID uuid.UUID) (int64, error) {
	const query = `UPDATE messages SET is_read = TRUE WHERE sender_id = $1 AND receiver_id = $2 AND NOT is_read`

	cmd, err := r.db.Exec(ctx, query, senderID, receiverID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}

	return cmd.RowsAffected(), nil
}

func (r *MessageRepository) DeleteForParty(ctx context.Context, messageID int64, requesterID uuid.UUID) (purged bool, err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var senderID, receiverID uuid.UUID
	var deletedBySender, deletedByReceiver bool
	err = tx.QueryRow(ctx,
		`SELECT sender_id, receiver_id, deleted_by_sender, deleted_by_receiver FROM messages WHERE id = $1 FOR UPDATE`,
		messageID,
	).Scan(&senderID, &receiverID, &deletedBySender, &deletedByReceiver)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, model.ErrNotFound
		}
		return false, fmt.Errorf("failed to lock message: %w", err)
	}

	var flag string
	var otherDeleted bool
	switch requesterID {
	case senderID:
		flag, otherDeleted = "deleted_by_sender", deletedByReceiver
	case receiverID:
		flag, otherDeleted = "deleted_by_receiver", deletedBySender
	default:
		return false, model.ErrUnauthorized
	}

	if otherDeleted {
		if _, err = tx.Exec(ctx, `DELETE FROM messages WHERE id = $1`, messageID); err != nil {
			return false, fmt.Errorf("failed to delete message: %w", err)
		}
		purged = true
	} else {
		if _, err = tx.Exec(ctx, `UPDATE messages SET `+flag+` = TRUE WHERE id = $1`, messageID); err != nil {
			return false, fmt.Errorf("failed to flag message deleted: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit delete: %w", err)
	}

	return purged, nil
}

func (r *MessageRepository) ListVisible(ctx context.Context, viewerID, otherID uuid.UUID, limit, offset int) ([]model.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE ` + visibleBetween + `
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, viewerID, otherID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *MessageRepository) CountVisible(ctx context.Context, viewerID, otherID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM messages WHERE ` + visibleBetween

	var count int
	if err := r.db.QueryRow(ctx, query, viewerID, otherID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}

func scanMessage(row pgx.Row) (model.Message, error) {
	var msg model.Message
	err := row.Scan(
		&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Body, &msg.Key,
		&msg.IsRead, &msg.DeletedBySender, &msg.DeletedByReceiver, &msg.CreatedAt,
	)
	return msg, err
}
