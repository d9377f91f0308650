package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/habiro-server/internal/model"
)

var _ model.FriendStore = (*FriendRepository)(nil)

type FriendRepository struct {
	db *Connection
}

func NewFriendRepository(db *Connection) *FriendRepository {
	return &FriendRepository{
		db: db,
	}
}

const requestColumns = `id, requester_id, receiver_id, status, created_at, updated_at`

func (r *FriendRepository) CreateRequest(ctx context.Context, requesterID, receiverID uuid.UUID) (model.FriendRequest, error) {
	query := `
		INSERT INTO friend_requests (requester_id, receiver_id)
		VALUES ($1, $2)
		RETURNING ` + requestColumns

	req, err := scanRequest(r.db.QueryRow(ctx, query, requesterID, receiverID))
	if err != nil {
		if isUniqueViolation(err) {
			return model.FriendRequest{}, model.ErrAlreadyExists
		}
		return model.FriendRequest{}, fmt.Errorf("failed to insert friend request: %w", err)
	}

	return req, nil
}

func (r *FriendRepository) GetRequest(ctx context.Context, id int64) (model.FriendRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM friend_requests WHERE id = $1`

	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FriendRequest{}, model.ErrNotFound
		}
		return model.FriendRequest{}, fmt.Errorf("failed to get friend request: %w", err)
	}

	return req, nil
}

func (r *FriendRepository) GetRequestBetween(ctx context.Context, requesterID, receiverID uuid.UUID) (model.FriendRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM friend_requests WHERE requester_id = $1 AND receiver_id = $2`

	req, err := scanRequest(r.db.QueryRow(ctx, query, requesterID, receiverID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FriendRequest{}, model.ErrNotFound
		}
		return model.FriendRequest{}, fmt.Errorf("failed to get friend request: %w", err)
	}

	return req, nil
}

func (r *FriendRepository) ReopenRequest(ctx context.Context, id int64) (model.FriendRequest, error) {
	return r.transition(ctx, r.db, id, model.FriendRequestRejected, model.FriendRequestPending)
}

func (r *FriendRepository) RejectRequest(ctx context.Context, id int64) (model.FriendRequest, error) {
	return r.transition(ctx, r.db, id, model.FriendRequestPending, model.FriendRequestRejected)
}

func (r *FriendRepository) AcceptRequest(ctx context.Context, id int64) (req model.FriendRequest, err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.FriendRequest{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	req, err = r.transition(ctx, tx, id, model.FriendRequestPending, model.FriendRequestAccepted)
	if err != nil {
		return model.FriendRequest{}, err
	}

	const edges = `
		INSERT INTO friendships (user_id, friend_id)
		VALUES ($1, $2), ($2, $1)
		ON CONFLICT DO NOTHING`
	if _, err = tx.Exec(ctx, edges, req.RequesterID, req.ReceiverID); err != nil {
		return model.FriendRequest{}, fmt.Errorf("failed to insert friendship: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return model.FriendRequest{}, fmt.Errorf("failed to commit friendship: %w", err)
	}

	return req, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// transition moves a request from one status to another. It reports
// ErrRequestNotPending when the request exists in a different status.
func (r *FriendRepository) transition(ctx context.Context, q querier, id int64, from, to model.FriendRequestStatus) (model.FriendRequest, error) {
	query := `
		UPDATE friend_requests SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + requestColumns

	req, err := scanRequest(q.QueryRow(ctx, query, id, string(from), string(to)))
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.FriendRequest{}, fmt.Errorf("failed to update friend request: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM friend_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
		return model.FriendRequest{}, fmt.Errorf("failed to check friend request: %w", err)
	}
	if !exists {
		return model.FriendRequest{}, model.ErrNotFound
	}
	return model.FriendRequest{}, model.ErrRequestNotPending
}

func (r *FriendRepository) ListIncoming(ctx context.Context, receiverID uuid.UUID) ([]model.FriendRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM friend_requests
		WHERE receiver_id = $1 AND status = 'pending'
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to query friend requests: %w", err)
	}
	defer rows.Close()

	var requests []model.FriendRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friend request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *FriendRepository) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM friendships WHERE user_id = $1 AND friend_id = $2)`

	var ok bool
	if err := r.db.QueryRow(ctx, query, a, b).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}

	return ok, nil
}

func (r *FriendRepository) ListFriends(ctx context.Context, userID uuid.UUID) ([]model.FriendSummary, error) {
	query := `
		SELECT u.id, u.handle, u.display_name, u.email, COALESCE(u.phone, ''), u.avatar_key, u.created_at,
		       m.id, m.sender_id, m.receiver_id, m.body, m.key_material, m.is_read, m.created_at,
		       (SELECT COUNT(*) FROM messages um
		         WHERE um.sender_id = u.id AND um.receiver_id = $1
		           AND NOT um.is_read AND NOT um.deleted_by_receiver) AS unread_count
		FROM friendships f
		JOIN users u ON u.id = f.friend_id
		LEFT JOIN LATERAL (
			SELECT id, sender_id, receiver_id, body, key_material, is_read, created_at
			FROM messages
			WHERE (sender_id = $1 AND receiver_id = u.id AND NOT deleted_by_sender)
			   OR (sender_id = u.id AND receiver_id = $1 AND NOT deleted_by_receiver)
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) m ON TRUE
		WHERE f.user_id = $1
		ORDER BY m.created_at DESC NULLS LAST, u.display_name ASC, u.id ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query friends: %w", err)
	}
	defer rows.Close()

	var friends []model.FriendSummary
	for rows.Next() {
		var (
			s          model.FriendSummary
			msgID      *int64
			senderID   *uuid.UUID
			receiverID *uuid.UUID
			body       *string
			key        *string
			isRead     *bool
			createdAt  *time.Time
		)
		err := rows.Scan(
			&s.Friend.ID, &s.Friend.Handle, &s.Friend.DisplayName, &s.Friend.Email, &s.Friend.Phone,
			&s.Friend.AvatarKey, &s.Friend.CreatedAt,
			&msgID, &senderID, &receiverID, &body, &key, &isRead, &createdAt,
			&s.UnreadCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		if msgID != nil {
			s.LastMessage = &model.Message{
				ID:         *msgID,
				SenderID:   *senderID,
				ReceiverID: *receiverID,
				Body:       *body,
				Key:        *key,
				IsRead:     *isRead,
				CreatedAt:  *createdAt,
			}
		}
		friends = append(friends, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return friends, nil
}

func scanRequest(row pgx.Row) (model.FriendRequest, error) {
	var req model.FriendRequest
	var status string
	err := row.Scan(&req.ID, &req.RequesterID, &req.ReceiverID, &status, &req.CreatedAt, &req.UpdatedAt)
	req.Status = model.FriendRequestStatus(status)
	return req, err
}
