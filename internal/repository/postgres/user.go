package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/habiro-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, handle, display_name, email, COALESCE(phone, ''), avatar_key, created_at`

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByContact(ctx context.Context, query string) (model.User, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return model.User{}, model.ErrNotFound
	}

	sql := `
		SELECT ` + userColumns + `
		FROM users
		WHERE handle = $1 OR lower(email) = lower($1) OR phone = $1
		ORDER BY (handle = $1) DESC
		LIMIT 1`

	user, err := scanUser(r.db.QueryRow(ctx, sql, q))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to find user by contact: %w", err)
	}

	return user, nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Handle, &user.DisplayName, &user.Email, &user.Phone,
		&user.AvatarKey, &user.CreatedAt,
	)
	return user, err
}
