package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRankingRepo(t *testing.T) (*RankingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRankingRepository(sqlx.NewDb(db, "pgx")), mock
}

var tallyColumns = []string{"user_id", "full_name", "avatar_key", "joined_at", "total_tasks", "completed_tasks"}

func TestRankingRepository_Tally_Bounded(t *testing.T) {
	repo, mock := newMockRankingRepo(t)

	uid := uuid.New()
	joined := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	from := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 6, 15, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("t.date <= $1 AND t.date >= $2")).
		WithArgs("2025-03-06", "2025-03-03").
		WillReturnRows(sqlmock.NewRows(tallyColumns).AddRow(uid.String(), "Ann", "a.png", joined, 4, 3))

	got, err := repo.Tally(context.Background(), &from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uid, got[0].UserID)
	assert.Equal(t, "Ann", got[0].FullName)
	assert.Equal(t, "a.png", got[0].AvatarKey)
	assert.Equal(t, joined, got[0].JoinedAt)
	assert.Equal(t, 4, got[0].Total)
	assert.Equal(t, 3, got[0].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankingRepository_Tally_Unbounded(t *testing.T) {
	repo, mock := newMockRankingRepo(t)

	mock.ExpectQuery(`t\.date <= \$1\s+GROUP BY`).
		WithArgs("2025-03-06").
		WillReturnRows(sqlmock.NewRows(tallyColumns))

	got, err := repo.Tally(context.Background(), nil, time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankingRepository_Tally_Error(t *testing.T) {
	repo, mock := newMockRankingRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("db down"))

	_, err := repo.Tally(context.Background(), nil, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to tally tasks")
}
