package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dtroode/habiro-server/internal/model"
)

var _ model.TallySource = (*RankingRepository)(nil)

// RankingRepository aggregates task completion per user. Users without tasks
// in the window are returned with zero counts.
type RankingRepository struct {
	db *sqlx.DB
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{
		db: db,
	}
}

const tallyQuery = `
	SELECT u.id AS user_id,
	       u.display_name AS full_name,
	       u.avatar_key AS avatar_key,
	       u.created_at AS joined_at,
	       COUNT(t.id) AS total_tasks,
	       COUNT(t.id) FILTER (WHERE t.is_completed) AS completed_tasks
	FROM users u
	LEFT JOIN habits h ON h.user_id = u.id
	LEFT JOIN tasks t ON t.habit_id = h.id AND t.date <= $1 %s
	GROUP BY u.id, u.display_name, u.avatar_key, u.created_at`

func (r *RankingRepository) Tally(ctx context.Context, from *time.Time, to time.Time) ([]model.TaskTally, error) {
	args := []any{dateOnly(to)}
	lower := ""
	if from != nil {
		lower = "AND t.date >= $2"
		args = append(args, dateOnly(*from))
	}

	var tallies []model.TaskTally
	if err := r.db.SelectContext(ctx, &tallies, fmt.Sprintf(tallyQuery, lower), args...); err != nil {
		return nil, fmt.Errorf("failed to tally tasks: %w", err)
	}

	return tallies, nil
}

func dateOnly(t time.Time) string {
	return t.Format(time.DateOnly)
}
