package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RankingWindow string

const (
	RankingWeekly  RankingWindow = "weekly"
	RankingMonthly RankingWindow = "monthly"
	RankingAllTime RankingWindow = "all_time"
)

// RankingWindows lists every supported window.
var RankingWindows = []RankingWindow{RankingWeekly, RankingMonthly, RankingAllTime}

// ParseRankingWindow accepts a window name, defaulting to all_time when empty.
func ParseRankingWindow(s string) (RankingWindow, error) {
	switch w := RankingWindow(s); w {
	case "":
		return RankingAllTime, nil
	case RankingWeekly, RankingMonthly, RankingAllTime:
		return w, nil
	default:
		return "", fmt.Errorf("%w: unknown ranking window %q", ErrInvalidArgument, s)
	}
}

// TaskTally is the per-user task count inside a window.
type TaskTally struct {
	UserID    uuid.UUID `db:"user_id"`
	FullName  string    `db:"full_name"`
	AvatarKey string    `db:"avatar_key"`
	JoinedAt  time.Time `db:"joined_at"`
	Total     int       `db:"total_tasks"`
	Completed int       `db:"completed_tasks"`
}

// RankingEntry is a ranked user.
type RankingEntry struct {
	Rank           int       `json:"rank"`
	UserID         uuid.UUID `json:"user_id"`
	FullName       string    `json:"full_name"`
	TotalTasks     int       `json:"total_tasks"`
	CompletedTasks int       `json:"completed_tasks"`
	CompletionRate float64   `json:"completion_rate"`
	JoinedAt       time.Time `json:"joined_at"`
	AvatarKey      string    `json:"avatar_key,omitempty"`
	AvatarURL      string    `json:"profile_pic_url,omitempty"`
}

// Leaderboard is one page of a ranking plus the caller's own entry when it
// falls outside the page.
type Leaderboard struct {
	Window      RankingWindow  `json:"window"`
	Page        int            `json:"page"`
	Top         []RankingEntry `json:"top_100"`
	CurrentUser *RankingEntry  `json:"current_user,omitempty"`
	TotalRanked int            `json:"total_ranked"`
}

// TallySource reads task counts. A nil from means no lower bound.
type TallySource interface {
	Tally(ctx context.Context, from *time.Time, to time.Time) ([]TaskTally, error)
}

// RankingCache stores computed, ordered rankings per window.
type RankingCache interface {
	Get(ctx context.Context, window RankingWindow) ([]RankingEntry, bool, error)
	Set(ctx context.Context, window RankingWindow, entries []RankingEntry) error
}
