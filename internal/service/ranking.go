package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/habiro-server/internal/logger"
	"github.com/dtroode/habiro-server/internal/metrics"
	"github.com/dtroode/habiro-server/internal/model"
)

const DefaultRankingPageSize = 100

// Ranking orders users by task completion rate inside a time window.
type Ranking struct {
	source   model.TallySource
	cache    model.RankingCache
	avatars  model.AvatarStorage
	pageSize int
	loc      *time.Location
	now      func() time.Time
	logger   *logger.Logger
}

// NewRanking creates a ranking engine. cache and avatars may be nil.
func NewRanking(
	source model.TallySource,
	cache model.RankingCache,
	avatars model.AvatarStorage,
	pageSize int,
	loc *time.Location,
	logger *logger.Logger,
) *Ranking {
	if pageSize <= 0 {
		pageSize = DefaultRankingPageSize
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Ranking{
		source:   source,
		cache:    cache,
		avatars:  avatars,
		pageSize: pageSize,
		loc:      loc,
		now:      time.Now,
		logger:   logger,
	}
}

// WindowBounds returns the first and last day counted by window at now.
// from is nil for all_time.
func WindowBounds(window model.RankingWindow, now time.Time) (*time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch window {
	case model.RankingWeekly:
		from := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		return &from, today, nil
	case model.RankingMonthly:
		from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return &from, today, nil
	case model.RankingAllTime:
		return nil, today, nil
	default:
		return nil, time.Time{}, fmt.Errorf("%w: unknown ranking window %q", model.ErrInvalidArgument, window)
	}
}

// Rank computes the full ordering for window from the tally source.
func (s *Ranking) Rank(ctx context.Context, window model.RankingWindow) ([]model.RankingEntry, error) {
	from, to, err := WindowBounds(window, s.now().In(s.loc))
	if err != nil {
		return nil, err
	}

	tallies, err := s.source.Tally(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to tally tasks: %w", err)
	}

	return Order(tallies), nil
}

// Order sorts tallies and assigns 1-based ranks. Rates are compared by
// cross-multiplication so equal fractions always tie exactly.
func Order(tallies []model.TaskTally) []model.RankingEntry {
	sorted := make([]model.TaskTally, len(tallies))
	copy(sorted, tallies)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if c := compareRate(a, b); c != 0 {
			return c > 0
		}
		if a.Completed != b.Completed {
			return a.Completed > b.Completed
		}
		if !a.JoinedAt.Equal(b.JoinedAt) {
			return a.JoinedAt.Before(b.JoinedAt)
		}
		return a.UserID.String() < b.UserID.String()
	})

	entries := make([]model.RankingEntry, len(sorted))
	for i, t := range sorted {
		entries[i] = model.RankingEntry{
			Rank:           i + 1,
			UserID:         t.UserID,
			FullName:       t.FullName,
			TotalTasks:     t.Total,
			CompletedTasks: t.Completed,
			CompletionRate: completionRate(t),
			JoinedAt:       t.JoinedAt,
			AvatarKey:      t.AvatarKey,
		}
	}
	return entries
}

// compareRate returns the sign of rate(a) - rate(b).
func compareRate(a, b model.TaskTally) int {
	// A user without tasks has rate 0, i.e. 0/1.
	an, ad := int64(a.Completed), int64(a.Total)
	if ad == 0 {
		an, ad = 0, 1
	}
	bn, bd := int64(b.Completed), int64(b.Total)
	if bd == 0 {
		bn, bd = 0, 1
	}

	l, r := an*bd, bn*ad
	switch {
	case l > r:
		return 1
	case l < r:
		return -1
	default:
		return 0
	}
}

func completionRate(t model.TaskTally) float64 {
	if t.Total == 0 {
		return 0
	}
	return math.Round(10000*float64(t.Completed)/float64(t.Total)) / 100
}

// Ranked returns the ordering for window, served from the cache when present.
func (s *Ranking) Ranked(ctx context.Context, window model.RankingWindow) ([]model.RankingEntry, error) {
	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx, window)
		if err != nil {
			s.logger.Warn("Ranking service: cache read failed", "window", window, "error", err)
		}
		if ok && err == nil {
			metrics.RankingComputedTotal.WithLabelValues(string(window), "cache").Inc()
			return entries, nil
		}
	}

	entries, err := s.Rank(ctx, window)
	if err != nil {
		return nil, err
	}
	metrics.RankingComputedTotal.WithLabelValues(string(window), "store").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, window, entries); err != nil {
			s.logger.Warn("Ranking service: cache write failed", "window", window, "error", err)
		}
	}

	return entries, nil
}

// Refresh recomputes every window and stores the results in the cache.
func (s *Ranking) Refresh(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	for _, window := range model.RankingWindows {
		entries, err := s.Rank(ctx, window)
		if err != nil {
			return fmt.Errorf("failed to rank %s: %w", window, err)
		}
		if err := s.cache.Set(ctx, window, entries); err != nil {
			return fmt.Errorf("failed to cache %s ranking: %w", window, err)
		}
		metrics.RankingComputedTotal.WithLabelValues(string(window), "refresh").Inc()
	}

	s.logger.Debug("Ranking service: refreshed cached rankings")
	return nil
}

// Leaderboard returns one page of the ranking for window. The viewer's own
// entry is attached whenever they are ranked but not on the page.
func (s *Ranking) Leaderboard(ctx context.Context, viewerID uuid.UUID, window model.RankingWindow, page int) (model.Leaderboard, error) {
	window, err := model.ParseRankingWindow(string(window))
	if err != nil {
		return model.Leaderboard{}, err
	}
	if page < 1 {
		page = 1
	}

	entries, err := s.Ranked(ctx, window)
	if err != nil {
		return model.Leaderboard{}, err
	}

	start := min((page-1)*s.pageSize, len(entries))
	end := min(start+s.pageSize, len(entries))

	top := make([]model.RankingEntry, end-start)
	copy(top, entries[start:end])
	for i := range top {
		top[i].AvatarURL = avatarURL(ctx, s.avatars, top[i].AvatarKey, s.logger)
	}

	board := model.Leaderboard{
		Window:      window,
		Page:        page,
		Top:         top,
		TotalRanked: len(entries),
	}

	for i, e := range entries {
		if e.UserID != viewerID {
			continue
		}
		if i < start || i >= end {
			self := e
			self.AvatarURL = avatarURL(ctx, s.avatars, self.AvatarKey, s.logger)
			board.CurrentUser = &self
		}
		break
	}

	return board, nil
}
