package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/habiro-server/internal/mocks"
	"github.com/dtroode/habiro-server/internal/model"
	"github.com/dtroode/habiro-server/internal/testutil"
)

func TestWindowBounds(t *testing.T) {
	// Thursday.
	now := time.Date(2024, 5, 16, 18, 30, 0, 0, time.UTC)
	today := time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		window   model.RankingWindow
		now      time.Time
		wantFrom *time.Time
		wantTo   time.Time
		wantErr  error
	}{
		{
			name:     "weekly starts monday",
			window:   model.RankingWeekly,
			now:      now,
			wantFrom: ptr(time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)),
			wantTo:   today,
		},
		{
			name:     "weekly on sunday",
			window:   model.RankingWeekly,
			now:      time.Date(2024, 5, 19, 1, 0, 0, 0, time.UTC),
			wantFrom: ptr(time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)),
			wantTo:   time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monthly",
			window:   model.RankingMonthly,
			now:      now,
			wantFrom: ptr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
			wantTo:   today,
		},
		{
			name:   "all time",
			window: model.RankingAllTime,
			now:    now,
			wantTo: today,
		},
		{
			name:    "unknown",
			window:  "daily",
			now:     now,
			wantErr: model.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := WindowBounds(tt.window, tt.now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestOrder_TieBreaks(t *testing.T) {
	older := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	a := model.TaskTally{UserID: uuid.New(), FullName: "A", JoinedAt: newer, Total: 10, Completed: 10}
	b := model.TaskTally{UserID: uuid.New(), FullName: "B", JoinedAt: older, Total: 10, Completed: 9}
	c := model.TaskTally{UserID: uuid.New(), FullName: "C", JoinedAt: older, Total: 10, Completed: 10}

	entries := Order([]model.TaskTally{a, b, c})

	require.Len(t, entries, 3)
	assert.Equal(t, []string{"C", "A", "B"}, names(entries))
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
	assert.Equal(t, 100.0, entries[0].CompletionRate)
	assert.Equal(t, 90.0, entries[2].CompletionRate)
}

func TestOrder_ExactRates(t *testing.T) {
	joined := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	// 1/3 and 2/6 tie exactly, so completed count decides.
	third := model.TaskTally{UserID: uuid.New(), FullName: "third", JoinedAt: joined, Total: 3, Completed: 1}
	twoSixths := model.TaskTally{UserID: uuid.New(), FullName: "two-sixths", JoinedAt: joined, Total: 6, Completed: 2}
	idle := model.TaskTally{UserID: uuid.New(), FullName: "idle", JoinedAt: joined.Add(-time.Hour)}
	zero := model.TaskTally{UserID: uuid.New(), FullName: "zero", JoinedAt: joined, Total: 4}

	entries := Order([]model.TaskTally{idle, third, zero, twoSixths})

	assert.Equal(t, []string{"two-sixths", "third", "idle", "zero"}, names(entries))
	assert.Equal(t, 33.33, entries[0].CompletionRate)
	assert.Equal(t, 0.0, entries[2].CompletionRate)
}

func TestOrder_Deterministic(t *testing.T) {
	joined := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	x := model.TaskTally{UserID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), JoinedAt: joined, Total: 2, Completed: 1}
	y := model.TaskTally{UserID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), JoinedAt: joined, Total: 2, Completed: 1}

	first := Order([]model.TaskTally{y, x})
	second := Order([]model.TaskTally{x, y})

	assert.Equal(t, first, second)
	assert.Equal(t, x.UserID, first[0].UserID)
}

func TestRanking_LeaderboardCurrentUser(t *testing.T) {
	joined := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	tallies := make([]model.TaskTally, 0, 200)
	for i := 0; i < 200; i++ {
		tallies = append(tallies, model.TaskTally{
			UserID:    uuid.New(),
			FullName:  fmt.Sprintf("user-%03d", i),
			JoinedAt:  joined,
			Total:     200,
			Completed: 200 - i,
		})
	}
	viewer := tallies[149].UserID

	source := servermocks.NewTallySource(t)
	source.On("Tally", mock.Anything, (*time.Time)(nil), mock.Anything).Return(tallies, nil)

	svc := NewRanking(source, nil, nil, 0, time.UTC, testutil.MakeNoopLogger())

	board, err := svc.Leaderboard(context.Background(), viewer, model.RankingAllTime, 1)
	require.NoError(t, err)

	assert.Len(t, board.Top, 100)
	assert.Equal(t, 200, board.TotalRanked)
	assert.Equal(t, 100, board.Top[99].Rank)
	require.NotNil(t, board.CurrentUser)
	assert.Equal(t, 150, board.CurrentUser.Rank)
	assert.Equal(t, viewer, board.CurrentUser.UserID)

	board, err = svc.Leaderboard(context.Background(), viewer, model.RankingAllTime, 2)
	require.NoError(t, err)
	assert.Len(t, board.Top, 100)
	assert.Equal(t, 101, board.Top[0].Rank)
	assert.Nil(t, board.CurrentUser, "viewer is on the page")

	board, err = svc.Leaderboard(context.Background(), viewer, model.RankingAllTime, 3)
	require.NoError(t, err)
	assert.Empty(t, board.Top)
	require.NotNil(t, board.CurrentUser)
}

func TestRanking_LeaderboardWindow(t *testing.T) {
	source := servermocks.NewTallySource(t)
	source.On("Tally", mock.Anything, (*time.Time)(nil), mock.Anything).Return([]model.TaskTally{}, nil).Once()

	svc := NewRanking(source, nil, nil, 0, time.UTC, testutil.MakeNoopLogger())

	board, err := svc.Leaderboard(context.Background(), uuid.New(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, model.RankingAllTime, board.Window)
	assert.Equal(t, 1, board.Page)
	assert.Empty(t, board.Top)
	assert.Nil(t, board.CurrentUser)

	_, err = svc.Leaderboard(context.Background(), uuid.New(), "yearly", 1)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestRanking_Ranked(t *testing.T) {
	cached := []model.RankingEntry{{Rank: 1, UserID: uuid.New(), FullName: "cached"}}
	tallies := []model.TaskTally{{UserID: uuid.New(), FullName: "fresh", Total: 1, Completed: 1}}

	t.Run("cache hit", func(t *testing.T) {
		source := servermocks.NewTallySource(t)
		cache := servermocks.NewRankingCache(t)
		cache.On("Get", mock.Anything, model.RankingWeekly).Return(cached, true, nil).Once()

		svc := NewRanking(source, cache, nil, 0, time.UTC, testutil.MakeNoopLogger())
		got, err := svc.Ranked(context.Background(), model.RankingWeekly)
		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		source := servermocks.NewTallySource(t)
		source.On("Tally", mock.Anything, mock.AnythingOfType("*time.Time"), mock.Anything).Return(tallies, nil).Once()
		cache := servermocks.NewRankingCache(t)
		cache.On("Get", mock.Anything, model.RankingWeekly).Return(nil, false, nil).Once()
		cache.On("Set", mock.Anything, model.RankingWeekly, mock.Anything).Return(nil).Once()

		svc := NewRanking(source, cache, nil, 0, time.UTC, testutil.MakeNoopLogger())
		got, err := svc.Ranked(context.Background(), model.RankingWeekly)
		require.NoError(t, err)
		assert.Equal(t, []string{"fresh"}, names(got))
	})

	t.Run("cache errors fall back to store", func(t *testing.T) {
		source := servermocks.NewTallySource(t)
		source.On("Tally", mock.Anything, mock.Anything, mock.Anything).Return(tallies, nil).Once()
		cache := servermocks.NewRankingCache(t)
		cache.On("Get", mock.Anything, model.RankingMonthly).Return(nil, false, errors.New("redis down")).Once()
		cache.On("Set", mock.Anything, model.RankingMonthly, mock.Anything).Return(errors.New("redis down")).Once()

		svc := NewRanking(source, cache, nil, 0, time.UTC, testutil.MakeNoopLogger())
		got, err := svc.Ranked(context.Background(), model.RankingMonthly)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("store error", func(t *testing.T) {
		source := servermocks.NewTallySource(t)
		source.On("Tally", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		svc := NewRanking(source, nil, nil, 0, time.UTC, testutil.MakeNoopLogger())
		_, err := svc.Ranked(context.Background(), model.RankingAllTime)
		assert.Error(t, err)
	})
}

func TestRanking_Refresh(t *testing.T) {
	source := servermocks.NewTallySource(t)
	source.On("Tally", mock.Anything, mock.Anything, mock.Anything).Return([]model.TaskTally{}, nil).Times(3)
	cache := servermocks.NewRankingCache(t)
	for _, w := range model.RankingWindows {
		cache.On("Set", mock.Anything, w, mock.Anything).Return(nil).Once()
	}

	svc := NewRanking(source, cache, nil, 0, time.UTC, testutil.MakeNoopLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	noCache := NewRanking(servermocks.NewTallySource(t), nil, nil, 0, time.UTC, testutil.MakeNoopLogger())
	assert.NoError(t, noCache.Refresh(context.Background()))
}

func TestRanking_AvatarURLs(t *testing.T) {
	viewer := uuid.New()
	source := servermocks.NewTallySource(t)
	source.On("Tally", mock.Anything, mock.Anything, mock.Anything).Return([]model.TaskTally{
		{UserID: viewer, FullName: "me", AvatarKey: "avatars/me.png", Total: 1, Completed: 1},
		{UserID: uuid.New(), FullName: "other"},
	}, nil).Once()
	avatars := servermocks.NewAvatarStorage(t)
	avatars.On("AvatarURL", mock.Anything, "avatars/me.png").Return("https://cdn/me.png", nil).Once()

	svc := NewRanking(source, nil, avatars, 0, time.UTC, testutil.MakeNoopLogger())
	board, err := svc.Leaderboard(context.Background(), viewer, model.RankingAllTime, 1)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn/me.png", board.Top[0].AvatarURL)
	assert.Empty(t, board.Top[1].AvatarURL)
}

func names(entries []model.RankingEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.FullName
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
