package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRankingWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    RankingWindow
		wantErr bool
	}{
		{in: "", want: RankingAllTime},
		{in: "weekly", want: RankingWeekly},
		{in: "monthly", want: RankingMonthly},
		{in: "all_time", want: RankingAllTime},
		{in: "yearly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRankingWindow(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
