package leaderboard

import (
	"testing"
	"time"

	"top250-backend/lib/scrapers/wzranked"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMapsEveryField(t *testing.T) {
	raw := []wzranked.RawEntry{
		{
			UpdatedAt:        "2023-05-01T12:00:00Z",
			Date:             "2023-05-01",
			RankDense:        1,
			DeltaRankDense:   -2,
			Gamertag:         "Shifty",
			SkillRating:      10543,
			DeltaSkillRating: 125,
			IsPro:            true,
			SessionLive:      false,
			SessionEnd:       "2023-05-01T09:30:00Z",
			SessionHours:     3,
			SessionMinutes:   42,
			SessionWins:      12,
			SessionLosses:    4,
			SessionSr:        230,
			WinStreak:        5,
			LongestWinStreak: 14,
		},
	}

	expected := []PlayerRecord{
		{
			Gamertag:         "Shifty",
			RankDense:        1,
			DeltaRankDense:   -2,
			SkillRating:      10543,
			DeltaSkillRating: 125,
			IsPro:            true,
			SessionLive:      false,
			SessionEnd:       time.Date(2023, 5, 1, 9, 30, 0, 0, time.UTC),
			SessionHours:     3,
			SessionMinutes:   42,
			SessionWins:      12,
			SessionLosses:    4,
			SessionSrDelta:   230,
			WinStreak:        5,
			LongestWinStreak: 14,
			UpdatedAt:        "2023-05-01T12:00:00Z",
			Date:             "2023-05-01",
		},
	}

	diff := cmp.Diff(expected, Normalize(raw))
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestNormalizePreservesLength(t *testing.T) {
	raw := make([]wzranked.RawEntry, 250)
	for i := range raw {
		raw[i].RankDense = wzranked.FlexInt(i + 1)
	}

	records := Normalize(raw)
	require.Len(t, records, len(raw))

	// malformed entries are carried through, not dropped
	records = Normalize([]wzranked.RawEntry{{}})
	require.Len(t, records, 1)
	require.Zero(t, records[0].Gamertag)
}

func TestParseSessionEnd(t *testing.T) {
	require.Equal(
		t,
		time.Date(2023, 5, 1, 9, 30, 0, 0, time.UTC),
		parseSessionEnd("2023-05-01T09:30:00Z"),
	)
	require.True(t, parseSessionEnd("not a timestamp").IsZero())
	require.True(t, parseSessionEnd("").IsZero())
}
