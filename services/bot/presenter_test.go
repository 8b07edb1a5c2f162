package bot

import (
	"strings"
	"testing"
	"time"

	"top250-backend/services/leaderboard"

	"github.com/stretchr/testify/require"
)

func TestFormatOfflineDuration(t *testing.T) {
	testCases := []struct {
		elapsed  time.Duration
		expected string
	}{
		{elapsed: time.Hour * 25, expected: "more than 1 day"},
		{elapsed: time.Hour*24 + time.Minute*30, expected: "more than 1 day"},
		{elapsed: time.Hour * 24, expected: "1 day"},
		{elapsed: time.Hour*3 + time.Minute*2, expected: "3 hours"},
		{elapsed: time.Minute * 30, expected: "30 minutes"},
		{elapsed: time.Minute, expected: "1 minutes"},
		{elapsed: time.Second * 30, expected: "0 minutes"},
		// sessionEnd ahead of our clock
		{elapsed: -time.Minute * 30, expected: "0 minutes"},
		{elapsed: -time.Hour * 26, expected: "0 minutes"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, formatOfflineDuration(test.elapsed), "elapsed=%s", test.elapsed)
	}
}

func TestSessionStatus(t *testing.T) {
	now := time.Date(2023, 5, 2, 12, 0, 0, 0, time.UTC)

	live := leaderboard.PlayerRecord{SessionLive: true}
	require.Equal(t, "Playing", sessionStatus(live, now))

	offline := leaderboard.PlayerRecord{SessionEnd: now.Add(-time.Minute * 30)}
	require.Equal(t, "Offline for 30 minutes", sessionStatus(offline, now))

	noSessionEnd := leaderboard.PlayerRecord{}
	require.Equal(t, "Offline", sessionStatus(noSessionEnd, now))
}

func TestRenderListingSinglePage(t *testing.T) {
	snapshot := leaderboard.Snapshot{Records: []leaderboard.PlayerRecord{
		{Gamertag: "A", RankDense: 1, SkillRating: 100},
		{Gamertag: "B", RankDense: 2, SkillRating: 90},
		{Gamertag: "C", RankDense: 3, SkillRating: 80},
	}}

	out := renderListing(snapshot, 0, 1, false)

	lines := strings.Split(out.Body, "\n")
	require.Equal(t, []string{
		"Rank: 1 | Gamertag: A | Skill Rating: 100",
		"Rank: 2 | Gamertag: B | Skill Rating: 90",
		"Rank: 3 | Gamertag: C | Skill Rating: 80",
	}, lines)

	require.Len(t, out.Buttons, 2)
	// single page: nowhere to go in either direction
	require.True(t, out.Buttons[0].Disabled)
	require.True(t, out.Buttons[1].Disabled)
	require.Equal(t, "previous_0", out.Buttons[0].CustomID)
	require.Equal(t, "next_0", out.Buttons[1].CustomID)
}

func TestRenderListingMiddlePage(t *testing.T) {
	out := renderListing(snapshotOf(30), 1, 3, false)

	lines := strings.Split(out.Body, "\n")
	require.Len(t, lines, PageSize)
	require.Contains(t, lines[0], "Rank: 11 |")
	require.Contains(t, lines[9], "Rank: 20 |")

	require.False(t, out.Buttons[0].Disabled)
	require.False(t, out.Buttons[1].Disabled)
	require.Equal(t, "previous_1", out.Buttons[0].CustomID)
	require.Equal(t, "next_1", out.Buttons[1].CustomID)
}

func TestRenderListingDisabled(t *testing.T) {
	out := renderListing(snapshotOf(30), 1, 3, true)
	require.True(t, out.Buttons[0].Disabled)
	require.True(t, out.Buttons[1].Disabled)
}

func TestRenderCard(t *testing.T) {
	now := time.Date(2023, 5, 2, 12, 0, 0, 0, time.UTC)
	record := leaderboard.PlayerRecord{
		Gamertag:         "Shifty",
		RankDense:        1,
		SkillRating:      10543,
		DeltaSkillRating: 125,
		WinStreak:        5,
		SessionLive:      false,
		SessionEnd:       now.Add(-time.Minute * 30),
		SessionHours:     3,
		SessionMinutes:   42,
		SessionWins:      12,
		SessionLosses:    4,
		SessionSrDelta:   -30,
	}

	out := renderCard(record, now)
	require.Equal(t, "Found Shifty in Top 250!", out.Title)
	require.Contains(t, out.Body, "**Rank:** 1")
	require.Contains(t, out.Body, "**Total SR:** 10543")
	require.Contains(t, out.Body, "**Today's SR +/-:** +125")
	require.Contains(t, out.Body, "**Current Win Streak:** 5")
	require.Contains(t, out.Body, "**Status**: Offline for 30 minutes")
	require.Contains(t, out.Body, "**Time Played**: 3h 42m")
	require.Contains(t, out.Body, "**SR**: -30")
	require.Contains(t, out.Body, "**Win/Loss**: 12/4")
	require.Empty(t, out.Buttons)
}
