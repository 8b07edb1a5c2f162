package bot

import (
	"fmt"
	"strings"
	"time"

	"top250-backend/services/leaderboard"
)

// formatOfflineDuration classifies how long ago a session ended.
// Anything past a full day collapses to a coarse bucket.
func formatOfflineDuration(elapsed time.Duration) string {
	minutes := int(elapsed.Minutes())
	if minutes < 0 {
		// clock skew between us and the upstream can put sessionEnd
		// in the future
		minutes = 0
	}
	hours := minutes / 60

	switch {
	case minutes > 24*60:
		return "more than 1 day"
	case minutes == 24*60:
		return "1 day"
	case hours > 0:
		return fmt.Sprintf("%d hours", hours)
	default:
		return fmt.Sprintf("%d minutes", minutes)
	}
}

func sessionStatus(record leaderboard.PlayerRecord, now time.Time) string {
	if record.SessionLive {
		return "Playing"
	}
	if record.SessionEnd.IsZero() {
		// upstream sometimes omits sessionend for idle accounts
		return "Offline"
	}
	return fmt.Sprintf("Offline for %s", formatOfflineDuration(now.Sub(record.SessionEnd)))
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func listingLine(record leaderboard.PlayerRecord) string {
	return fmt.Sprintf(
		"Rank: %d | Gamertag: %s | Skill Rating: %d",
		record.RankDense, record.Gamertag, record.SkillRating,
	)
}

func paginationButtons(pageIndex, totalPages int, disabled bool) []Button {
	return []Button{
		{
			CustomID: encodeCustomID(actionPrevious, pageIndex),
			Label:    "Previous",
			Disabled: disabled || pageIndex == 0,
		},
		{
			CustomID: encodeCustomID(actionNext, pageIndex),
			Label:    "Next",
			Disabled: disabled || pageIndex == totalPages-1,
		},
	}
}

// renderListing slices one page out of the snapshot and renders it
// with its pagination controls.
func renderListing(snapshot leaderboard.Snapshot, pageIndex, totalPages int, disabled bool) Outgoing {
	start := pageIndex * PageSize
	end := start + PageSize
	if start > len(snapshot.Records) {
		start = len(snapshot.Records)
	}
	if end > len(snapshot.Records) {
		end = len(snapshot.Records)
	}

	lines := make([]string, 0, end-start)
	for _, record := range snapshot.Records[start:end] {
		lines = append(lines, listingLine(record))
	}

	return Outgoing{
		Body:    strings.Join(lines, "\n"),
		Buttons: paginationButtons(pageIndex, totalPages, disabled),
	}
}

// renderCard renders the multi-field single-player lookup card.
func renderCard(record leaderboard.PlayerRecord, now time.Time) Outgoing {
	body := fmt.Sprintf(
		"**Rank:** %d\n"+
			"**Gamertag:** %s\n"+
			"**Total SR:** %d\n"+
			"**Today's SR +/-:** %s\n"+
			"**Current Win Streak:** %d\n"+
			"\n"+
			"**Last Session:**\n"+
			"**Status**: %s\n"+
			"**Time Played**: %dh %dm\n"+
			"**SR**: %s\n"+
			"**Win/Loss**: %d/%d",
		record.RankDense,
		record.Gamertag,
		record.SkillRating,
		signed(record.DeltaSkillRating),
		record.WinStreak,
		sessionStatus(record, now),
		record.SessionHours, record.SessionMinutes,
		signed(record.SessionSrDelta),
		record.SessionWins, record.SessionLosses,
	)

	return Outgoing{
		Title: fmt.Sprintf("Found %s in Top 250!", record.Gamertag),
		Body:  body,
	}
}
