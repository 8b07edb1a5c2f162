package leaderboard

import (
	"time"

	"top250-backend/lib/scrapers/wzranked"
)

// PlayerRecord is the canonical shape of one leaderboard entrant.
// Json tags are the public names served by GET /players.
type PlayerRecord struct {
	Gamertag         string    `json:"gamertag"`
	RankDense        int       `json:"rankDense"`
	DeltaRankDense   int       `json:"deltaRankDense"`
	SkillRating      int       `json:"skillRating"`
	DeltaSkillRating int       `json:"deltaSkillRating"`
	IsPro            bool      `json:"isPro"`
	SessionLive      bool      `json:"sessionLive"`
	SessionEnd       time.Time `json:"sessionEnd"`
	SessionHours     int       `json:"sessionHours"`
	SessionMinutes   int       `json:"sessionMinutes"`
	SessionWins      int       `json:"sessionWins"`
	SessionLosses    int       `json:"sessionLosses"`
	SessionSrDelta   int       `json:"sessionSrDelta"`
	WinStreak        int       `json:"winStreak"`
	LongestWinStreak int       `json:"longestWinStreak"`
	UpdatedAt        string    `json:"updatedAt"`
	Date             string    `json:"date"`
}

var sessionEndFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseSessionEnd(raw string) time.Time {
	for _, format := range sessionEndFormats {
		t, err := time.Parse(format, raw)
		if err == nil {
			return t
		}
	}
	// only meaningful when the player is offline; callers treat the
	// zero value as unknown
	return time.Time{}
}

// Normalize maps raw wzranked entries onto PlayerRecord. Pure: no
// entry is dropped, no network, input order preserved.
func Normalize(raw []wzranked.RawEntry) []PlayerRecord {
	records := make([]PlayerRecord, len(raw))
	for i, entry := range raw {
		records[i] = PlayerRecord{
			Gamertag:         entry.Gamertag,
			RankDense:        int(entry.RankDense),
			DeltaRankDense:   int(entry.DeltaRankDense),
			SkillRating:      int(entry.SkillRating),
			DeltaSkillRating: int(entry.DeltaSkillRating),
			IsPro:            entry.IsPro,
			SessionLive:      entry.SessionLive,
			SessionEnd:       parseSessionEnd(entry.SessionEnd),
			SessionHours:     int(entry.SessionHours),
			SessionMinutes:   int(entry.SessionMinutes),
			SessionWins:      int(entry.SessionWins),
			SessionLosses:    int(entry.SessionLosses),
			SessionSrDelta:   int(entry.SessionSr),
			WinStreak:        int(entry.WinStreak),
			LongestWinStreak: int(entry.LongestWinStreak),
			UpdatedAt:        entry.UpdatedAt,
			Date:             entry.Date,
		}
	}
	return records
}
