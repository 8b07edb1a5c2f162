package bot

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"top250-backend/services/leaderboard"
)

const PageSize = 10

const DefaultSessionTimeout = time.Minute

type sessionState int

const (
	sessionActive sessionState = iota
	sessionExpired
)

// session is the pagination state for one "/t250 all" invocation.
// It is owned exclusively by the user who issued the command, holds a
// read-only snapshot reference, and dies a fixed interval after
// creation regardless of activity. Expired is terminal.
type session struct {
	mu sync.Mutex

	ownerID   string
	channelID string
	messageID string

	snapshot   leaderboard.Snapshot
	pageIndex  int
	totalPages int

	state     sessionState
	createdAt time.Time
	timer     *time.Timer
}

func ceilDiv(count, pageSize int) int {
	return (count + pageSize - 1) / pageSize
}

func newSession(ownerID, channelID string, snapshot leaderboard.Snapshot, now time.Time) *session {
	return &session{
		ownerID:    ownerID,
		channelID:  channelID,
		snapshot:   snapshot,
		pageIndex:  0,
		totalPages: ceilDiv(len(snapshot.Records), PageSize),
		state:      sessionActive,
		createdAt:  now,
	}
}

// advance applies a validated control action. It reports the page to
// re-render and false when the event must be dropped instead: expired
// session, unknown action, or a move that would cross a page boundary.
func (s *session) advance(action string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != sessionActive {
		return 0, false
	}

	switch action {
	case actionPrevious:
		if s.pageIndex == 0 {
			return 0, false
		}
		s.pageIndex--
	case actionNext:
		if s.pageIndex >= s.totalPages-1 {
			return 0, false
		}
		s.pageIndex++
	default:
		return 0, false
	}
	return s.pageIndex, true
}

// finalize moves the session to Expired. Idempotent: only the first
// call (timer-fired or explicit close) wins and reports the final page
// so the caller can disable the rendered controls exactly once.
func (s *session) finalize() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == sessionExpired {
		return 0, false
	}
	s.state = sessionExpired
	if s.timer != nil {
		s.timer.Stop()
	}
	return s.pageIndex, true
}

func (s *session) page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageIndex
}

const (
	actionPrevious = "previous"
	actionNext     = "next"
	actionClose    = "close"
)

// custom IDs carry the action and the page at time of render,
// e.g. "next_3".
func encodeCustomID(action string, page int) string {
	return action + "_" + strconv.Itoa(page)
}

func parseCustomID(id string) (action string, page int, ok bool) {
	action, rawPage, found := strings.Cut(id, "_")
	if !found {
		return "", 0, false
	}
	switch action {
	case actionPrevious, actionNext, actionClose:
	default:
		return "", 0, false
	}
	page, err := strconv.Atoi(rawPage)
	if err != nil {
		return "", 0, false
	}
	return action, page, true
}
