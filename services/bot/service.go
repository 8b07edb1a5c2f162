package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"top250-backend/services/leaderboard"
)

// the message's first whitespace-separated token must equal this
// exactly for the command to fire
const commandToken = "/t250"

type Options struct {
	// SessionTimeout overrides the pagination session lifetime,
	// mainly for tests. Defaults to DefaultSessionTimeout.
	SessionTimeout time.Duration
}

// Service routes chat commands and button interactions into the
// leaderboard. One instance serves all channels; every "/t250 all"
// gets its own independent session.
type Service struct {
	gateway Gateway
	board   *leaderboard.Service
	timeout time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewService(gateway Gateway, board *leaderboard.Service, opts Options) *Service {
	timeout := opts.SessionTimeout
	if timeout <= 0 {
		timeout = DefaultSessionTimeout
	}
	return &Service{
		gateway:  gateway,
		board:    board,
		timeout:  timeout,
		now:      time.Now,
		sessions: map[string]*session{},
	}
}

func (s *Service) send(ctx context.Context, channelID string, msg Outgoing) {
	_, err := s.gateway.Send(ctx, channelID, msg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send chat message", "channel", channelID, "err", err)
	}
}

// HandleMessage processes one inbound chat message. Non-command
// messages are ignored.
func (s *Service) HandleMessage(ctx context.Context, msg Message) {
	fields := strings.Fields(msg.Content)
	if len(fields) == 0 || fields[0] != commandToken {
		return
	}

	if len(fields) < 2 {
		s.send(ctx, msg.ChannelID, Outgoing{
			Body: "Sorry, user not found in Top 250! Make sure to check spelling!",
		})
		return
	}

	arg := fields[1]
	if strings.EqualFold(arg, "all") {
		s.startListing(ctx, msg)
		return
	}
	s.lookupPlayer(ctx, msg, arg)
}

func (s *Service) startListing(ctx context.Context, msg Message) {
	s.send(ctx, msg.ChannelID, Outgoing{Body: "Getting LIVE Top 250 Players..."})

	snapshot, err := s.board.GetSnapshot(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load leaderboard for listing", "err", err)
		s.send(ctx, msg.ChannelID, Outgoing{Body: "Error retrieving leaderboard data"})
		return
	}

	sess := newSession(msg.AuthorID, msg.ChannelID, snapshot, s.now())
	out := renderListing(snapshot, sess.pageIndex, sess.totalPages, false)

	messageID, err := s.gateway.Send(ctx, msg.ChannelID, out)
	if err != nil {
		slog.ErrorContext(ctx, "failed to post leaderboard listing", "err", err)
		return
	}
	sess.messageID = messageID

	s.mu.Lock()
	s.sessions[messageID] = sess
	s.mu.Unlock()

	// single-shot, never refreshed by activity. The session is already
	// reachable through the registry, so both the arming and the check
	// happen under its lock: an explicit close landing before this
	// point wins and the timer is never armed.
	sess.mu.Lock()
	if sess.state == sessionActive {
		sess.timer = time.AfterFunc(s.timeout, func() {
			s.expireSession(sess)
		})
	}
	sess.mu.Unlock()
}

func (s *Service) lookupPlayer(ctx context.Context, msg Message, gamertag string) {
	s.send(ctx, msg.ChannelID, Outgoing{
		Body: fmt.Sprintf("Searching Top 250 leaderboards for %s...", gamertag),
	})

	record, err := s.board.FindPlayer(ctx, gamertag)
	if errors.Is(err, leaderboard.ErrNotFound) {
		text := fmt.Sprintf("Sorry, %s is not in Top 250! Make sure to check spelling!", gamertag)
		var notFound leaderboard.NotFoundError
		if errors.As(err, &notFound) && notFound.Suggestion != "" {
			text += fmt.Sprintf(" Did you mean %s?", notFound.Suggestion)
		}
		s.send(ctx, msg.ChannelID, Outgoing{Body: text})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to load leaderboard for lookup", "gamertag", gamertag, "err", err)
		s.send(ctx, msg.ChannelID, Outgoing{Body: "Error retrieving leaderboard data"})
		return
	}

	s.send(ctx, msg.ChannelID, renderCard(record, s.now()))
}

// HandleInteraction validates one control event and, if it passes,
// advances the owning session and re-renders its message. Everything
// that fails validation is dropped without feedback: not replying to
// non-owners keeps the session invisible to them.
func (s *Service) HandleInteraction(ctx context.Context, click ButtonClick) {
	s.mu.Lock()
	sess := s.sessions[click.MessageID]
	s.mu.Unlock()
	if sess == nil {
		return
	}

	if click.ActorID != sess.ownerID {
		return
	}

	action, _, ok := parseCustomID(click.CustomID)
	if !ok {
		return
	}
	if action == actionClose {
		s.expireSession(sess)
		return
	}

	page, ok := sess.advance(action)
	if !ok {
		return
	}

	out := renderListing(sess.snapshot, page, sess.totalPages, false)
	err := s.gateway.Update(ctx, sess.channelID, sess.messageID, out)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update leaderboard listing", "message", sess.messageID, "err", err)
	}
}

// expireSession retires a session and disables its rendered controls.
// Safe to call from both the expiry timer and an explicit close; only
// the first caller does any work.
func (s *Service) expireSession(sess *session) {
	page, ok := sess.finalize()
	if !ok {
		return
	}

	s.mu.Lock()
	delete(s.sessions, sess.messageID)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	slog.DebugContext(ctx, "retired pagination session",
		"message", sess.messageID,
		"lifetime", s.now().Sub(sess.createdAt),
	)

	out := renderListing(sess.snapshot, page, sess.totalPages, true)
	err := s.gateway.Update(ctx, sess.channelID, sess.messageID, out)
	if err != nil {
		slog.WarnContext(ctx, "failed to disable listing controls", "message", sess.messageID, "err", err)
	}
}
