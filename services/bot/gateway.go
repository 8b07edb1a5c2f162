package bot

import "context"

// Gateway is the outbound surface of the chat platform. The realtime
// socket transport that produces Message/ButtonClick events belongs to
// the integrator; see resthook.go for the HTTP bridge shipped here.
type Gateway interface {
	Send(ctx context.Context, channelID string, msg Outgoing) (messageID string, err error)
	Update(ctx context.Context, channelID string, messageID string, msg Outgoing) error
}

type Button struct {
	CustomID string
	Label    string
	Disabled bool
}

type Outgoing struct {
	Title   string
	Body    string
	Buttons []Button
}

// Message is an inbound chat message.
type Message struct {
	ChannelID string
	AuthorID  string
	Content   string
}

// ButtonClick is an inbound control event on a rendered message.
type ButtonClick struct {
	ChannelID string
	MessageID string
	ActorID   string
	CustomID  string
}
