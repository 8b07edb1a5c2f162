package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
)

// RestGateway implements Gateway over the chat platform's message
// REST API. Pair it with whatever bridges the platform's realtime
// socket onto the webhook routes below.
type RestGateway struct {
	http *resty.Client
}

type RestGatewayOptions struct {
	BaseUrl string
	// bot credential, sent as a bearer token
	Token string
}

func NewRestGateway(opts RestGatewayOptions) *RestGateway {
	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetAuthToken(opts.Token)
	client.SetTimeout(time.Second * 10)
	return &RestGateway{http: client}
}

type restButton struct {
	CustomID string `json:"customId"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

type restMessage struct {
	Title   string       `json:"title,omitempty"`
	Body    string       `json:"body"`
	Buttons []restButton `json:"buttons,omitempty"`
}

func encodeRestMessage(msg Outgoing) restMessage {
	out := restMessage{
		Title: msg.Title,
		Body:  msg.Body,
	}
	for _, b := range msg.Buttons {
		out.Buttons = append(out.Buttons, restButton(b))
	}
	return out
}

func (g *RestGateway) Send(ctx context.Context, channelID string, msg Outgoing) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	res, err := g.http.R().
		SetContext(ctx).
		SetBody(encodeRestMessage(msg)).
		SetResult(&created).
		Post(fmt.Sprintf("/channels/%s/messages", channelID))
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("send message: status %d", res.StatusCode())
	}
	return created.ID, nil
}

func (g *RestGateway) Update(ctx context.Context, channelID, messageID string, msg Outgoing) error {
	res, err := g.http.R().
		SetContext(ctx).
		SetBody(encodeRestMessage(msg)).
		Patch(fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID))
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("update message: status %d", res.StatusCode())
	}
	return nil
}

// RegisterRoutes wires the inbound webhook surface to the bot.
func RegisterRoutes(router chi.Router, service *Service) {
	router.Post("/hooks/message", service.handleMessageHook)
	router.Post("/hooks/interaction", service.handleInteractionHook)
}

type messageHook struct {
	ChannelID string `json:"channelId"`
	AuthorID  string `json:"authorId"`
	Content   string `json:"content"`
}

type interactionHook struct {
	ChannelID string `json:"channelId"`
	MessageID string `json:"messageId"`
	ActorID   string `json:"actorId"`
	CustomID  string `json:"customId"`
}

func (s *Service) handleMessageHook(w http.ResponseWriter, r *http.Request) {
	var hook messageHook
	err := json.NewDecoder(r.Body).Decode(&hook)
	if err != nil {
		http.Error(w, "malformed message event", http.StatusBadRequest)
		return
	}

	s.HandleMessage(r.Context(), Message(hook))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleInteractionHook(w http.ResponseWriter, r *http.Request) {
	var hook interactionHook
	err := json.NewDecoder(r.Body).Decode(&hook)
	if err != nil {
		http.Error(w, "malformed interaction event", http.StatusBadRequest)
		return
	}

	s.HandleInteraction(r.Context(), ButtonClick(hook))
	w.WriteHeader(http.StatusNoContent)
}
