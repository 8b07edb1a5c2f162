package wzranked

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"top250-backend/lib/util/restyutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

const DefaultBaseUrl = "https://www.wzranked.com"

const top250Path = "/mw2/leaderboards/top250"

var (
	// the upstream page could not be retrieved at all
	ErrUpstream = errors.New("upstream leaderboard request failed")
	// the page came back but the embedded payload is gone or malformed
	ErrMissingData = errors.New("embedded leaderboard data missing or malformed")
)

// Int that tolerates being encoded as a JSON string or float,
// both of which show up in the upstream payload.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*n = FlexInt(v)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = FlexInt(f)
	return nil
}

// RawEntry mirrors one element of props.pageProps.dataTop250
// exactly as wzranked serves it.
type RawEntry struct {
	UpdatedAt        string  `json:"updated_at"`
	Date             string  `json:"dt"`
	RankDense        FlexInt `json:"rankdense"`
	DeltaRankDense   FlexInt `json:"drankdense"`
	Gamertag         string  `json:"gamertag"`
	SkillRating      FlexInt `json:"skillrating"`
	DeltaSkillRating FlexInt `json:"dskillrating"`
	IsPro            bool    `json:"ispro"`
	SessionLive      bool    `json:"sessionlive"`
	SessionEnd       string  `json:"sessionend"`
	SessionHours     FlexInt `json:"sessionhours"`
	SessionMinutes   FlexInt `json:"sessionminutes"`
	SessionWins      FlexInt `json:"sessionwins"`
	SessionLosses    FlexInt `json:"sessionlosses"`
	SessionSr        FlexInt `json:"sessionsr"`
	WinStreak        FlexInt `json:"winstreak"`
	LongestWinStreak FlexInt `json:"longestwinstreak"`
}

type nextData struct {
	Props struct {
		PageProps struct {
			DataTop250 []RawEntry `json:"dataTop250"`
		} `json:"pageProps"`
	} `json:"props"`
}

type Client struct {
	BaseUrl string
	Http    *resty.Client
}

type ClientOptions struct {
	BaseUrl string
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, tracer, instrumentOutput)

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}
}

// FetchTop250 pulls the leaderboard page and extracts the raw entries
// embedded in its `script#__NEXT_DATA__` tag. There are no retries: a
// failure aborts the caller's invocation.
func (c *Client) FetchTop250(ctx context.Context) ([]RawEntry, error) {
	ctx, span := tracer.Start(ctx, "FetchTop250")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(top250Path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		span.SetStatus(codes.Error, "bad status")
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingData, err)
	}

	payload := doc.Find("script#__NEXT_DATA__").Text()
	if payload == "" {
		return nil, fmt.Errorf("%w: no __NEXT_DATA__ script tag", ErrMissingData)
	}

	var data nextData
	err = json.Unmarshal([]byte(payload), &data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingData, err)
	}
	entries := data.Props.PageProps.DataTop250
	if entries == nil {
		return nil, fmt.Errorf("%w: dataTop250 not present", ErrMissingData)
	}

	slog.DebugContext(ctx, "fetched top 250", "entries", len(entries))
	return entries, nil
}
