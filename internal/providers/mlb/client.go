// Package mlb reads the baseball stats provider's live feed for probable
// starting pitchers. Unlike the hockey feed, its game ids are not guaranteed
// to coincide with the scoreboard provider's event ids; lookups are
// best-effort and fail closed.
package mlb

import (
	"context"
	"fmt"

	"github.com/fixturebot/fixturebot/internal/upstream"
)

const DefaultBaseURL = "https://statsapi.mlb.com/api/v1.1"

type Client struct {
	http    *upstream.Client
	baseURL string
}

func NewClient(http *upstream.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: http, baseURL: baseURL}
}

type LiveFeed struct {
	GameData GameData `json:"gameData"`
}

type GameData struct {
	ProbablePitchers ProbablePitchers `json:"probablePitchers"`
}

type ProbablePitchers struct {
	Home Pitcher `json:"home"`
	Away Pitcher `json:"away"`
}

type Pitcher struct {
	FullName string `json:"fullName"`
}

// LiveFeed fetches the live game feed for one game pk.
func (c *Client) LiveFeed(ctx context.Context, gamePk string) (*LiveFeed, error) {
	u := fmt.Sprintf("%s/game/%s/feed/live", c.baseURL, gamePk)
	var resp LiveFeed
	if err := c.http.GetJSON(ctx, u, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
