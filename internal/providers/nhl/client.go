// Package nhl reads the hockey provider's gamecenter landing feed. The feed
// shares identifier space with the scoreboard provider for NHL games, so the
// match id selected from the fixture list looks up directly.
package nhl

import (
	"context"
	"fmt"

	"github.com/fixturebot/fixturebot/internal/upstream"
)

const DefaultBaseURL = "https://api-web.nhle.com/v1"

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

type Landing struct {
	Matchup Matchup `json:"matchup"`
}

type Matchup struct {
	Goalies Goalies `json:"goalies"`
}

type Goalies struct {
	Home Goalie `json:"home"`
	Away Goalie `json:"away"`
}

type Goalie struct {
	PlayerName string `json:"playerName"`
}

// Landing fetches the pre-game landing page for one game.
func (c *Client) Landing(ctx context.Context, gameID string) (*Landing, error) {
	u := fmt.Sprintf("%s/gamecenter/%s/landing", c.baseURL, gameID)
	var resp Landing
	if err := c.http.GetJSON(ctx, u, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
