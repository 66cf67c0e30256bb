// Package espn talks to the free multi-sport scoreboard provider: fixture
// lists per (sport, league, date) and per-team schedules used for recent form.
package espn

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/fixturebot/fixturebot/internal/pkg/models"
	"github.com/fixturebot/fixturebot/internal/upstream"
)

const DefaultBaseURL = "https://site.api.espn.com/apis/site/v2"

const (
	scoreboardLimit = 300
	scheduleLimit   = 25
)

type Client struct {
	http    *upstream.Client
	baseURL string
}

// NewClient creates a provider client. Pass an empty baseURL for production.
func NewClient(http *upstream.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: http, baseURL: baseURL}
}

// PathFor maps a sport to the provider's URL path segment.
func PathFor(sport models.Sport) string {
	switch sport {
	case models.SportAmericanFootball:
		return "football"
	case models.SportHockey:
		return "hockey"
	case models.SportBaseball:
		return "baseball"
	default:
		// soccer, basketball and tennis match the provider's naming.
		return string(sport)
	}
}

// Scoreboard fetches the fixture list for one league on one calendar date.
// The provider keys dates in compact YYYYMMDD form.
func (c *Client) Scoreboard(ctx context.Context, sportPath, league string, date time.Time) (*ScoreboardResponse, error) {
	u := fmt.Sprintf("%s/sports/%s/%s/scoreboard", c.baseURL, sportPath, league)
	params := url.Values{
		"dates": {date.Format("20060102")},
		"limit": {strconv.Itoa(scoreboardLimit)},
	}
	var resp ScoreboardResponse
	if err := c.http.GetJSON(ctx, u, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TeamSchedule fetches a team's recent scheduled events, completed or not.
func (c *Client) TeamSchedule(ctx context.Context, sportPath, league, teamID string) (*ScheduleResponse, error) {
	u := fmt.Sprintf("%s/sports/%s/%s/teams/%s/schedule", c.baseURL, sportPath, league, teamID)
	params := url.Values{
		"limit": {strconv.Itoa(scheduleLimit)},
	}
	var resp ScheduleResponse
	if err := c.http.GetJSON(ctx, u, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
