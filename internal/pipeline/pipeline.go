// Package pipeline drives the scoreboard provider across one or many league
// endpoints for a date and assembles the canonical, sorted match list. A
// failing league contributes zero matches; it never fails the whole request.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/fixturebot/fixturebot/internal/pkg/models"
	"github.com/fixturebot/fixturebot/internal/providers/espn"
)

type Pipeline struct {
	espn          *espn.Client
	soccerLeagues []models.League
	tennisLeagues []models.League
}

func New(espnClient *espn.Client, soccer, tennis []models.League) *Pipeline {
	return &Pipeline{
		espn:          espnClient,
		soccerLeagues: soccer,
		tennisLeagues: tennis,
	}
}

// FetchMatches returns all matches for the sport on the given UTC calendar
// date, sorted ascending by start time. basket selects the basketball
// competition and is ignored for every other sport. The result is empty, not
// an error, when every source fails or nothing is scheduled.
func (p *Pipeline) FetchMatches(ctx context.Context, sport models.Sport, basket *models.League, date time.Time) []models.Match {
	var matches []models.Match

	switch sport {
	case models.SportSoccer:
		matches = p.fanOut(ctx, sport, p.soccerLeagues, date)
	case models.SportTennis:
		matches = p.fanOut(ctx, sport, p.tennisLeagues, date)
	case models.SportBasketball:
		league := models.League{Code: "nba", Name: "NBA"}
		if basket != nil {
			league = *basket
		}
		matches = p.single(ctx, sport, league, date)
	case models.SportHockey:
		matches = p.single(ctx, sport, models.League{Code: "nhl", Name: "NHL"}, date)
	case models.SportAmericanFootball:
		matches = p.single(ctx, sport, models.League{Code: "nfl", Name: "NFL"}, date)
	case models.SportBaseball:
		matches = p.single(ctx, sport, models.League{Code: "mlb", Name: "MLB"}, date)
	}

	// Lexical comparison is correct: every timestamp shares the provider's
	// ISO-8601 format and zone convention. Leagues are concatenated in
	// configuration order, so the full ordering is deterministic no matter
	// which concurrent fetch finished first.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].StartTime < matches[j].StartTime
	})
	return matches
}

// fanOut issues one independent scoreboard call per league and unions
// whatever succeeded.
func (p *Pipeline) fanOut(ctx context.Context, sport models.Sport, leagues []models.League, date time.Time) []models.Match {
	perLeague := make([][]models.Match, len(leagues))

	var mu sync.Mutex
	var failures *multierror.Error

	var g errgroup.Group
	for i, league := range leagues {
		i, league := i, league
		g.Go(func() error {
			got, err := p.fetchLeague(ctx, sport, league, date)
			if err != nil {
				mu.Lock()
				failures = multierror.Append(failures, err)
				mu.Unlock()
				return nil // a league failure must not cancel its siblings
			}
			perLeague[i] = got
			return nil
		})
	}
	_ = g.Wait()

	if err := failures.ErrorOrNil(); err != nil {
		slog.Warn("some leagues failed, continuing with the rest",
			"sport", sport, "error", err)
	}

	var out []models.Match
	for _, got := range perLeague {
		out = append(out, got...)
	}
	return out
}

func (p *Pipeline) single(ctx context.Context, sport models.Sport, league models.League, date time.Time) []models.Match {
	got, err := p.fetchLeague(ctx, sport, league, date)
	if err != nil {
		slog.Warn("scoreboard fetch failed", "sport", sport, "league", league.Code, "error", err)
		return nil
	}
	return got
}

// fetchLeague runs one scoreboard call and normalizes its events. Upstream
// failures propagate; a malformed single event is skipped, not fatal.
func (p *Pipeline) fetchLeague(ctx context.Context, sport models.Sport, league models.League, date time.Time) ([]models.Match, error) {
	sb, err := p.espn.Scoreboard(ctx, espn.PathFor(sport), league.Code, date)
	if err != nil {
		return nil, err
	}

	matches := make([]models.Match, 0, len(sb.Events))
	for _, ev := range sb.Events {
		m, err := espn.Normalize(sport, ev, league.Code, league.Name)
		if err != nil {
			var ne *models.NormalizationError
			if errors.As(err, &ne) {
				slog.Debug("skipping malformed event", "league", league.Code, "event", ev.ID, "error", err)
				continue
			}
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}
