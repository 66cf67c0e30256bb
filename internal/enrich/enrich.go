// Package enrich produces the optional per-match extras shown on a detail
// page: recent form per team and sport-specific probable starters. Every
// fetcher returns a ready-to-display string and degrades to a fixed
// "unavailable" line on any failure; nothing here aborts a detail page.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/fixturebot/fixturebot/internal/pkg/models"
	"github.com/fixturebot/fixturebot/internal/providers/espn"
	"github.com/fixturebot/fixturebot/internal/providers/mlb"
	"github.com/fixturebot/fixturebot/internal/providers/nhl"
)

const (
	formHeader      = "📈 Form (last 5):"
	FormUnavailable = "📈 Form: unavailable"

	goaliesHeader      = "🧤 Probable goalies:"
	GoaliesUnavailable = "🧤 Probable goalies: unavailable"

	pitchersHeader      = "⚾ Probable pitchers:"
	PitchersUnavailable = "⚾ Probable pitchers: unavailable"

	// The baseball scoreboard id is not guaranteed to be a valid stats-feed
	// game pk; the lookup is best-effort and the caveat says so.
	PitchersCaveat = "⚠️ Pitchers are best-effort: shown only when the match id resolves in the stats feed."

	formResultLimit = 5
)

type Enricher struct {
	espn *espn.Client
	nhl  *nhl.Client
	mlb  *mlb.Client
}

func New(espnClient *espn.Client, nhlClient *nhl.Client, mlbClient *mlb.Client) *Enricher {
	return &Enricher{espn: espnClient, nhl: nhlClient, mlb: mlbClient}
}

// Detail carries everything the detail view renders besides the match itself.
type Detail struct {
	HomeForm string
	AwayForm string
	// Extra holds sport-specific starter lines, already formatted.
	Extra []string
}

// FetchDetail gathers both teams' form and the sport-specific starter data
// concurrently and joins before returning. Each fetcher fails independently.
func (e *Enricher) FetchDetail(ctx context.Context, m models.Match) Detail {
	d := Detail{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		d.HomeForm = e.TeamForm(ctx, m.Sport, m.LeagueCode, m.HomeID)
	}()
	go func() {
		defer wg.Done()
		d.AwayForm = e.TeamForm(ctx, m.Sport, m.LeagueCode, m.AwayID)
	}()

	var starters string
	switch m.Sport {
	case models.SportHockey:
		wg.Add(1)
		go func() {
			defer wg.Done()
			starters = e.Goalies(ctx, m.ID)
		}()
	case models.SportBaseball:
		wg.Add(1)
		go func() {
			defer wg.Done()
			starters = e.Pitchers(ctx, m.ID)
		}()
	}
	wg.Wait()

	switch m.Sport {
	case models.SportHockey:
		d.Extra = []string{starters}
	case models.SportBaseball:
		d.Extra = []string{PitchersCaveat, starters}
	}
	return d
}

// TeamForm formats the team's five most recent completed results, newest
// first, as "W Name1 S1-S2 Name2 (date)" lines. Fewer than five completed
// events still render; anything else reads as the unavailable line.
func (e *Enricher) TeamForm(ctx context.Context, sport models.Sport, leagueCode, teamID string) string {
	if teamID == "" || sport == models.SportTennis {
		// Tennis scoreboard competitors are players whose ids do not resolve
		// against the team schedule endpoint.
		return FormUnavailable
	}

	schedule, err := e.espn.TeamSchedule(ctx, espn.PathFor(sport), leagueCode, teamID)
	if err != nil {
		slog.Debug("team schedule fetch failed", "league", leagueCode, "team", teamID, "error", err)
		return FormUnavailable
	}

	// The schedule runs oldest to newest; collect completed results in feed
	// order, then keep the tail and flip it newest-first.
	var results []string
	for _, ev := range schedule.Events {
		line, ok := formLine(ev, teamID)
		if !ok {
			continue
		}
		results = append(results, line)
	}
	if len(results) == 0 {
		return FormUnavailable
	}
	if len(results) > formResultLimit {
		results = results[len(results)-formResultLimit:]
	}
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return formHeader + "\n- " + strings.Join(results, "\n- ")
}

// formLine turns one completed schedule event into a result line for teamID.
// Incomplete events and events the team did not play in are skipped.
func formLine(ev espn.Event, teamID string) (string, bool) {
	if len(ev.Competitions) == 0 {
		return "", false
	}
	comp := ev.Competitions[0]
	if !comp.Status.Type.Completed || len(comp.Competitors) < 2 {
		return "", false
	}

	c1, c2 := comp.Competitors[0], comp.Competitors[1]
	s1, s2 := c1.Score.Value, c2.Score.Value

	var outcome string
	switch teamID {
	case c1.Team.ID:
		outcome = resultFor(s1, s2)
	case c2.Team.ID:
		outcome = resultFor(s2, s1)
	default:
		return "", false
	}

	date := comp.Date
	if date == "" {
		date = ev.Date
	}
	return fmt.Sprintf("%s %s %d-%d %s (%s)",
		outcome,
		shortTeamName(c1.Team, "T1"), s1, s2, shortTeamName(c2.Team, "T2"),
		models.FormatKickoff(date)), true
}

func resultFor(own, opp int) string {
	switch {
	case own > opp:
		return "W"
	case own < opp:
		return "L"
	default:
		return "D"
	}
}

func shortTeamName(t espn.Team, placeholder string) string {
	if t.Abbreviation != "" {
		return t.Abbreviation
	}
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return placeholder
}

// Goalies returns the named probable starters for one hockey game, or the
// unavailable line when the landing feed has none.
func (e *Enricher) Goalies(ctx context.Context, gameID string) string {
	landing, err := e.nhl.Landing(ctx, gameID)
	if err != nil {
		slog.Debug("gamecenter landing fetch failed", "game", gameID, "error", err)
		return GoaliesUnavailable
	}

	home := landing.Matchup.Goalies.Home.PlayerName
	away := landing.Matchup.Goalies.Away.PlayerName
	if home == "" && away == "" {
		return GoaliesUnavailable
	}

	lines := []string{goaliesHeader}
	if away != "" {
		lines = append(lines, "- Away: "+away)
	}
	if home != "" {
		lines = append(lines, "- Home: "+home)
	}
	return strings.Join(lines, "\n")
}

// Pitchers returns the probable starters for one baseball game. The id comes
// from the scoreboard provider and may not resolve; any failure reads as
// unavailable rather than risking another game's data.
func (e *Enricher) Pitchers(ctx context.Context, gamePk string) string {
	feed, err := e.mlb.LiveFeed(ctx, gamePk)
	if err != nil {
		slog.Debug("live feed fetch failed", "game", gamePk, "error", err)
		return PitchersUnavailable
	}

	home := feed.GameData.ProbablePitchers.Home.FullName
	away := feed.GameData.ProbablePitchers.Away.FullName
	if home == "" && away == "" {
		return PitchersUnavailable
	}

	lines := []string{pitchersHeader}
	if away != "" {
		lines = append(lines, "- Away: "+away)
	}
	if home != "" {
		lines = append(lines, "- Home: "+home)
	}
	return strings.Join(lines, "\n")
}
