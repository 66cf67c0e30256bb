package espn

import (
	"github.com/fixturebot/fixturebot/internal/pkg/models"
)

// Name placeholders used when a competitor carries no usable name at all.
// A missing name is never a reason to drop an event.
const (
	placeholderHome = "HOME"
	placeholderAway = "AWAY"
)

// Normalize maps one raw scoreboard event into the canonical Match record.
// It fails only when competitor data is structurally absent; the caller skips
// that single event and keeps the batch.
func Normalize(sport models.Sport, ev Event, leagueCode, leagueName string) (models.Match, error) {
	if len(ev.Competitions) == 0 {
		return models.Match{}, &models.NormalizationError{Reason: "event has no competitions"}
	}
	comp := ev.Competitions[0]
	if len(comp.Competitors) < 2 {
		return models.Match{}, &models.NormalizationError{Reason: "fewer than two competitors"}
	}

	// The provider tags sides with homeAway; fall back to position when the
	// tag is missing (first entry home, second away).
	home := comp.Competitors[0]
	away := comp.Competitors[1]
	for _, c := range comp.Competitors {
		switch c.HomeAway {
		case "home":
			home = c
		case "away":
			away = c
		}
	}

	startTime := comp.Date
	if startTime == "" {
		startTime = ev.Date
	}

	return models.Match{
		Sport:      sport,
		LeagueCode: leagueCode,
		LeagueName: leagueName,
		ID:         ev.ID,
		StartTime:  startTime,
		Home:       teamName(home.Team, placeholderHome),
		Away:       teamName(away.Team, placeholderAway),
		HomeID:     home.Team.ID,
		AwayID:     away.Team.ID,
	}, nil
}

// teamName prefers the long display name, then the short one, then a fixed
// placeholder.
func teamName(t Team, placeholder string) string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	if t.ShortDisplayName != "" {
		return t.ShortDisplayName
	}
	return placeholder
}
