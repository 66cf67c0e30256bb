package models

import "time"

// Sport identifies one of the supported sports.
type Sport string

const (
	SportSoccer           Sport = "soccer"
	SportBasketball       Sport = "basketball"
	SportTennis           Sport = "tennis"
	SportHockey           Sport = "hockey"
	SportAmericanFootball Sport = "american_football"
	SportBaseball         Sport = "baseball"
)

// AllSports returns the supported sports in menu order.
func AllSports() []Sport {
	return []Sport{
		SportSoccer,
		SportBasketball,
		SportTennis,
		SportHockey,
		SportAmericanFootball,
		SportBaseball,
	}
}

// ParseSport validates a sport identifier coming from a callback payload.
func ParseSport(s string) (Sport, bool) {
	switch Sport(s) {
	case SportSoccer, SportBasketball, SportTennis, SportHockey, SportAmericanFootball, SportBaseball:
		return Sport(s), true
	}
	return "", false
}

// Label returns the display label for a sport.
func (s Sport) Label() string {
	switch s {
	case SportSoccer:
		return "⚽ Soccer"
	case SportBasketball:
		return "🏀 Basketball"
	case SportTennis:
		return "🎾 Tennis"
	case SportHockey:
		return "🏒 NHL"
	case SportAmericanFootball:
		return "🏈 NFL"
	case SportBaseball:
		return "⚾ MLB"
	default:
		return string(s)
	}
}

// League is a (code, name) pair identifying one competition at the provider.
type League struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Match is the canonical, provider-agnostic event record. It is immutable
// once constructed; the normalizer either produces a complete Match or fails.
type Match struct {
	Sport      Sport  `json:"sport"`
	LeagueCode string `json:"league"`
	LeagueName string `json:"league_name"`
	// ID is provider-scoped and only valid as a lookup key for the lifetime
	// of the result set it came from.
	ID string `json:"id"`
	// StartTime is the ISO-8601 timestamp exactly as received. Rendering
	// formats it; the stored value is never mutated.
	StartTime string `json:"start_time"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeID    string `json:"home_id"`
	AwayID    string `json:"away_id"`
}

// FormatKickoff renders a stored ISO-8601 start time as "dd/mm hh:mm" UTC.
// The raw string comes back untouched when it does not parse.
func FormatKickoff(iso string) string {
	if iso == "" {
		return "??"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// ESPN emits minute precision without seconds.
		t, err = time.Parse("2006-01-02T15:04Z07:00", iso)
	}
	if err != nil {
		return iso
	}
	return t.UTC().Format("02/01 15:04")
}
