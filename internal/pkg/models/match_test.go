package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatKickoff(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want string
	}{
		{"rfc3339", "2025-03-10T19:30:00Z", "10/03 19:30"},
		{"minute precision without seconds", "2025-03-10T19:30Z", "10/03 19:30"},
		{"offset normalized to utc", "2025-03-10T21:30:00+02:00", "10/03 19:30"},
		{"unparseable comes back raw", "tbd", "tbd"},
		{"empty", "", "??"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatKickoff(tt.iso))
		})
	}
}

func TestParseSport(t *testing.T) {
	s, ok := ParseSport("hockey")
	assert.True(t, ok)
	assert.Equal(t, SportHockey, s)

	_, ok = ParseSport("cricket")
	assert.False(t, ok, "unknown sports from stale callbacks must not parse")
}

func TestAllSportsHaveLabelsAndMarkets(t *testing.T) {
	for _, s := range AllSports() {
		assert.NotEqual(t, string(s), s.Label(), "label for %s should be decorated", s)
		assert.NotEmpty(t, Markets(s), "markets for %s", s)
	}
}
