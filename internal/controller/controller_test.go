package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixturebot/fixturebot/internal/enrich"
	"github.com/fixturebot/fixturebot/internal/pkg/models"
	"github.com/fixturebot/fixturebot/internal/session"
)

type stubFetcher struct {
	matches []models.Match

	gotSport  models.Sport
	gotBasket *models.League
	gotDate   time.Time
	calls     int
}

func (f *stubFetcher) FetchMatches(_ context.Context, sport models.Sport, basket *models.League, date time.Time) []models.Match {
	f.calls++
	f.gotSport = sport
	f.gotBasket = basket
	f.gotDate = date
	return f.matches
}

type stubDetailer struct {
	detail enrich.Detail
	gotID  string
}

func (d *stubDetailer) FetchDetail(_ context.Context, m models.Match) enrich.Detail {
	d.gotID = m.ID
	return d.detail
}

type recordingProgress struct {
	texts []string
}

func (p *recordingProgress) Working(text string) { p.texts = append(p.texts, text) }

var testBasketLeagues = []models.League{
	{Code: "nba", Name: "NBA"},
	{Code: "euroleague", Name: "EuroLeague"},
}

func newTestController(fetcher *stubFetcher, detailer *stubDetailer) *Controller {
	c := New(session.NewStore(), fetcher, detailer, testBasketLeagues, 10)
	c.now = func() time.Time {
		return time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	}
	return c
}

func TestParseAction(t *testing.T) {
	assert.Equal(t, Action{Kind: "sport", Arg: "soccer"}, ParseAction("sport|soccer"))
	assert.Equal(t, Action{Kind: "close", Arg: "x"}, ParseAction("close|x"))
	assert.Equal(t, Action{Kind: "garbage"}, ParseAction("garbage"))
}

func TestNoopRendersNothing(t *testing.T) {
	c := newTestController(&stubFetcher{}, &stubDetailer{})

	_, ok := c.Handle(context.Background(), 1, Action{Kind: "noop", Arg: "x"}, &recordingProgress{})
	assert.False(t, ok)
}

func TestSportSelectionReplacesSession(t *testing.T) {
	fetcher := &stubFetcher{matches: []models.Match{{ID: "m1", Home: "A", Away: "B"}}}
	c := newTestController(fetcher, &stubDetailer{})
	ctx := context.Background()
	p := &recordingProgress{}

	v, ok := c.Handle(ctx, 1, Action{Kind: "sport", Arg: "hockey"}, p)
	require.True(t, ok)
	assert.Contains(t, v.Text, "Today or tomorrow?")

	c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)
	require.Equal(t, 1, fetcher.calls)

	// Re-picking a sport drops the previous list: a date press afterwards
	// fetches fresh for the new sport.
	c.Handle(ctx, 1, Action{Kind: "sport", Arg: "soccer"}, p)
	c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)
	assert.Equal(t, models.SportSoccer, fetcher.gotSport)
	assert.Nil(t, fetcher.gotBasket)
}

func TestBasketballRoutesThroughLeagueMenu(t *testing.T) {
	fetcher := &stubFetcher{matches: []models.Match{{ID: "m1"}}}
	c := newTestController(fetcher, &stubDetailer{})
	ctx := context.Background()
	p := &recordingProgress{}

	v, _ := c.Handle(ctx, 1, Action{Kind: "sport", Arg: "basketball"}, p)
	assert.Contains(t, v.Text, "basketball competition")

	v, _ = c.Handle(ctx, 1, Action{Kind: "bleague", Arg: "euroleague"}, p)
	assert.Contains(t, v.Text, "EuroLeague")

	c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)
	require.NotNil(t, fetcher.gotBasket)
	assert.Equal(t, "euroleague", fetcher.gotBasket.Code)
}

func TestDateChoiceAnchorsToUTC(t *testing.T) {
	fetcher := &stubFetcher{}
	c := newTestController(fetcher, &stubDetailer{})
	ctx := context.Background()
	p := &recordingProgress{}

	c.Handle(ctx, 1, Action{Kind: "sport", Arg: "soccer"}, p)
	c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)
	assert.Equal(t, 10, fetcher.gotDate.Day())

	c.Handle(ctx, 1, Action{Kind: "date", Arg: "tomorrow"}, p)
	assert.Equal(t, 11, fetcher.gotDate.Day())
}

func TestDateFetchShowsProgressAndStoresList(t *testing.T) {
	fetcher := &stubFetcher{matches: []models.Match{{ID: "m1", Home: "A", Away: "B"}}}
	c := newTestController(fetcher, &stubDetailer{})
	ctx := context.Background()
	p := &recordingProgress{}

	c.Handle(ctx, 1, Action{Kind: "sport", Arg: "soccer"}, p)
	v, _ := c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)

	require.Len(t, p.texts, 1)
	assert.Contains(t, p.texts[0], "Fetching")
	assert.Contains(t, v.Text, "Today")
}

func TestEmptyResultRendersNoMatches(t *testing.T) {
	c := newTestController(&stubFetcher{}, &stubDetailer{})
	ctx := context.Background()
	p := &recordingProgress{}

	c.Handle(ctx, 1, Action{Kind: "sport", Arg: "tennis"}, p)
	v, _ := c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)
	assert.Equal(t, "No matches found.", v.Text)
}

func TestMatchDetailFlow(t *testing.T) {
	fetcher := &stubFetcher{matches: []models.Match{
		{Sport: models.SportHockey, ID: "g1", Home: "Bruins", Away: "Rangers", StartTime: "2025-03-10T19:00Z"},
	}}
	detailer := &stubDetailer{detail: enrich.Detail{HomeForm: "home form", AwayForm: "away form"}}
	c := newTestController(fetcher, detailer)
	ctx := context.Background()
	p := &recordingProgress{}

	c.Handle(ctx, 1, Action{Kind: "sport", Arg: "hockey"}, p)
	c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)

	v, _ := c.Handle(ctx, 1, Action{Kind: "match", Arg: "g1"}, p)
	assert.Equal(t, "g1", detailer.gotID)
	assert.Contains(t, v.Text, "home form")
	assert.Contains(t, v.Text, "Rangers @ Bruins")
}

func TestStaleMatchIDRendersNotFound(t *testing.T) {
	fetcher := &stubFetcher{matches: []models.Match{{ID: "m1"}}}
	detailer := &stubDetailer{}
	c := newTestController(fetcher, detailer)
	ctx := context.Background()
	p := &recordingProgress{}

	c.Handle(ctx, 1, Action{Kind: "sport", Arg: "soccer"}, p)
	c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)

	v, _ := c.Handle(ctx, 1, Action{Kind: "match", Arg: "superseded"}, p)
	assert.Contains(t, v.Text, "no longer in the list")
	assert.Empty(t, detailer.gotID, "no enrichment fetch for a stale id")
}

func TestPageNavigationUpdatesSession(t *testing.T) {
	matches := make([]models.Match, 23)
	for i := range matches {
		matches[i] = models.Match{ID: "m" + string(rune('a'+i))}
	}
	fetcher := &stubFetcher{matches: matches}
	c := newTestController(fetcher, &stubDetailer{})
	ctx := context.Background()
	p := &recordingProgress{}

	c.Handle(ctx, 1, Action{Kind: "sport", Arg: "soccer"}, p)
	c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)

	v, _ := c.Handle(ctx, 1, Action{Kind: "page", Arg: "2"}, p)
	found := false
	for _, row := range v.Keyboard {
		for _, b := range row {
			if b.Label == "⬅️ Previous" {
				found = true
			}
		}
	}
	assert.True(t, found, "page 2 offers a way back")
	assert.Equal(t, 2, c.sessions.Get(1).Page)
}

func TestBackNavigation(t *testing.T) {
	fetcher := &stubFetcher{matches: []models.Match{{ID: "m1"}}}
	c := newTestController(fetcher, &stubDetailer{})
	ctx := context.Background()
	p := &recordingProgress{}

	c.Handle(ctx, 1, Action{Kind: "sport", Arg: "soccer"}, p)
	c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)

	v, _ := c.Handle(ctx, 1, Action{Kind: "back", Arg: "dates"}, p)
	assert.Contains(t, v.Text, "Today or tomorrow?")
	assert.Equal(t, models.SportSoccer, c.sessions.Get(1).Sport, "dates back keeps the sport")

	v, _ = c.Handle(ctx, 1, Action{Kind: "back", Arg: "sports"}, p)
	assert.Contains(t, v.Text, "Pick a sport")
	assert.Equal(t, session.State{}, c.sessions.Get(1), "sports back resets everything")
}

func TestStaleActionsAfterReset(t *testing.T) {
	c := newTestController(&stubFetcher{}, &stubDetailer{})
	ctx := context.Background()
	p := &recordingProgress{}

	// Date and league buttons from a superseded menu route back to the top.
	v, _ := c.Handle(ctx, 1, Action{Kind: "date", Arg: "today"}, p)
	assert.Contains(t, v.Text, "Pick a sport")

	v, _ = c.Handle(ctx, 1, Action{Kind: "bleague", Arg: "nba"}, p)
	assert.Contains(t, v.Text, "Pick a sport")
}

func TestCloseAndUnknown(t *testing.T) {
	c := newTestController(&stubFetcher{}, &stubDetailer{})
	ctx := context.Background()
	p := &recordingProgress{}

	v, ok := c.Handle(ctx, 1, Action{Kind: "close", Arg: "x"}, p)
	require.True(t, ok)
	assert.Contains(t, v.Text, "closed")

	v, _ = c.Handle(ctx, 1, Action{Kind: "bogus"}, p)
	assert.Contains(t, v.Text, "Pick a sport")
}
