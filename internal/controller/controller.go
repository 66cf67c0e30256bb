// Package controller is the conversation state machine: it parses incoming
// actions, advances the per-chat session and dispatches fetch work, handing
// the result to the view layer.
package controller

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fixturebot/fixturebot/internal/enrich"
	"github.com/fixturebot/fixturebot/internal/pkg/models"
	"github.com/fixturebot/fixturebot/internal/session"
	"github.com/fixturebot/fixturebot/internal/view"
)

// Action is one decoded user selection. Kind and Arg come from the
// "kind|arg" callback payload.
type Action struct {
	Kind string
	Arg  string
}

// ParseAction decodes a callback payload. Unknown payloads decode to an
// Action the state machine answers with the sports menu.
func ParseAction(data string) Action {
	kind, arg, _ := strings.Cut(data, "|")
	return Action{Kind: kind, Arg: arg}
}

// Progress lets the controller surface a transient "fetching…" placeholder
// before slow work. Implementations must tolerate being called from the
// handling goroutine.
type Progress interface {
	Working(text string)
}

// MatchFetcher is the per-sport pipeline boundary.
type MatchFetcher interface {
	FetchMatches(ctx context.Context, sport models.Sport, basket *models.League, date time.Time) []models.Match
}

// Detailer is the enrichment boundary for one match's detail page.
type Detailer interface {
	FetchDetail(ctx context.Context, m models.Match) enrich.Detail
}

type Controller struct {
	sessions      *session.Store
	pipeline      MatchFetcher
	enricher      Detailer
	basketLeagues []models.League
	pageSize      int
	now           func() time.Time
}

func New(sessions *session.Store, pipeline MatchFetcher, enricher Detailer, basketLeagues []models.League, pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = view.DefaultPageSize
	}
	return &Controller{
		sessions:      sessions,
		pipeline:      pipeline,
		enricher:      enricher,
		basketLeagues: basketLeagues,
		pageSize:      pageSize,
		now:           time.Now,
	}
}

// OpenMenu clears the chat's state and returns the top-level sports menu.
func (c *Controller) OpenMenu(chatID int64) view.View {
	c.sessions.Reset(chatID)
	return view.SportsMenu()
}

// Handle advances the state machine for one action. The second return is
// false when nothing should be rendered (no-op buttons).
func (c *Controller) Handle(ctx context.Context, chatID int64, a Action, p Progress) (view.View, bool) {
	switch a.Kind {
	case "noop":
		return view.View{}, false

	case "close":
		return view.Closed(), true

	case "back":
		return c.handleBack(chatID, a.Arg), true

	case "sport":
		return c.handleSport(chatID, a.Arg), true

	case "bleague":
		return c.handleBasketLeague(chatID, a.Arg), true

	case "date":
		return c.handleDate(ctx, chatID, a.Arg, p), true

	case "page":
		return c.handlePage(chatID, a.Arg), true

	case "match":
		return c.handleMatch(ctx, chatID, a.Arg, p), true

	default:
		slog.Warn("unknown action", "kind", a.Kind)
		return c.OpenMenu(chatID), true
	}
}

func (c *Controller) handleBack(chatID int64, dest string) view.View {
	switch dest {
	case "dates":
		// Navigation only; the cached state (sport, league, matches) stays.
		st := c.sessions.Get(chatID)
		if st.Sport == "" {
			return c.OpenMenu(chatID)
		}
		return view.DatesMenu(st.BasketLeague)
	default: // "sports"
		return c.OpenMenu(chatID)
	}
}

func (c *Controller) handleSport(chatID int64, arg string) view.View {
	sport, ok := models.ParseSport(arg)
	if !ok {
		return c.OpenMenu(chatID)
	}

	// Selecting a sport replaces the whole session, dropping any league,
	// date, match list and page from the previous navigation.
	c.sessions.Put(chatID, session.State{Sport: sport})

	if sport == models.SportBasketball {
		return view.BasketLeagueMenu(c.basketLeagues)
	}
	return view.DatesMenu(nil)
}

func (c *Controller) handleBasketLeague(chatID int64, code string) view.View {
	st := c.sessions.Get(chatID)
	if st.Sport != models.SportBasketball {
		return c.OpenMenu(chatID)
	}

	league := models.League{Code: code, Name: code}
	for _, l := range c.basketLeagues {
		if l.Code == code {
			league = l
			break
		}
	}

	st.BasketLeague = &league
	c.sessions.Put(chatID, st)
	return view.DatesMenu(&league)
}

func (c *Controller) handleDate(ctx context.Context, chatID int64, choice string, p Progress) view.View {
	st := c.sessions.Get(chatID)
	if st.Sport == "" {
		// Stale date button from before a menu reset.
		return c.OpenMenu(chatID)
	}

	// Today and tomorrow anchor to the UTC calendar day, not the user's
	// local one.
	date := c.now().UTC()
	if choice == "tomorrow" {
		date = date.Add(24 * time.Hour)
	} else {
		choice = "today"
	}

	p.Working("🔎 Fetching matches…")
	matches := c.pipeline.FetchMatches(ctx, st.Sport, st.BasketLeague, date)

	st.DateChoice = choice
	st.Matches = matches
	st.Page = 0
	c.sessions.Put(chatID, st)

	if len(matches) == 0 {
		return view.NoMatches()
	}
	return view.MatchList(st.Sport, st.DateChoice, st.Matches, 0, c.pageSize)
}

func (c *Controller) handlePage(chatID int64, arg string) view.View {
	st := c.sessions.Get(chatID)

	page, err := strconv.Atoi(arg)
	if err != nil {
		page = 0
	}
	st.Page = page
	c.sessions.Put(chatID, st)

	// The renderer clamps an out-of-range page to an empty valid window.
	return view.MatchList(st.Sport, st.DateChoice, st.Matches, page, c.pageSize)
}

func (c *Controller) handleMatch(ctx context.Context, chatID int64, id string, p Progress) view.View {
	st := c.sessions.Get(chatID)

	m, err := st.FindMatch(id)
	if err != nil || st.Sport == "" {
		// The one user-visible error: a stale button referencing a
		// superseded list renders an explicit not-found with a way back.
		slog.Warn("stale match selection", "chat", chatID, "error", err)
		return view.NotFound()
	}

	p.Working("📄 Building the match card…")
	d := c.enricher.FetchDetail(ctx, m)
	return view.MatchDetail(m, d.HomeForm, d.AwayForm, d.Extra, st.Page)
}
