// Package view renders conversation state into display text plus selectable
// actions. Everything here is a pure function of its inputs; the transport
// adapter maps Views onto whatever widget set it has.
package view

import (
	"fmt"
	"strings"

	"github.com/fixturebot/fixturebot/internal/pkg/models"
)

// Button is one selectable action: a label the user sees and the callback
// data the transport sends back.
type Button struct {
	Label string
	Data  string
}

// View is one rendered screen.
type View struct {
	Text     string
	Keyboard [][]Button
}

const DefaultPageSize = 10

var (
	btnClose      = Button{Label: "❌ Close", Data: "close|x"}
	btnBackSports = Button{Label: "🏠 Sports menu", Data: "back|sports"}
	btnBackDates  = Button{Label: "⬅️ Back", Data: "back|dates"}
)

// SportsMenu is the top-level screen, two sports per row.
func SportsMenu() View {
	sports := models.AllSports()

	var rows [][]Button
	for i := 0; i < len(sports); i += 2 {
		row := []Button{{Label: sports[i].Label(), Data: "sport|" + string(sports[i])}}
		if i+1 < len(sports) {
			row = append(row, Button{Label: sports[i+1].Label(), Data: "sport|" + string(sports[i+1])})
		}
		rows = append(rows, row)
	}
	rows = append(rows, []Button{btnClose})

	return View{Text: "Pick a sport 👇", Keyboard: rows}
}

// BasketLeagueMenu asks which basketball competition to browse.
func BasketLeagueMenu(leagues []models.League) View {
	var rows [][]Button
	for _, l := range leagues {
		rows = append(rows, []Button{{Label: "🏀 " + l.Name, Data: "bleague|" + l.Code}})
	}
	rows = append(rows, []Button{btnBackSports}, []Button{btnClose})

	return View{Text: "Pick a basketball competition 👇", Keyboard: rows}
}

// DatesMenu asks for today or tomorrow. basket adds a context line when a
// basketball competition was just chosen.
func DatesMenu(basket *models.League) View {
	text := "Today or tomorrow? 👇"
	if basket != nil {
		text = fmt.Sprintf("Basketball: %s\n\n%s", basket.Name, text)
	}
	return View{
		Text: text,
		Keyboard: [][]Button{
			{
				{Label: "📅 Today", Data: "date|today"},
				{Label: "📅 Tomorrow", Data: "date|tomorrow"},
			},
			{btnBackSports},
			{btnClose},
		},
	}
}

// MatchList renders one page of the result set. A stale page index clamps to
// an empty-but-valid window instead of failing.
func MatchList(sport models.Sport, dateChoice string, matches []models.Match, page, pageSize int) View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	start := page * pageSize
	if start < 0 || start > len(matches) {
		start = len(matches)
	}
	end := start + pageSize
	if end > len(matches) {
		end = len(matches)
	}

	var rows [][]Button
	for _, m := range matches[start:end] {
		label := fmt.Sprintf("%s — %s @ %s", models.FormatKickoff(m.StartTime), m.Away, m.Home)
		rows = append(rows, []Button{{Label: label, Data: "match|" + m.ID}})

		comp := m.LeagueName
		if comp == "" {
			comp = m.LeagueCode
		}
		rows = append(rows, []Button{{Label: "🏆 " + comp, Data: "noop|x"}})
	}

	var nav []Button
	if page > 0 {
		nav = append(nav, Button{Label: "⬅️ Previous", Data: fmt.Sprintf("page|%d", page-1)})
	}
	if (page+1)*pageSize < len(matches) {
		nav = append(nav, Button{Label: "➡️ Next", Data: fmt.Sprintf("page|%d", page+1)})
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, []Button{btnBackDates}, []Button{btnBackSports}, []Button{btnClose})

	day := "Today"
	if dateChoice == "tomorrow" {
		day = "Tomorrow"
	}
	return View{
		Text:     fmt.Sprintf("%s matches — %s", sport.Label(), day),
		Keyboard: rows,
	}
}

// MatchDetail renders the full card for one match.
func MatchDetail(m models.Match, homeForm, awayForm string, extra []string, page int) View {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ %s\n", m.Sport.Label())
	fmt.Fprintf(&b, "%s — %s @ %s\n", models.FormatKickoff(m.StartTime), m.Away, m.Home)
	if m.LeagueName != "" {
		fmt.Fprintf(&b, "🏆 %s\n", m.LeagueName)
	}

	b.WriteString("\n— Form —\n")
	fmt.Fprintf(&b, "🏠 %s\n%s\n", m.Home, homeForm)
	fmt.Fprintf(&b, "\n🚌 %s\n%s\n", m.Away, awayForm)

	for _, line := range extra {
		b.WriteString("\n" + line + "\n")
	}

	if markets := models.Markets(m.Sport); len(markets) > 0 {
		b.WriteString("\n🎯 Markets to look at:\n")
		for _, market := range markets {
			b.WriteString("- " + market + "\n")
		}
	}
	b.WriteString("\n⚠️ Informational only — analysis is an aid, not a guarantee.")

	return View{
		Text: b.String(),
		Keyboard: [][]Button{
			{{Label: "⬅️ Back to list", Data: fmt.Sprintf("page|%d", page)}},
			{btnBackSports},
		},
	}
}

// NoMatches is the valid empty-result screen, distinct from an error.
func NoMatches() View {
	return View{
		Text:     "No matches found.",
		Keyboard: [][]Button{{btnBackSports}},
	}
}

// NotFound renders the stale-selection error with a working path back.
func NotFound() View {
	v := SportsMenu()
	v.Text = "That match is no longer in the list. Back to the menu 👇"
	return v
}

// Closed dismisses the menu.
func Closed() View {
	return View{Text: "Menu closed ✅"}
}

// Working is the transient placeholder shown while data is being fetched.
func Working(text string) View {
	return View{Text: text}
}
