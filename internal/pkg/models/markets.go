package models

// Markets lists the betting markets usually offered for a sport. The list is
// informational only and shown on the match detail page.
func Markets(sport Sport) []string {
	switch sport {
	case SportSoccer:
		return []string{"1X2", "Double chance (1X/12/X2)", "Over/Under 2.5", "BTTS", "Handicap (indicative)"}
	case SportBasketball:
		return []string{"Moneyline", "Spread (indicative)", "Total points (O/U)", "Half-time", "Team totals"}
	case SportTennis:
		return []string{"Match winner", "Number of sets", "O/U games", "Game handicap", "First set winner"}
	case SportHockey:
		return []string{"Moneyline", "Puck line", "Total goals (O/U)", "First period", "Team totals"}
	case SportAmericanFootball:
		return []string{"Moneyline", "Spread", "Total points (O/U)", "Team totals", "Half-time"}
	case SportBaseball:
		return []string{"Moneyline", "Run line", "Total runs (O/U)", "1st 5 innings", "Team totals"}
	default:
		return nil
	}
}
