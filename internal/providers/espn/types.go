package espn

import (
	"encoding/json"
	"strconv"
)

// Payload shapes shared by the scoreboard and team-schedule endpoints. Only
// the fields the bot reads are declared; everything else is ignored.

type ScoreboardResponse struct {
	Events []Event `json:"events"`
}

type ScheduleResponse struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Competitions []Competition `json:"competitions"`
}

type Competition struct {
	Date        string       `json:"date"`
	Status      Status       `json:"status"`
	Competitors []Competitor `json:"competitors"`
}

type Status struct {
	Type StatusType `json:"type"`
}

type StatusType struct {
	Completed bool `json:"completed"`
}

type Competitor struct {
	HomeAway string `json:"homeAway"`
	Score    Score  `json:"score"`
	Team     Team   `json:"team"`
}

type Team struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
}

// Score tolerates the provider's three encodings: a bare string on the
// scoreboard, a number on some feeds and a {value, displayValue} object on
// the team schedule. Absent or unparsable scores read as zero.
type Score struct {
	Value int
}

func (s *Score) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		n, _ := strconv.Atoi(str)
		s.Value = n
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		s.Value = int(num)
		return nil
	}
	var obj struct {
		Value        float64 `json:"value"`
		DisplayValue string  `json:"displayValue"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		if obj.DisplayValue != "" {
			if n, err := strconv.Atoi(obj.DisplayValue); err == nil {
				s.Value = n
				return nil
			}
		}
		s.Value = int(obj.Value)
		return nil
	}
	s.Value = 0
	return nil
}
