package game

import "strings"

// Mode distinguishes regular-season games from playoff games.
type Mode string

const (
	ModeSeason  Mode = "Season"
	ModePlayoff Mode = "Playoff"
)

// Game is one played or scheduled game. Result codes are free-text strings
// ("W", "L", "T", "OTW", "OTL") maintained by the data-entry process and are
// compared case-insensitively everywhere.
type Game struct {
	SeasonCode string
	GameNumber int
	HomeTeam   string
	AwayTeam   string
	HomeScore  *int
	AwayScore  *int
	HomeResult string
	AwayResult string
	Overtime   bool
	Mode       Mode
}

// IsWinResult reports whether a result code counts as a win. Only "W" and
// "OTW" qualify; ties and OT losses count as not-a-win, which is what the
// streak classification intentionally relies on.
func IsWinResult(code string) bool {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "W", "OTW":
		return true
	default:
		return false
	}
}

// Played reports whether both scores have been recorded.
func (g Game) Played() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// ResultFor returns the recorded result code for the given team, or the empty
// string when the team did not play in this game.
func (g Game) ResultFor(teamCode string) string {
	switch {
	case strings.EqualFold(g.HomeTeam, teamCode):
		return g.HomeResult
	case strings.EqualFold(g.AwayTeam, teamCode):
		return g.AwayResult
	default:
		return ""
	}
}
