package season

import (
	"strings"
	"time"
	"unicode"
)

// Season is one completed or running season of a league. The code carries the
// league prefix followed by the sequence number, e.g. "W16" is the sixteenth
// season of league "W".
type Season struct {
	Code         string
	Year         int
	EndDate      *time.Time
	PlayoffTeams int
}

// DivisionMapping assigns a team to a named division for one season. Older
// seasons used divisions that no longer exist, so the mapping is historical
// data rather than an attribute of the team.
type DivisionMapping struct {
	SeasonCode string
	TeamCode   string
	Division   string
}

// LeaguePrefix returns the leading non-digit characters of a season code.
// "W16" -> "W", "AAA3" -> "AAA". An all-digit code yields the empty string.
func LeaguePrefix(code string) string {
	code = strings.TrimSpace(code)
	for i, r := range code {
		if unicode.IsDigit(r) {
			return code[:i]
		}
	}
	return code
}

// LatestByPrefix groups seasons by league prefix and keeps the one with the
// highest sequence number per prefix.
func LatestByPrefix(seasons []Season) map[string]Season {
	out := make(map[string]Season, 4)
	for _, s := range seasons {
		prefix := LeaguePrefix(s.Code)
		if prefix == "" {
			continue
		}
		current, ok := out[prefix]
		if !ok || SequenceNumber(s.Code) > SequenceNumber(current.Code) {
			out[prefix] = s
		}
	}
	return out
}

// SequenceNumber returns the numeric suffix of a season code, or 0 when the
// code carries none.
func SequenceNumber(code string) int {
	code = strings.TrimSpace(code)
	start := len(code)
	for i, r := range code {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}

	out := 0
	for _, r := range code[start:] {
		if !unicode.IsDigit(r) {
			return 0
		}
		out = out*10 + int(r-'0')
	}
	return out
}
