package team

import "fmt"

// Team is a franchise playing in one of the leagues, keyed by its
// abbreviation (the same code the standings and games tables use).
type Team struct {
	Code       string
	Name       string
	Arena      string
	LeagueCode string
}

func (t Team) Validate() error {
	if t.Code == "" {
		return fmt.Errorf("team code is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
