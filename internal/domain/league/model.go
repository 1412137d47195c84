package league

import "fmt"

// League is one of the portal's hockey leagues. Its code is the alphabetic
// prefix shared by every season code the league has played (e.g. "W" for
// seasons "W15", "W16").
type League struct {
	Code        string
	Name        string
	Description string
	IsDefault   bool
}

func (l League) Validate() error {
	if l.Code == "" {
		return fmt.Errorf("league code is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}
