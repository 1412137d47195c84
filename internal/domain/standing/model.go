package standing

// Standing is one team's league-table row for one season, as stored by the
// out-of-band data-entry process. Goal differential and points percentage are
// always recomputed here rather than trusted from storage.
type Standing struct {
	SeasonCode   string
	TeamCode     string
	Coach        string
	GamesPlayed  int
	Wins         int
	Losses       int
	Ties         int
	OTLosses     int
	Points       int
	GoalsFor     int
	GoalsAgainst int
	Rank         int
	Division     string
}

// GoalDifferential is always derived from the goal columns, never read from
// the stored row.
func (s Standing) GoalDifferential() int {
	return s.GoalsFor - s.GoalsAgainst
}

// PointsPct returns points earned over points available (two per game). The
// second return is false when the team has not played, in which case callers
// render a placeholder instead of a number.
func (s Standing) PointsPct() (float64, bool) {
	if s.GamesPlayed <= 0 {
		return 0, false
	}
	return float64(s.Points) / float64(2*s.GamesPlayed), true
}
