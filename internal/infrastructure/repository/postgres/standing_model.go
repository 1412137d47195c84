package postgres

import "database/sql"

// goal_diff is also stored but deliberately not read; the domain model
// derives it from the goal columns.
type standingTableModel struct {
	SeasonCode   string         `db:"season_code"`
	TeamCode     string         `db:"team_code"`
	Coach        string         `db:"coach"`
	GamesPlayed  int            `db:"games_played"`
	Wins         int            `db:"wins"`
	Losses       int            `db:"losses"`
	Ties         int            `db:"ties"`
	OTLosses     int            `db:"ot_losses"`
	Points       int            `db:"points"`
	GoalsFor     int            `db:"goals_for"`
	GoalsAgainst int            `db:"goals_against"`
	Rank         int            `db:"rank"`
	GoalDiff     sql.NullInt64  `db:"goal_diff"`
	Division     sql.NullString `db:"division"`
}
