package postgres

import "database/sql"

type gameTableModel struct {
	SeasonCode string         `db:"season_code"`
	GameNumber int            `db:"game_number"`
	HomeTeam   string         `db:"home_team"`
	AwayTeam   string         `db:"away_team"`
	HomeScore  sql.NullInt64  `db:"home_score"`
	AwayScore  sql.NullInt64  `db:"away_score"`
	HomeResult sql.NullString `db:"home_result"`
	AwayResult sql.NullString `db:"away_result"`
	Overtime   bool           `db:"overtime"`
	Mode       string         `db:"mode"`
}
