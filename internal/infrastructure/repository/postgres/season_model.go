package postgres

import "time"

type seasonTableModel struct {
	Code         string     `db:"code"`
	Year         int        `db:"year"`
	EndDate      *time.Time `db:"end_date"`
	PlayoffTeams int        `db:"playoff_teams"`
}

type divisionMapTableModel struct {
	SeasonCode string `db:"season_code"`
	TeamCode   string `db:"team_code"`
	Division   string `db:"division"`
}
