package postgres

import "database/sql"

type teamTableModel struct {
	Code       string         `db:"code"`
	Name       string         `db:"name"`
	Arena      sql.NullString `db:"arena"`
	LeagueCode sql.NullString `db:"league_code"`
}
