package postgres

import "database/sql"

type leagueTableModel struct {
	Code        string         `db:"code"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	IsDefault   bool           `db:"is_default"`
}
