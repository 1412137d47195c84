package postgres

import "database/sql"

type playerTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type playerAttributesTableModel struct {
	PlayerID     int64          `db:"player_id"`
	Year         int            `db:"year"`
	TeamCode     sql.NullString `db:"team_code"`
	Position     sql.NullString `db:"position"`
	Handedness   sql.NullString `db:"handedness"`
	Speed        int            `db:"speed"`
	Agility      int            `db:"agility"`
	Shooting     int            `db:"shooting"`
	Accuracy     int            `db:"accuracy"`
	Passing      int            `db:"passing"`
	Puckhandling int            `db:"puckhandling"`
	Checking     int            `db:"checking"`
	Defense      int            `db:"defense"`
	Faceoffs     int            `db:"faceoffs"`
	Endurance    int            `db:"endurance"`
	Discipline   int            `db:"discipline"`
	Poise        int            `db:"poise"`
	Strength     int            `db:"strength"`
	Goaltending  int            `db:"goaltending"`
	Overall      int            `db:"overall"`
	Stars        float64        `db:"stars"`
}
