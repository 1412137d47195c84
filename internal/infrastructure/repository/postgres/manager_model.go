package postgres

import "database/sql"

type managerTableModel struct {
	Name            string         `db:"name"`
	DiscordID       sql.NullString `db:"discord_id"`
	DiscordUsername sql.NullString `db:"discord_username"`
	TwitchUsername  sql.NullString `db:"twitch_username"`
	YouTubeURL      sql.NullString `db:"youtube_url"`
}

type championshipTableModel struct {
	Coach string `db:"coach"`
	Label string `db:"label"`
}
