package player

// Player is the canonical identity row a player keeps across seasons; all
// year-by-year ratings hang off this id.
type Player struct {
	ID   int64
	Name string
}

// Ratings are the per-skill grades a player carries for one year, each on
// the league's 0-9 scale.
type Ratings struct {
	Speed        int
	Agility      int
	Shooting     int
	Accuracy     int
	Passing      int
	Puckhandling int
	Checking     int
	Defense      int
	Faceoffs     int
	Endurance    int
	Discipline   int
	Poise        int
	Strength     int
	Goaltending  int
}

// SeasonAttributes is one player's rating sheet for one year. TeamCode links
// the player to the roster he was rated on that year; rows for years after a
// selected season are served separately as roster projections.
type SeasonAttributes struct {
	PlayerID   int64
	Year       int
	TeamCode   string
	Position   string
	Handedness string
	Ratings    Ratings
	Overall    int
	Stars      float64
}
