package stream

// Metadata is the live-broadcast detail returned by the streaming provider
// for a channel that is currently live.
type Metadata struct {
	Title       string
	GameName    string
	ViewerCount int
	StartedAt   string
	ThumbnailURL string
}

// Status is one manager's live-or-not row as served by the streams endpoint.
type Status struct {
	Username  string
	CoachName string
	IsLive    bool
	Live      *Metadata
}
