package event

// Event is a scheduled community event proxied from the chat platform. The
// upstream payload is treated as opaque beyond these fields.
type Event struct {
	ID        string
	Name      string
	URL       string
	StartTime string
	Status    string
}
