package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rinksidehq/rinkside/internal/platform/logging"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		BotToken:   "bot-token",
		GuildID:    "guild-1",
		Logger:     logging.NewNop(),
	})
}

func TestClient_ListScheduledEvents(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /guilds/guild-1/scheduled-events", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bot bot-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"11","guild_id":"guild-1","name":"Draft Night","scheduled_start_time":"2016-03-05T01:00:00Z","status":1},
			{"id":"12","guild_id":"guild-1","name":"Cup Final Watch","scheduled_start_time":"2016-03-06T01:00:00Z","status":2}
		]`))
	})
	client := newTestClient(t, mux)

	got, err := client.ListScheduledEvents(context.Background())
	if err != nil {
		t.Fatalf("ListScheduledEvents error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].ID != "11" || got[0].Name != "Draft Night" || got[0].Status != "SCHEDULED" {
		t.Fatalf("unexpected first event: %+v", got[0])
	}
	if got[0].URL != "https://discord.com/events/guild-1/11" {
		t.Fatalf("unexpected event url: %q", got[0].URL)
	}
	if got[1].Status != "ACTIVE" {
		t.Fatalf("unexpected second status: %q", got[1].Status)
	}
}

func TestClient_ListScheduledEvents_MissingCredentials(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})

	_, err := client.ListScheduledEvents(context.Background())
	if err == nil {
		t.Fatal("expected an error for missing credentials")
	}
}

func TestClient_ListScheduledEvents_UpstreamError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /guilds/guild-1/scheduled-events", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Missing Access"}`, http.StatusForbidden)
	})
	client := newTestClient(t, mux)

	_, err := client.ListScheduledEvents(context.Background())
	if err == nil {
		t.Fatal("expected an error for an upstream 403")
	}
}
