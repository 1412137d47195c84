package twitch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rinksidehq/rinkside/internal/platform/logging"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient:   server.Client(),
		AuthURL:      server.URL + "/oauth2/token",
		APIURL:       server.URL + "/helix",
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		Logger:       logging.NewNop(),
	})
	return client, server
}

func TestClient_CheckLive_TokenReusedWithinExpiry(t *testing.T) {
	t.Parallel()

	var tokenGrants, streamCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenGrants.Add(1)
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostForm.Get("grant_type") != "client_credentials" {
			t.Errorf("unexpected grant_type %q", r.PostForm.Get("grant_type"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600,"token_type":"bearer"}`))
	})
	mux.HandleFunc("GET /helix/streams", func(w http.ResponseWriter, r *http.Request) {
		streamCalls.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if got := r.Header.Get("Client-Id"); got != "test-client" {
			t.Errorf("unexpected client id header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"user_login":"alicetv","title":"game night","game_name":"NHL 95","viewer_count":7,"started_at":"2016-03-01T20:00:00Z"}]}`))
	})
	client, _ := newTestClient(t, mux)

	for i := 0; i < 3; i++ {
		got, err := client.CheckLive(context.Background(), []string{"AliceTV", "bobw"})
		if err != nil {
			t.Fatalf("CheckLive error: %v", err)
		}
		meta, ok := got["alicetv"]
		if !ok || meta.ViewerCount != 7 || meta.GameName != "NHL 95" {
			t.Fatalf("unexpected live map: %+v", got)
		}
		if _, ok := got["bobw"]; ok {
			t.Fatalf("bobw reported live: %+v", got)
		}
	}

	if grants := tokenGrants.Load(); grants != 1 {
		t.Fatalf("expected 1 token grant, got %d", grants)
	}
	if calls := streamCalls.Load(); calls != 3 {
		t.Fatalf("expected 3 stream lookups, got %d", calls)
	}
}

func TestClient_CheckLive_TokenRefreshedNearExpiry(t *testing.T) {
	t.Parallel()

	var tokenGrants atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, _ *http.Request) {
		tokenGrants.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":120,"token_type":"bearer"}`))
	})
	mux.HandleFunc("GET /helix/streams", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	client, _ := newTestClient(t, mux)

	current := time.Date(2016, 3, 1, 20, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return current }

	if _, err := client.CheckLive(context.Background(), []string{"alicetv"}); err != nil {
		t.Fatalf("CheckLive error: %v", err)
	}

	// 75s later the 120s token is inside the 60s slack window, so the next
	// call must fetch a fresh one.
	current = current.Add(75 * time.Second)
	if _, err := client.CheckLive(context.Background(), []string{"alicetv"}); err != nil {
		t.Fatalf("CheckLive error: %v", err)
	}

	if grants := tokenGrants.Load(); grants != 2 {
		t.Fatalf("expected 2 token grants, got %d", grants)
	}
}

func TestClient_CheckLive_MissingCredentials(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})

	_, err := client.CheckLive(context.Background(), []string{"alicetv"})
	if err == nil {
		t.Fatal("expected an error for missing credentials")
	}
}

func TestClient_CheckLive_UpstreamError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":3600,"token_type":"bearer"}`))
	})
	mux.HandleFunc("GET /helix/streams", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"Bad Request"}`, http.StatusBadRequest)
	})
	client, _ := newTestClient(t, mux)

	_, err := client.CheckLive(context.Background(), []string{"alicetv"})
	if err == nil {
		t.Fatal("expected an error for an upstream 400")
	}
}
