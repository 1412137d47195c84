package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rinksidehq/rinkside/internal/domain/event"
	"github.com/rinksidehq/rinkside/internal/platform/cache"
)

type stubEventLister struct {
	calls atomic.Int32
	items []event.Event
	err   error
}

func (s *stubEventLister) ListScheduledEvents(_ context.Context) ([]event.Event, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func TestEventService_List_CachedWithinTTL(t *testing.T) {
	t.Parallel()

	lister := &stubEventLister{
		items: []event.Event{
			{ID: "1", Name: "Draft Night", Status: "SCHEDULED"},
		},
	}
	service := NewEventService(lister, cache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		got, err := service.List(context.Background())
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Draft Night" {
			t.Fatalf("unexpected events: %+v", got)
		}
	}
	if calls := lister.calls.Load(); calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls)
	}
}

func TestEventService_List_UpstreamFailure(t *testing.T) {
	t.Parallel()

	lister := &stubEventLister{err: errors.New("discord down")}
	service := NewEventService(lister, cache.NewStore(time.Minute))

	_, err := service.List(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
