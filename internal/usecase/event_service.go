package usecase

import (
	"context"
	"fmt"

	"github.com/rinksidehq/rinkside/internal/domain/event"
	"github.com/rinksidehq/rinkside/internal/platform/cache"
)

const eventsCacheKey = "events:scheduled"

// EventLister fetches the community's scheduled events from the chat
// platform.
type EventLister interface {
	ListScheduledEvents(ctx context.Context) ([]event.Event, error)
}

type EventService struct {
	lister EventLister
	cache  *cache.Store
}

func NewEventService(lister EventLister, store *cache.Store) *EventService {
	return &EventService{
		lister: lister,
		cache:  store,
	}
}

// List returns the scheduled events, served from the TTL cache.
func (s *EventService) List(ctx context.Context) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.List")
	defer span.End()

	value, err := s.cache.GetOrLoad(ctx, eventsCacheKey, func(ctx context.Context) (any, error) {
		items, loadErr := s.lister.ListScheduledEvents(ctx)
		if loadErr != nil {
			return nil, fmt.Errorf("%w: list scheduled events: %v", ErrDependencyUnavailable, loadErr)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	items, ok := value.([]event.Event)
	if !ok {
		return nil, fmt.Errorf("unexpected cache payload %T", value)
	}
	return items, nil
}
