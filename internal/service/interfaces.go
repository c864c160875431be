package service

import (
	"context"

	"github.com/mwhite7112/woodpantry-dictlookup/internal/events"
)

// Lookuper abstracts the dictionary client for testing.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (string, error)
}

// EventPublisher abstracts the lookup event publisher for testing.
type EventPublisher interface {
	PublishLookup(ctx context.Context, event events.LookupEvent) error
}
