package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mwhite7112/woodpantry-dictlookup/internal/clients"
	"github.com/mwhite7112/woodpantry-dictlookup/internal/events"
)

// LookupService runs dictionary lookups and reports each one as a
// dictionary.looked_up event.
type LookupService struct {
	lookuper  Lookuper
	publisher EventPublisher
}

// NewLookupService builds the service. publisher may be nil, in which case
// no events are emitted.
func NewLookupService(lookuper Lookuper, publisher EventPublisher) *LookupService {
	return &LookupService{lookuper: lookuper, publisher: publisher}
}

// Lookup returns the lookuper's result unchanged. Event publishing never
// affects it.
func (s *LookupService) Lookup(ctx context.Context, word string) (string, error) {
	definition, err := s.lookuper.Lookup(ctx, word)
	s.publish(ctx, word, err)
	return definition, err
}

func (s *LookupService) publish(ctx context.Context, word string, lookupErr error) {
	if s.publisher == nil {
		return
	}

	outcome := events.OutcomeOK
	status := 0
	if lookupErr != nil {
		kind := clients.KindOf(lookupErr)
		switch kind {
		case clients.KindInvalidInput:
			return
		case "":
			outcome = "error"
		default:
			outcome = string(kind)
		}
		var le *clients.LookupError
		if errors.As(lookupErr, &le) {
			status = le.Status
		}
	}

	event := events.NewLookupEvent(strings.TrimSpace(word), outcome, status)
	if err := s.publisher.PublishLookup(ctx, event); err != nil {
		slog.Warn("publish lookup event failed", "word", event.Word, "event_id", event.EventID, "error", err)
	}
}
