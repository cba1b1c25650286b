package notification

import (
	"context"

	"github.com/rsvtravel/booking-engine/internal/domain/port/core"
	notifport "github.com/rsvtravel/booking-engine/internal/domain/port/notification"
)

// LogDispatcher writes domain events to the structured log. It stands in
// for a push/email channel in environments that do not have one wired.
type LogDispatcher struct {
	logger core.Logger
}

// NewLogDispatcher creates a dispatcher backed by the logger
func NewLogDispatcher(logger core.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

// Dispatch sends an event to a single recipient
func (d *LogDispatcher) Dispatch(ctx context.Context, recipientID uint64, event string, payload map[string]any) error {
	fields := map[string]any{
		"recipientId": recipientID,
		"event":       event,
	}
	for k, v := range payload {
		fields[k] = v
	}
	d.logger.Info("Dispatching notification", fields)
	return nil
}

// Broadcast sends an event to multiple recipients
func (d *LogDispatcher) Broadcast(ctx context.Context, recipientIDs []uint64, event string, payload map[string]any) error {
	for _, id := range recipientIDs {
		if err := d.Dispatch(ctx, id, event, payload); err != nil {
			return err
		}
	}
	return nil
}

var _ notifport.Dispatcher = (*LogDispatcher)(nil)
