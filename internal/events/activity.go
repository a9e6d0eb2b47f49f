package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
)

// ActivityLogger consumes domain events and writes them to the activity
// log. It is the only in-process subscriber; a deployment that grows a
// real notification pipeline would add subscribers next to it.
type ActivityLogger struct {
	publisher *GoChannelPublisher
	logger    *slog.Logger
}

func NewActivityLogger(publisher *GoChannelPublisher, logger *slog.Logger) *ActivityLogger {
	return &ActivityLogger{publisher: publisher, logger: logger}
}

// Run subscribes to all event types and logs until ctx is cancelled.
func (a *ActivityLogger) Run(ctx context.Context) error {
	for _, eventType := range []string{QuizResultRecorded, ModuleCompleted} {
		messages, err := a.publisher.Subscribe(ctx, eventType)
		if err != nil {
			return err
		}
		go a.consume(messages)
	}
	return nil
}

func (a *ActivityLogger) consume(messages <-chan *message.Message) {
	for msg := range messages {
		var event Event
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			a.logger.Error("failed to decode activity event", "error", err)
			msg.Ack()
			continue
		}
		a.logger.Info("activity",
			"event_type", event.Type,
			"event_id", event.ID,
			"timestamp", event.Timestamp)
		msg.Ack()
	}
}
