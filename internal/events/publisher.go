package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// GoChannelPublisher publishes events over an in-process watermill
// pub/sub. The store is single-process, so no external broker is
// involved; subscribers run in the same process.
type GoChannelPublisher struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

func NewGoChannelPublisher(logger *slog.Logger) *GoChannelPublisher {
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, watermill.NewSlogLogger(logger))

	return &GoChannelPublisher{
		pubSub: pubSub,
		logger: logger,
	}
}

// NewEvent fills in the envelope around a payload.
func NewEvent(eventType string, data interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    SourceService,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

func (p *GoChannelPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("type", event.Type)
	msg.SetContext(ctx)

	if err := p.pubSub.Publish(event.Type, msg); err != nil {
		return fmt.Errorf("publish event %s: %w", event.Type, err)
	}
	return nil
}

// Subscribe returns the message stream for one event type.
func (p *GoChannelPublisher) Subscribe(ctx context.Context, eventType string) (<-chan *message.Message, error) {
	return p.pubSub.Subscribe(ctx, eventType)
}

func (p *GoChannelPublisher) Close() error {
	return p.pubSub.Close()
}
