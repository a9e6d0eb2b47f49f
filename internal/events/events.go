package events

import (
	"context"
	"time"
)

const (
	SourceService = "learning-service"
	EventVersion  = "1.0"
)

// Event types published by the service.
const (
	QuizResultRecorded = "quiz.result.recorded"
	ModuleCompleted    = "progress.module.completed"
)

// Event is the envelope for every domain event.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// QuizResultEvent is the payload for QuizResultRecorded.
type QuizResultEvent struct {
	ResultID      uint `json:"result_id"`
	UserID        uint `json:"user_id"`
	ModuleID      uint `json:"module_id"`
	Score         int  `json:"score"`
	QuestionCount int  `json:"question_count"`
}

// ModuleCompletedEvent is the payload for ModuleCompleted.
type ModuleCompletedEvent struct {
	UserID    uint `json:"user_id"`
	ModuleID  uint `json:"module_id"`
	TimeSpent int  `json:"time_spent"`
}

// EventPublisher publishes domain events. Implementations must be safe to
// call from request handlers; publishing failures are logged, not
// propagated to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
