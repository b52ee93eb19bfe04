package producer

import (
	"context"
	"encoding/json"

	"github.com/priyanshu-101/cb-app-user/internal/events"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is satisfied by *kafkago.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Publisher writes domain events straight to kafka. It implements the
// EventPublisher interfaces of the attendance and leave modules.
type Publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) PublishAttendanceMarked(ctx context.Context, event events.AttendanceMarkedEvent) error {
	return p.publish(ctx, events.AttendanceMarkedTopic, event.EmployeeName, event.EventType, event)
}

func (p *Publisher) PublishLeaveApplied(ctx context.Context, event events.LeaveAppliedEvent) error {
	return p.publish(ctx, events.LeaveAppliedTopic, event.EmployeeName, event.EventType, event)
}

func (p *Publisher) publish(ctx context.Context, topic, key, eventType string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
}
