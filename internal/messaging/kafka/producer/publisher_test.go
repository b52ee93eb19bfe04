package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type recordingWriter struct {
	msgs []kafkago.Message
	err  error
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func TestPublisher_PublishAttendanceMarked(t *testing.T) {
	w := &recordingWriter{}
	p := NewPublisher(w)

	event := events.AttendanceMarkedEvent{
		EventType:    "attendance.marked",
		AttendanceID: 7,
		EmployeeID:   "42",
		EmployeeName: "Asha Rao",
		City:         "Site A",
		OccurredAt:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	err := p.PublishAttendanceMarked(context.Background(), event)
	assert.NoError(t, err)
	assert.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, events.AttendanceMarkedTopic, msg.Topic)
	assert.Equal(t, "Asha Rao", string(msg.Key))
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "attendance.marked", string(msg.Headers[0].Value))

	var decoded events.AttendanceMarkedEvent
	assert.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestPublisher_PublishLeaveApplied_WriterError(t *testing.T) {
	w := &recordingWriter{err: errors.New("leader not available")}
	p := NewPublisher(w)

	err := p.PublishLeaveApplied(context.Background(), events.LeaveAppliedEvent{EventType: "leave.applied", EmployeeName: "Asha Rao"})
	assert.EqualError(t, err, "leader not available")
	assert.Equal(t, events.LeaveAppliedTopic, w.msgs[0].Topic)
}
