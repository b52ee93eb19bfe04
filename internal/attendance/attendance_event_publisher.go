package attendance

import (
	"context"

	"github.com/priyanshu-101/cb-app-user/internal/events"
)

//go:generate mockgen -source=attendance_event_publisher.go -destination=mock/attendance_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishAttendanceMarked(ctx context.Context, event events.AttendanceMarkedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishAttendanceMarked(context.Context, events.AttendanceMarkedEvent) error {
	return nil
}
