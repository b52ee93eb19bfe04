package leave

import (
	"context"

	"github.com/priyanshu-101/cb-app-user/internal/events"
)

//go:generate mockgen -source=leave_event_publisher.go -destination=mock/leave_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishLeaveApplied(ctx context.Context, event events.LeaveAppliedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishLeaveApplied(context.Context, events.LeaveAppliedEvent) error {
	return nil
}
