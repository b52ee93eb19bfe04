package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/events"
	"github.com/priyanshu-101/cb-app-user/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeLeaveApplied forwards every leave application to HR.
func ConsumeLeaveApplied(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Notifier,
	logger *zap.Logger,
) {
	consume(ctx, reader, logger.Named("kafka.consumer.leave_applied"), func(msg kafkago.Message) (string, error) {
		var event events.LeaveAppliedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return "", err
		}
		text := fmt.Sprintf("Leave application #%d from %s: %s", event.LeaveID, event.EmployeeName, event.Reason)
		if event.AttachmentFile != nil {
			text += fmt.Sprintf(" (attachment: %s)", *event.AttachmentFile)
		}
		return text, nil
	}, notifier)
}

// ConsumeAttendanceMarked forwards check-ins to HR.
func ConsumeAttendanceMarked(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Notifier,
	logger *zap.Logger,
) {
	consume(ctx, reader, logger.Named("kafka.consumer.attendance_marked"), func(msg kafkago.Message) (string, error) {
		var event events.AttendanceMarkedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s checked in at %s on %s %s",
			event.EmployeeName, event.City, event.AttendanceDate, event.AttendanceTime), nil
	}, notifier)
}

// Notification attempts per message before it is given up.
const notifyAttempts = 3

var notifyBackoff = 2 * time.Second

// consume commits undecodable messages so they do not block the partition.
// A notification is tried notifyAttempts times; after that the message is
// logged and committed anyway, since a later commit would move the group
// offset past it regardless.
func consume(
	ctx context.Context,
	reader MessageReader,
	log *zap.Logger,
	render func(kafkago.Message) (string, error),
	notifier notification.Notifier,
) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		text, err := render(msg)
		if err != nil {
			log.Error("decode event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notifyWithRetry(ctx, notifier, text); err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("notify failed, skipping event",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Int("attempts", notifyAttempts),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
			continue
		}

		log.Info("event forwarded", zap.String("topic", msg.Topic), zap.Int64("offset", msg.Offset))
	}
}

func notifyWithRetry(ctx context.Context, notifier notification.Notifier, text string) error {
	var err error
	for attempt := 1; attempt <= notifyAttempts; attempt++ {
		if err = notifier.Notify(ctx, text); err == nil {
			return nil
		}
		if attempt == notifyAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(notifyBackoff * time.Duration(attempt)):
		}
	}
	return err
}
