package app

import (
	"context"
	"errors"
	"sync"

	"github.com/priyanshu-101/cb-app-user/internal/events"
	"github.com/priyanshu-101/cb-app-user/internal/messaging/kafka/consumer"
	"github.com/priyanshu-101/cb-app-user/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroupID = "cb-app-user-hr-notifications"

// RunConsumer forwards leave.applied and attendance.marked events to the HR
// channel until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	notifier := newNotifier(cfg, logger)

	leaveReader := newReader(cfg.KafkaBroker, events.LeaveAppliedTopic)
	defer leaveReader.Close()
	attendanceReader := newReader(cfg.KafkaBroker, events.AttendanceMarkedTopic)
	defer attendanceReader.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumeLeaveApplied(ctx, leaveReader, notifier, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeAttendanceMarked(ctx, attendanceReader, notifier, logger)
	}()

	wg.Wait()
	logger.Info("consumer shutting down")
	return nil
}

func newNotifier(cfg Config, logger *zap.Logger) notification.Notifier {
	if cfg.SlackToken == "" || cfg.SlackChannel == "" {
		logger.Info("SLACK_TOKEN or SLACK_CHANNEL not set, notifications go to the log")
		return notification.NewLogNotifier(logger)
	}
	return notification.NewSlackNotifier(cfg.SlackToken, cfg.SlackChannel)
}

func newReader(broker, topic string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        consumerGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}
