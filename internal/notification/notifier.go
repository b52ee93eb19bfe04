package notification

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

type SlackNotifier struct {
	client    *slack.Client
	channelID string
}

func NewSlackNotifier(token, channelID string, options ...slack.Option) *SlackNotifier {
	return &SlackNotifier{
		client:    slack.New(token, options...),
		channelID: channelID,
	}
}

func (s *SlackNotifier) Notify(ctx context.Context, message string) error {
	_, _, err := s.client.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

// LogNotifier is used when no Slack token is configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger ...*zap.Logger) *LogNotifier {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log")
	}
	return &LogNotifier{logger: l}
}

func (n *LogNotifier) Notify(_ context.Context, message string) error {
	n.logger.Info("notification", zap.String("message", message))
	return nil
}
