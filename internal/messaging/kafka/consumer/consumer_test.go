package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/events"
	notificationMock "github.com/priyanshu-101/cb-app-user/internal/notification/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// scriptedReader hands out queued messages, then cancels the context so the
// consumer loop exits.
type scriptedReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func fastRetries(t *testing.T) {
	prev := notifyBackoff
	notifyBackoff = time.Millisecond
	t.Cleanup(func() { notifyBackoff = prev })
}

func TestConsumeLeaveApplied(t *testing.T) {
	fastRetries(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attachment := "uploads/1717000000123-3b2f6c1e-8d4a-4f7e-9c21-5a0d7e9b4c10.pdf"
	good, _ := json.Marshal(events.LeaveAppliedEvent{LeaveID: 3, EmployeeName: "Asha Rao", Reason: "fever", AttachmentFile: &attachment})
	failing, _ := json.Marshal(events.LeaveAppliedEvent{LeaveID: 4, EmployeeName: "Ravi", Reason: "travel"})

	ctx, cancel := context.WithCancel(context.Background())
	reader := &scriptedReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 1, Value: good},
			{Offset: 2, Value: []byte("not json")},
			{Offset: 3, Value: failing},
		},
	}

	notifier := notificationMock.NewMockNotifier(ctrl)
	notifier.EXPECT().
		Notify(gomock.Any(), "Leave application #3 from Asha Rao: fever (attachment: uploads/1717000000123-3b2f6c1e-8d4a-4f7e-9c21-5a0d7e9b4c10.pdf)").
		Return(nil)
	notifier.EXPECT().
		Notify(gomock.Any(), "Leave application #4 from Ravi: travel").
		Return(errors.New("slack down")).
		Times(notifyAttempts)

	ConsumeLeaveApplied(ctx, reader, notifier, zap.NewNop())

	// offset 3 exhausted its retries and is committed so the group moves on
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}

func TestConsume_NotifyRecoversOnRetry(t *testing.T) {
	fastRetries(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload, _ := json.Marshal(events.LeaveAppliedEvent{LeaveID: 5, EmployeeName: "Meera", Reason: "wedding"})

	ctx, cancel := context.WithCancel(context.Background())
	reader := &scriptedReader{cancel: cancel, msgs: []kafkago.Message{{Offset: 7, Value: payload}}}

	notifier := notificationMock.NewMockNotifier(ctrl)
	gomock.InOrder(
		notifier.EXPECT().Notify(gomock.Any(), "Leave application #5 from Meera: wedding").Return(errors.New("rate_limited")),
		notifier.EXPECT().Notify(gomock.Any(), "Leave application #5 from Meera: wedding").Return(nil),
	)

	ConsumeLeaveApplied(ctx, reader, notifier, zap.NewNop())

	assert.Equal(t, []int64{7}, reader.committed)
}

func TestConsumeAttendanceMarked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload, _ := json.Marshal(events.AttendanceMarkedEvent{
		EmployeeName:   "Asha Rao",
		City:           "Site A",
		AttendanceDate: "2024-05-01",
		AttendanceTime: "09:02:11",
	})

	ctx, cancel := context.WithCancel(context.Background())
	reader := &scriptedReader{cancel: cancel, msgs: []kafkago.Message{{Offset: 10, Value: payload}}}

	notifier := notificationMock.NewMockNotifier(ctrl)
	notifier.EXPECT().
		Notify(gomock.Any(), "Asha Rao checked in at Site A on 2024-05-01 09:02:11").
		Return(nil)

	ConsumeAttendanceMarked(ctx, reader, notifier, zap.NewNop())

	assert.Equal(t, []int64{10}, reader.committed)
}
