package leave_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/priyanshu-101/cb-app-user/internal/events"
	"github.com/priyanshu-101/cb-app-user/internal/leave"
	leaveerrors "github.com/priyanshu-101/cb-app-user/internal/leave/errors"
	leaveMock "github.com/priyanshu-101/cb-app-user/internal/leave/mock"
	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	filestoreMock "github.com/priyanshu-101/cb-app-user/internal/shared/filestore/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type leaveServiceDeps struct {
	service   leave.Service
	repo      *leaveMock.MockRepository
	files     *filestoreMock.MockStore
	publisher *leaveMock.MockEventPublisher
}

func setupLeaveServiceTest(t *testing.T) leaveServiceDeps {
	ctrl := gomock.NewController(t)
	deps := leaveServiceDeps{
		repo:      leaveMock.NewMockRepository(ctrl),
		files:     filestoreMock.NewMockStore(ctrl),
		publisher: leaveMock.NewMockEventPublisher(ctrl),
	}
	deps.service = leave.NewServiceWithPublisher(deps.repo, deps.files, deps.publisher, zap.NewNop())
	return deps
}

func TestLeaveService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("missing reason or name is rejected before any write", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		deps.publisher.EXPECT().PublishLeaveApplied(gomock.Any(), gomock.Any()).Times(0)

		cases := []leave.ApplyLeaveRequest{
			{Reason: "", EmployeeName: "Asha Rao"},
			{Reason: "fever", EmployeeName: ""},
			{Reason: "   ", EmployeeName: "Asha Rao"},
			{},
		}
		for _, req := range cases {
			attachment := &leave.Attachment{Filename: "note.pdf", Body: strings.NewReader("x")}
			_, err := deps.service.Apply(ctx, "42", req, attachment)
			assert.ErrorIs(t, err, leaveerrors.ErrReasonAndNameRequired)
			assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
		}
	})

	t.Run("with attachment", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		body := strings.NewReader("%PDF")

		gomock.InOrder(
			deps.files.EXPECT().Save(ctx, "note.pdf", body).Return("uploads/1717000000123-3b2f6c1e-8d4a-4f7e-9c21-5a0d7e9b4c10.pdf", nil),
			deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *leave.LeaveApplication) error {
				assert.Equal(t, "fever", l.Reason)
				assert.Equal(t, "Asha Rao", l.EmployeeName)
				assert.Equal(t, "uploads/1717000000123-3b2f6c1e-8d4a-4f7e-9c21-5a0d7e9b4c10.pdf", *l.AttachmentFile)
				l.LeaveID = 11
				return nil
			}),
			deps.publisher.EXPECT().PublishLeaveApplied(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e events.LeaveAppliedEvent) error {
				assert.Equal(t, "leave.applied", e.EventType)
				assert.Equal(t, uint64(11), e.LeaveID)
				assert.Equal(t, "42", e.EmployeeID)
				return nil
			}),
		)

		resp, err := deps.service.Apply(ctx, "42", leave.ApplyLeaveRequest{Reason: " fever ", EmployeeName: "Asha Rao"},
			&leave.Attachment{Filename: "note.pdf", Body: body})
		assert.NoError(t, err)
		assert.Equal(t, "Application submitted successfully.", resp.Message)
		assert.Equal(t, uint64(11), resp.LeaveID)
	})

	t.Run("without attachment skips the file store", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *leave.LeaveApplication) error {
			assert.Nil(t, l.AttachmentFile)
			return nil
		})
		deps.publisher.EXPECT().PublishLeaveApplied(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Apply(ctx, "42", leave.ApplyLeaveRequest{Reason: "travel", EmployeeName: "Ravi"}, nil)
		assert.NoError(t, err)
	})

	t.Run("insert failure keeps the historical message", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("Data too long for column 'reason'"))
		deps.publisher.EXPECT().PublishLeaveApplied(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Apply(ctx, "42", leave.ApplyLeaveRequest{Reason: "x", EmployeeName: "Ravi"}, nil)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Failed to save application: Data too long for column 'reason'", httpErr.Message)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.publisher.EXPECT().PublishLeaveApplied(ctx, gomock.Any()).Return(errors.New("kafka down"))

		resp, err := deps.service.Apply(ctx, "42", leave.ApplyLeaveRequest{Reason: "x", EmployeeName: "Ravi"}, nil)
		assert.NoError(t, err)
		assert.Equal(t, "Application submitted successfully.", resp.Message)
	})
}

func TestLeaveService_ListByEmployeeName(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t)

	deps.repo.EXPECT().FindByEmployeeName(ctx, "Asha Rao").Return([]leave.LeaveApplication{
		{LeaveID: 1, Reason: "fever", EmployeeName: "Asha Rao"},
	}, nil)

	resp, err := deps.service.ListByEmployeeName(ctx, "Asha Rao")
	assert.NoError(t, err)
	assert.Equal(t, []leave.LeaveResponse{{LeaveID: 1, Reason: "fever", EmployeeName: "Asha Rao"}}, resp)
}
