package leave

import (
	"context"
	"strings"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/events"
	leaveerrors "github.com/priyanshu-101/cb-app-user/internal/leave/errors"
	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	"github.com/priyanshu-101/cb-app-user/internal/shared/contextutil"
	"github.com/priyanshu-101/cb-app-user/internal/shared/filestore"

	"go.uber.org/zap"
)

const eventLeaveApplied = "leave.applied"

type Service interface {
	Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest, attachment *Attachment) (ApplyLeaveResponse, error)
	ListByEmployeeName(ctx context.Context, employeeName string) ([]LeaveResponse, error)
}

type service struct {
	repo      Repository
	files     filestore.Store
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(repo Repository, files filestore.Store, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(repo, files, nil, logger...)
}

func NewServiceWithPublisher(
	repo Repository,
	files filestore.Store,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{repo: repo, files: files, publisher: publisher, logger: l}
}

// Apply validates before touching the file store or the database, so a
// rejected request leaves no attachment and no row behind.
func (s *service) Apply(
	ctx context.Context,
	employeeID string,
	req ApplyLeaveRequest,
	attachment *Attachment,
) (ApplyLeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	reason := strings.TrimSpace(req.Reason)
	name := strings.TrimSpace(req.EmployeeName)
	if reason == "" || name == "" {
		return ApplyLeaveResponse{}, leaveerrors.ErrReasonAndNameRequired
	}

	var attachmentFile *string
	if attachment != nil {
		ref, err := s.files.Save(ctx, attachment.Filename, attachment.Body)
		if err != nil {
			log.Error("store leave attachment failed", zap.String("filename", attachment.Filename), zap.Error(err))
			return ApplyLeaveResponse{}, leaveerrors.SaveFailed(err)
		}
		attachmentFile = &ref
	}

	row := &LeaveApplication{
		Reason:         reason,
		AttachmentFile: attachmentFile,
		EmployeeName:   name,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		log.Error("insert leave application failed", zap.String("employee_name", name), zap.Error(err))
		return ApplyLeaveResponse{}, leaveerrors.SaveFailed(err)
	}

	event := events.LeaveAppliedEvent{
		EventType:      eventLeaveApplied,
		LeaveID:        row.LeaveID,
		EmployeeID:     employeeID,
		EmployeeName:   name,
		Reason:         reason,
		AttachmentFile: attachmentFile,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.publisher.PublishLeaveApplied(ctx, event); err != nil {
		log.Warn("publish leave.applied failed", zap.Uint64("leave_id", row.LeaveID), zap.Error(err))
	}

	log.Info("leave application saved", zap.Uint64("leave_id", row.LeaveID), zap.Bool("has_attachment", attachmentFile != nil))
	return ApplyLeaveResponse{
		Message:        "Application submitted successfully.",
		LeaveID:        row.LeaveID,
		AttachmentFile: attachmentFile,
	}, nil
}

func (s *service) ListByEmployeeName(ctx context.Context, employeeName string) ([]LeaveResponse, error) {
	rows, err := s.repo.FindByEmployeeName(ctx, employeeName)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list leave applications failed", zap.Error(err))
		return nil, apperror.Storage(err)
	}
	res := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		res[i] = LeaveResponse{
			LeaveID:        r.LeaveID,
			Reason:         r.Reason,
			AttachmentFile: r.AttachmentFile,
			EmployeeName:   r.EmployeeName,
			AppliedOn:      r.AppliedOn,
		}
	}
	return res, nil
}
