package attendance

import (
	"context"
	"time"

	attendanceerrors "github.com/priyanshu-101/cb-app-user/internal/attendance/errors"
	"github.com/priyanshu-101/cb-app-user/internal/events"
	"github.com/priyanshu-101/cb-app-user/internal/leave"
	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	"github.com/priyanshu-101/cb-app-user/internal/shared/contextutil"

	"go.uber.org/zap"
)

const eventAttendanceMarked = "attendance.marked"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, employeeID string, req MarkAttendanceRequest) (MarkAttendanceResponse, error)
	View(ctx context.Context, employeeName, status string) (ViewResult, error)
}

// LeaveLister is the slice of the leave service the "On Leave" view reads.
type LeaveLister interface {
	ListByEmployeeName(ctx context.Context, employeeName string) ([]leave.LeaveResponse, error)
}

type service struct {
	repo      Repository
	leaves    LeaveLister
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(repo Repository, leaves LeaveLister, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(repo, leaves, nil, logger...)
}

func NewServiceWithPublisher(
	repo Repository,
	leaves LeaveLister,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{repo: repo, leaves: leaves, publisher: publisher, logger: l}
}

// Mark stores the row as sent. Fields are not validated.
func (s *service) Mark(ctx context.Context, employeeID string, req MarkAttendanceRequest) (MarkAttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	row := &Attendance{
		EmployeeName:      req.EmployeeName,
		EmployeePhoto:     req.EmployeePhoto,
		AttendanceDate:    req.AttendanceDate,
		AttendanceTime:    req.AttendanceTime,
		LocationLatitude:  req.LocationLatitude,
		LocationLongitude: req.LocationLongitude,
		City:              req.City,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		log.Error("insert attendance failed", zap.String("employee_name", req.EmployeeName), zap.Error(err))
		return MarkAttendanceResponse{}, attendanceerrors.MarkFailed(err)
	}

	event := events.AttendanceMarkedEvent{
		EventType:      eventAttendanceMarked,
		AttendanceID:   row.ID,
		EmployeeID:     employeeID,
		EmployeeName:   row.EmployeeName,
		City:           row.City,
		AttendanceDate: row.AttendanceDate,
		AttendanceTime: row.AttendanceTime,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.publisher.PublishAttendanceMarked(ctx, event); err != nil {
		log.Warn("publish attendance.marked failed", zap.Uint64("attendance_id", row.ID), zap.Error(err))
	}

	log.Info("attendance marked", zap.Uint64("attendance_id", row.ID), zap.String("city", row.City))
	return MarkAttendanceResponse{Message: "Attendance marked successfully", ID: row.ID}, nil
}

func (s *service) View(ctx context.Context, employeeName, status string) (ViewResult, error) {
	switch status {
	case StatusOnLeave:
		leaves, err := s.leaves.ListByEmployeeName(ctx, employeeName)
		if err != nil {
			return ViewResult{}, err
		}
		return ViewResult{Status: status, Leaves: leaves}, nil
	case StatusPresent:
		rows, err := s.repo.FindByEmployeeName(ctx, employeeName)
		if err != nil {
			contextutil.GetLogger(ctx, s.logger).Error("list attendance failed", zap.Error(err))
			return ViewResult{}, apperror.Storage(err)
		}
		res := make([]AttendanceResponse, len(rows))
		for i, r := range rows {
			res[i] = MapToResponse(r)
		}
		return ViewResult{Status: status, Attendance: res}, nil
	default:
		return ViewResult{}, attendanceerrors.ErrInvalidStatus
	}
}
