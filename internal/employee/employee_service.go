package employee

import (
	"context"
	"strconv"
	"strings"

	employeeerrors "github.com/priyanshu-101/cb-app-user/internal/employee/errors"
	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	"github.com/priyanshu-101/cb-app-user/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	GetProfile(ctx context.Context, id string) (ProfileResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

// ParseID validates an employee id taken from a route param.
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, employeeerrors.ErrInvalidEmployeeID
	}
	return id, nil
}

func (s *service) GetProfile(ctx context.Context, rawID string) (ProfileResponse, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return ProfileResponse{}, err
	}

	name, err := s.repo.FindNameByID(ctx, id)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("get profile failed", zap.Uint64("employee_id", id), zap.Error(err))
		return ProfileResponse{}, apperror.Storage(err)
	}
	if name == nil {
		return ProfileResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return ProfileResponse{EmployeeName: *name}, nil
}

func (s *service) GetByID(ctx context.Context, rawID string) (EmployeeResponse, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("get employee failed", zap.Uint64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, apperror.Storage(err)
	}
	if e == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return MapToResponse(*e), nil
}
