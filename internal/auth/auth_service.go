package auth

import (
	"context"

	autherrors "github.com/priyanshu-101/cb-app-user/internal/auth/errors"
	"github.com/priyanshu-101/cb-app-user/internal/employee"
	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	"github.com/priyanshu-101/cb-app-user/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

type service struct {
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employeeRepo: employeeRepo, logger: l}
}

// Login is an exact match on email and the clear-text password column.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	e, err := s.employeeRepo.FindByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		log.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, apperror.Storage(err)
	}
	if e == nil {
		log.Info("login rejected", zap.String("email", req.Email))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	return LoginResponse{
		Success:  true,
		Employee: employee.MapToResponse(*e),
	}, nil
}
