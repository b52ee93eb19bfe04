package auth_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/priyanshu-101/cb-app-user/internal/auth"
	autherrors "github.com/priyanshu-101/cb-app-user/internal/auth/errors"
	"github.com/priyanshu-101/cb-app-user/internal/employee"
	employeeMock "github.com/priyanshu-101/cb-app-user/internal/employee/mock"
	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployeeRepo := employeeMock.NewMockRepository(ctrl)
	service := auth.NewService(mockEmployeeRepo, zap.NewNop())
	ctx := context.Background()

	t.Run("Success Login", func(t *testing.T) {
		mockEmployeeRepo.EXPECT().
			FindByCredentials(ctx, "asha@cb.in", "s3cret").
			Return(&employee.Employee{EmployeeID: 42, EmployeeName: "Asha Rao", EmailAddress: "asha@cb.in", Password: "s3cret"}, nil)

		resp, err := service.Login(ctx, auth.LoginRequest{Email: "asha@cb.in", Password: "s3cret"})

		assert.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, uint64(42), resp.Employee.EmployeeID)
		assert.Equal(t, "asha@cb.in", resp.Employee.EmailAddress)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockEmployeeRepo.EXPECT().
			FindByCredentials(ctx, "asha@cb.in", "wrongpass").
			Return(nil, nil)

		resp, err := service.Login(ctx, auth.LoginRequest{Email: "asha@cb.in", Password: "wrongpass"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
		assert.False(t, resp.Success)
		assert.Zero(t, resp.Employee)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockEmployeeRepo.EXPECT().
			FindByCredentials(ctx, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("Table 'cb_app.employee' doesn't exist"))

		_, err := service.Login(ctx, auth.LoginRequest{Email: "a", Password: "b"})
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Table 'cb_app.employee' doesn't exist", httpErr.Message)
	})
}
