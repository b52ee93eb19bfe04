package employee_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/priyanshu-101/cb-app-user/internal/employee"
	employeeerrors "github.com/priyanshu-101/cb-app-user/internal/employee/errors"
	employeeMock "github.com/priyanshu-101/cb-app-user/internal/employee/mock"
	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupServiceTest(t *testing.T) (employee.Service, *employeeMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	return employee.NewService(repo, zap.NewNop()), repo
}

func TestEmployeeService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		name := "Asha Rao"
		repo.EXPECT().FindNameByID(ctx, uint64(42)).Return(&name, nil)

		resp, err := svc.GetProfile(ctx, "42")
		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", resp.EmployeeName)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindNameByID(ctx, uint64(7)).Return(nil, nil)

		_, err := svc.GetProfile(ctx, "7")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id never reaches the repository", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindNameByID(gomock.Any(), gomock.Any()).Times(0)

		for _, raw := range []string{"", "abc", "0", "-1", "4.2"} {
			_, err := svc.GetProfile(ctx, raw)
			assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID, raw)
		}
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success hides password", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, uint64(42)).Return(&employee.Employee{
			EmployeeID:   42,
			EmployeeName: "Asha Rao",
			EmailAddress: "asha@cb.in",
			Password:     "s3cret",
		}, nil)

		resp, err := svc.GetByID(ctx, "42")
		assert.NoError(t, err)
		assert.Equal(t, employee.EmployeeResponse{EmployeeID: 42, EmployeeName: "Asha Rao", EmailAddress: "asha@cb.in"}, resp)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, uint64(9)).Return(nil, nil)

		_, err := svc.GetByID(ctx, "9")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
	})

	t.Run("storage error passes message through", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, uint64(42)).Return(nil, errors.New("Lost connection to MySQL server"))

		_, err := svc.GetByID(ctx, "42")
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Lost connection to MySQL server", httpErr.Message)
	})
}
