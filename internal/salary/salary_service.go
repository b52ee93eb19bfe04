package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/employee"
	salaryerrors "github.com/priyanshu-101/cb-app-user/internal/salary/errors"
	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	"github.com/priyanshu-101/cb-app-user/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	GetByEmployee(ctx context.Context, employeeID string) ([]SalaryResponse, error)
	Receipt(ctx context.Context, employeeID string) ([]byte, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) find(ctx context.Context, rawID string) ([]SalaryDetail, error) {
	id, err := employee.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FindByEmployeeID(ctx, id)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("find salary failed", zap.Uint64("employee_id", id), zap.Error(err))
		return nil, apperror.Storage(err)
	}
	return rows, nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]SalaryResponse, error) {
	rows, err := s.find(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	res := make([]SalaryResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Receipt(ctx context.Context, employeeID string) ([]byte, error) {
	rows, err := s.find(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, salaryerrors.ErrSalaryNotFound
	}

	r := rows[0]
	lines := []string{
		"Salary Receipt",
		"",
		"Employee: " + r.EmployeeName,
		fmt.Sprintf("Employee ID: %d", r.ID),
		"Total Salary: " + r.TotalSalary.StringFixed(2),
		"Advance Taken: " + r.AdvanceTakenAmount.StringFixed(2) + dateSuffix(r.AdvanceTakenDate),
		"Bonus: " + r.BonusAmount.StringFixed(2) + dateSuffix(r.BonusDate),
		"Final Salary: " + r.FinalSalary.StringFixed(2),
		"",
		"Generated: " + s.now().Format("2006-01-02 15:04:05"),
	}
	return buildReceiptPDF(lines)
}

func dateSuffix(t *time.Time) string {
	if t == nil {
		return ""
	}
	return " on " + t.Format("2006-01-02")
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("2006-01-02")
	return &v
}

func mapToResponse(r SalaryDetail) SalaryResponse {
	return SalaryResponse{
		ID:                 r.ID,
		EmployeeName:       r.EmployeeName,
		TotalSalary:        r.TotalSalary,
		AdvanceTakenAmount: r.AdvanceTakenAmount,
		AdvanceTakenDate:   formatDate(r.AdvanceTakenDate),
		BonusAmount:        r.BonusAmount,
		BonusDate:          formatDate(r.BonusDate),
		FinalSalary:        r.FinalSalary,
	}
}
