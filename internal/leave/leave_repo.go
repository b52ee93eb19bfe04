package leave

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *LeaveApplication) error
	FindByEmployeeName(ctx context.Context, employeeName string) ([]LeaveApplication, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *LeaveApplication) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByEmployeeName(ctx context.Context, employeeName string) ([]LeaveApplication, error) {
	var rows []LeaveApplication
	err := r.db.WithContext(ctx).
		Where("employee_name = ?", employeeName).
		Find(&rows).Error
	return rows, err
}
