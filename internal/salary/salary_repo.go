package salary

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	FindByEmployeeID(ctx context.Context, employeeID uint64) ([]SalaryDetail, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID uint64) ([]SalaryDetail, error) {
	var rows []SalaryDetail
	err := r.db.WithContext(ctx).
		Where("id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}
