package employee

import (
	"context"

	"gorm.io/gorm"
)

// Lookups return (nil, nil) when no row matches; callers decide whether that
// is a 404 or a 401.
//
//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id uint64) (*Employee, error)
	FindNameByID(ctx context.Context, id uint64) (*string, error)
	FindByCredentials(ctx context.Context, email, password string) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (r *repository) FindNameByID(ctx context.Context, id uint64) (*string, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Select("employee_name").
		Where("employee_id = ?", id).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0].EmployeeName, nil
}

// FindByCredentials matches byte for byte. MySQL's default collation ignores
// case and trailing spaces, so the SQL match is only a prefilter.
func (r *repository) FindByCredentials(ctx context.Context, email, password string) (*Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("email_address = ? AND password = ?", email, password).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].EmailAddress == email && rows[i].Password == password {
			return &rows[i], nil
		}
	}
	return nil, nil
}
