package site

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=site_repo.go -destination=mock/site_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Site, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Site, error) {
	var rows []Site
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}
