package notice

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAllNewestFirst(ctx context.Context) ([]Notice, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllNewestFirst(ctx context.Context) ([]Notice, error) {
	var rows []Notice
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&rows).Error
	return rows, err
}
