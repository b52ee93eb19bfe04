package notice

import (
	"context"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
)

type Service interface {
	GetAll(ctx context.Context) ([]NoticeResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]NoticeResponse, error) {
	rows, err := s.repo.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	res := make([]NoticeResponse, len(rows))
	for i, n := range rows {
		res[i] = NoticeResponse(n)
	}
	return res, nil
}
