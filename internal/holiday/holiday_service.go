package holiday

import (
	"context"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
)

type Service interface {
	GetAll(ctx context.Context) ([]HolidayResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]HolidayResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	res := make([]HolidayResponse, len(rows))
	for i, h := range rows {
		res[i] = HolidayResponse{
			ID:          h.ID,
			HolidayName: h.HolidayName,
			HolidayDate: h.HolidayDate.Format("2006-01-02"),
		}
	}
	return res, nil
}
