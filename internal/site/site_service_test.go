package site_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	"github.com/priyanshu-101/cb-app-user/internal/site"
	siteMock "github.com/priyanshu-101/cb-app-user/internal/site/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type serviceDeps struct {
	service   site.Service
	repo      *siteMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) serviceDeps {
	ctrl := gomock.NewController(t)
	repo := siteMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	t.Cleanup(func() {
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
	return serviceDeps{
		service:   site.NewService(repo, rdb, zap.NewNop()),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestSiteService_GetAll(t *testing.T) {
	ctx := context.Background()
	sites := []site.Site{{ID: 1, Name: "Site A"}, {ID: 2, Name: "Warehouse"}}
	payload, _ := json.Marshal(sites)

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(site.SitesCacheKey).SetVal(string(payload))
		deps.repo.EXPECT().FindAll(gomock.Any()).Times(0)

		got, err := deps.service.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, sites, got)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(site.SitesCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(gomock.Any()).Return(sites, nil).Times(1)
		deps.redismock.ExpectSet(site.SitesCacheKey, payload, site.SitesCacheTTL).SetVal("OK")

		got, err := deps.service.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, sites, got)
	})

	t.Run("redis outage does not fail the request", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(site.SitesCacheKey).SetErr(errors.New("dial tcp: connection refused"))
		deps.repo.EXPECT().FindAll(gomock.Any()).Return(sites, nil)
		deps.redismock.ExpectSet(site.SitesCacheKey, payload, site.SitesCacheTTL).SetErr(errors.New("dial tcp: connection refused"))

		got, err := deps.service.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("database error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(site.SitesCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("Table 'cb_app.sites' doesn't exist"))

		got, err := deps.service.GetAll(ctx)
		assert.Nil(t, got)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Table 'cb_app.sites' doesn't exist", httpErr.Message)
	})

	t.Run("shared load ignores the caller's cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := siteMock.NewMockRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).DoAndReturn(func(loadCtx context.Context) ([]site.Site, error) {
			if err := loadCtx.Err(); err != nil {
				return nil, err
			}
			return sites, nil
		})

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		got, err := site.NewService(repo, nil, zap.NewNop()).GetAll(cancelled)
		assert.NoError(t, err)
		assert.Equal(t, sites, got)
	})

	t.Run("no redis configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := siteMock.NewMockRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		got, err := site.NewService(repo, nil, zap.NewNop()).GetAll(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
