package site

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	"github.com/priyanshu-101/cb-app-user/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Sites are admin-maintained reference data, so an hour of staleness is fine.
const (
	SitesCacheKey = "sites:all"
	SitesCacheTTL = 1 * time.Hour
)

type Service interface {
	GetAll(ctx context.Context) ([]Site, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService accepts a nil rdb; the list is then read from the database on
// every call.
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("site.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("site.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]Site, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, SitesCacheKey).Result()
		switch {
		case err == nil:
			var sites []Site
			if json.Unmarshal([]byte(cached), &sites) == nil {
				return sites, nil
			}
			log.Warn("discarding undecodable sites cache entry")
		case !errors.Is(err, redis.Nil):
			log.Warn("sites cache read failed", zap.Error(err))
		}
	}

	// Collapse concurrent misses into one query. The load outlives the first
	// caller's request so one disconnect does not fail every waiter.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(SitesCacheKey, func() (interface{}, error) {
		sites, err := s.repo.FindAll(loadCtx)
		if err != nil {
			return nil, err
		}
		if sites == nil {
			sites = []Site{}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(sites); err == nil {
				if err := s.rdb.Set(loadCtx, SitesCacheKey, payload, SitesCacheTTL).Err(); err != nil {
					log.Warn("sites cache write failed", zap.Error(err))
				}
			}
		}
		return sites, nil
	})
	if err != nil {
		log.Error("list sites failed", zap.Error(err))
		return nil, apperror.Storage(err)
	}
	return v.([]Site), nil
}
