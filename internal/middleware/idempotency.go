package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"
	"github.com/priyanshu-101/cb-app-user/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	IdempotencyLockTTL  = 30 * time.Second
	IdempotencyCacheTTL = 24 * time.Hour
)

// IdempotencyKeys returns the cache and lock keys for a request.
func IdempotencyKeys(fullPath, id, key string) (cacheKey, lockKey string) {
	cacheKey = fmt.Sprintf("idemp:%s:%s:%s", fullPath, id, key)
	return cacheKey, cacheKey + ":lock"
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response for a repeated POST carrying the
// same Idempotency-Key, and answers 409 while the first one is still running.
// Only 2xx responses are stored. Redis failures let the request through.
func Idempotency(rdb redis.Cmdable, logger ...*zap.Logger) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0].Named("middleware.idempotency")
	}

	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey, lockKey := IdempotencyKeys(c.FullPath(), c.Param("id"), idempKey)

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			if status, contentType, body, ok := decodeStored(val); ok {
				c.Header(HeaderReplayed, "true")
				c.Data(status, contentType, body)
				c.Abort()
				return
			}
			log.Warn("idempotency cache entry unreadable", zap.String("key", cacheKey))
		case !errors.Is(err, redis.Nil):
			log.Warn("idempotency cache get failed", zap.String("key", cacheKey), zap.Error(err))
			c.Next()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "1", IdempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.AbortError(c, http.StatusConflict, apperror.CodeConflict, "Request is already being processed")
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if status := rec.Status(); status >= 200 && status < 300 {
			stored := encodeStored(status, rec.Header().Get("Content-Type"), rec.body.Bytes())
			if err := rdb.Set(ctx, cacheKey, stored, IdempotencyCacheTTL).Err(); err != nil {
				log.Warn("idempotency cache set failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			log.Warn("idempotency unlock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}

// Stored layout: "<status>\n<content-type>\n<body>".
func encodeStored(status int, contentType string, body []byte) string {
	return strconv.Itoa(status) + "\n" + contentType + "\n" + string(body)
}

func decodeStored(val string) (int, string, []byte, bool) {
	statusText, rest, ok := strings.Cut(val, "\n")
	if !ok {
		return 0, "", nil, false
	}
	contentType, body, ok := strings.Cut(rest, "\n")
	if !ok {
		return 0, "", nil, false
	}
	status, err := strconv.Atoi(statusText)
	if err != nil {
		return 0, "", nil, false
	}
	return status, contentType, []byte(body), true
}
