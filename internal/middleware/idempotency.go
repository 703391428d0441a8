package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-attendance/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader   = "Idempotency-Key"
	idempotencyLockTTL  = 30 * time.Second
	idempotencyReplyTTL = 24 * time.Hour
)

var errRequestInProgress = apperror.New(
	"PROCESSING",
	"A request with this Idempotency-Key is still being processed",
	http.StatusConflict,
)

type storedReply struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

// captureWriter keeps a copy of the body while still streaming it out.
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored reply of an earlier POST with the same
// Idempotency-Key for the same teacher and route. Only replies below 500 are
// stored. Redis failures degrade to a normal request.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if rdb == nil || key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString("teacher_id"), key)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var reply storedReply
			if err := json.Unmarshal([]byte(val), &reply); err == nil {
				c.Header("Idempotent-Replayed", "true")
				c.Data(reply.Status, "application/json; charset=utf-8", []byte(reply.Body))
				c.Abort()
				return
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			abortWith(c, errRequestInProgress)
			return
		}
		defer func() {
			if err := rdb.Del(ctx, lockKey).Err(); err != nil {
				log.Warn("idempotency unlock failed", zap.Error(err))
			}
		}()

		writer := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= http.StatusInternalServerError {
			return
		}

		raw, err := json.Marshal(storedReply{Status: status, Body: writer.body.String()})
		if err != nil {
			return
		}
		if err := rdb.Set(ctx, cacheKey, string(raw), idempotencyReplyTTL).Err(); err != nil {
			log.Warn("idempotency store failed", zap.Error(err))
		}
	}
}
