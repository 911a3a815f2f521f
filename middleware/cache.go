package middleware

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-booking/cache"
)

const CacheHeader = "X-Cache"

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

// Cache serves successful JSON GET responses from store for ttl. Keys include
// the caller's user id when one is set. Store failures are logged and the
// request falls through to the handler.
func Cache(store cache.Store, ttl time.Duration, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		ctx := c.Request.Context()
		if body, ok, err := store.Get(ctx, key); err != nil {
			log.Warn("cache read failed", "key", key, "error", err)
		} else if ok {
			c.Header(CacheHeader, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Header(CacheHeader, "MISS")
		c.Next()

		if rec.Status() != http.StatusOK || rec.body.Len() == 0 {
			return
		}
		if err := store.Set(ctx, key, rec.body.Bytes(), ttl); err != nil {
			log.Warn("cache write failed", "key", key, "error", err)
		}
	}
}

func cacheKey(c *gin.Context) string {
	user := "anon"
	if id, ok := UserID(c); ok {
		user = fmt.Sprint(id)
	}
	return fmt.Sprintf("%s:%s:%s", c.Request.Method, user, c.Request.URL.RequestURI())
}
