package middleware

// This in-memory response cache is deliberately simple. It can be replaced
// with Redis when several instances need to share entries.

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
)

var (
	cache    *lru.Cache
	cacheTTL time.Duration
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
	storedAt    time.Time
}

// InitializeCache sets up an in-memory LRU cache for responses. Entries
// older than ttl are treated as misses; a ttl of zero disables expiry.
func InitializeCache(size int, ttl time.Duration) error {
	var err error
	cache, err = lru.New(size)
	cacheTTL = ttl
	return err
}

// Caching serves repeated GET requests from the cache. Only successful
// responses are stored, so errors are always recomputed.
func Caching() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := generateCacheKey(c.Request)
		if entry, ok := lookup(key); ok {
			c.Header("X-Cache", "hit")
			c.Data(entry.status, entry.contentType, entry.body)
			c.Abort()
			return
		}

		writer := &bufferingWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK {
			cache.Add(key, cachedResponse{
				status:      writer.Status(),
				contentType: writer.Header().Get("Content-Type"),
				body:        writer.buf.Bytes(),
				storedAt:    time.Now(),
			})
		}
	}
}

func lookup(key string) (cachedResponse, bool) {
	value, ok := cache.Get(key)
	if !ok {
		return cachedResponse{}, false
	}
	entry := value.(cachedResponse)
	if cacheTTL > 0 && time.Since(entry.storedAt) > cacheTTL {
		cache.Remove(key)
		return cachedResponse{}, false
	}
	return entry, true
}

// generateCacheKey builds the cache key from the request path and query.
func generateCacheKey(r *http.Request) string {
	return r.URL.Path + "?" + r.URL.RawQuery
}

// bufferingWriter tees the response body so it can be cached after the
// handler ran.
type bufferingWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bufferingWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	return w.ResponseWriter.Write(p)
}

func (w *bufferingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
