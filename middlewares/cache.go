package middlewares

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status int
	body   []byte
}

type bodyCacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache serves repeated GETs from memory. Used on the dashboard endpoints,
// which aggregate over several tables on every hit.
func Cache(store *cache.Cache, duration time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if entry, found := store.Get(key); found {
			resp := entry.(cachedResponse)
			c.Data(resp.status, "application/json; charset=utf-8", resp.body)
			c.Abort()
			return
		}

		writer := bodyCacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			store.Set(key, cachedResponse{
				status: c.Writer.Status(),
				body:   writer.body.Bytes(),
			}, duration)
		}
	}
}
