package cache

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LookupObserver func(hit bool)

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

// PageCacheMiddleware serves GET responses from store keyed by request URI and
// stores successful responses. observe may be nil.
func PageCacheMiddleware(store PageStore, observe LookupObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()

		if page, ok := store.Get(c.Request.Context(), key); ok {
			if observe != nil {
				observe(true)
			}
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, page.ContentType, page.Body)
			c.Abort()
			return
		}

		if observe != nil {
			observe(false)
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Header("X-Cache", "MISS")

		c.Next()

		if recorder.Status() != http.StatusOK || recorder.body.Len() == 0 {
			return
		}

		store.Set(c.Request.Context(), key, Page{
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
		})
	}
}
