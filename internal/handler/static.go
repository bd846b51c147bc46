package handler

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the embedded assets under /static/*filepath.
func StaticHandler(fsys fs.FS) (gin.HandlerFunc, error) {
	staticFS, err := fs.Sub(fsys, "static")
	if err != nil {
		return nil, err
	}

	fileServer := http.FileServer(http.FS(staticFS))

	return func(c *gin.Context) {
		path := c.Param("filepath")
		if path == "" || path == "/" {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		c.Request.URL.Path = path
		c.Header("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(c.Writer, c.Request)
	}, nil
}
