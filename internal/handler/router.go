package handler

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/cache"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/metrics"
)

type RouterConfig struct {
	AllowedOrigins []string
	SSL            bool
	// PageStore caches the public pages; nil disables the page cache.
	PageStore cache.PageStore
	Metrics   *metrics.Metrics
	// Assets must contain templates/ and static/.
	Assets fs.FS
}

type Handlers struct {
	Avisos    *AvisoHandler
	Resumenes *ResumenHandler
	Testing   *TestingHandler
}

func NewRouter(cfg RouterConfig, h Handlers) (*gin.Engine, error) {
	renderer, err := NewRenderer(cfg.Assets)
	if err != nil {
		return nil, err
	}

	static, err := StaticHandler(cfg.Assets)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.HTMLRender = renderer

	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}

	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if cfg.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	r.Use(secure.New(secureConfig))

	slog.Info("allowed origins", "urls", cfg.AllowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/static/*filepath", static)
	r.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, "User-agent: *\nDisallow: /api/\n")
	})
	r.GET("/health", h.Avisos.GetHealth)
	r.GET("/api/testing", h.Testing.RunTesting)
	if cfg.Metrics != nil {
		r.GET("/metrics", cfg.Metrics.Handler())
	}

	pages := r.Group("/")
	if cfg.PageStore != nil {
		var observe cache.LookupObserver
		if cfg.Metrics != nil {
			observe = cfg.Metrics.ObservePageCache
		}
		pages.Use(cache.PageCacheMiddleware(cfg.PageStore, observe))
	}

	pages.GET("/", h.Avisos.Index)
	pages.GET("/:page", h.Avisos.Index)
	pages.GET("/aviso/:id", h.Avisos.GetAviso)
	pages.GET("/resumen-diario", h.Resumenes.GetResumenDiario)
	pages.GET("/categorias", h.Avisos.GetCategorias)
	pages.GET("/api/avisos", h.Avisos.GetAvisos)

	r.NoRoute(renderNotFound)

	return r, nil
}
