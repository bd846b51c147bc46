package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/nrmattar-dev/boletin-no-oficial/db"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/cache"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/config"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/format"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/handler"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/metrics"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/repository"
	"github.com/nrmattar-dev/boletin-no-oficial/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var pageStore cache.PageStore
	switch {
	case cfg.PageCacheTTL == 0:
		slog.Info("page cache disabled")
	case db.RedisConfigured():
		err = db.ConnectRedis(context.Background())
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()

		slog.Info("page cache in redis", "ttl", cfg.PageCacheTTL)
		pageStore = cache.NewRedisPageStore(db.Redis, cfg.PageCacheTTL, cache.DefaultKeyPrefix)
	default:
		slog.Info("page cache in memory", "ttl", cfg.PageCacheTTL)
		pageStore = cache.NewMemoryPageStore(cfg.PageCacheTTL)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m, err := metrics.New(registry)
	if err != nil {
		log.Fatalf("error registering metrics: %v", err)
	}

	store := repository.NewStore(db.DB, cfg.AvisosSource)
	formatter := format.NewFormatter(format.DefaultCutLimit)

	r, err := handler.NewRouter(handler.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins(),
		SSL:            cfg.SSL,
		PageStore:      pageStore,
		Metrics:        m,
		Assets:         web.FS,
	}, handler.Handlers{
		Avisos:    handler.NewAvisoHandler(store, cache.NewDateRangeCache(cfg.DateRangeTTL), formatter),
		Resumenes: handler.NewResumenHandler(store, formatter),
		Testing:   handler.NewTestingHandler(cfg.TestingPause, m.ObservePipeline),
	})
	if err != nil {
		log.Fatalf("error building router: %v", err)
	}

	slog.Info("starting server", "addr", cfg.Addr(), "source", cfg.AvisosSource)

	err = r.Run(cfg.Addr())
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
