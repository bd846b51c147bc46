package handler

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/cache"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/format"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/metrics"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
	"github.com/nrmattar-dev/boletin-no-oficial/web"
)

type fakeStore struct {
	avisos     []model.Aviso
	total      int
	aviso      *model.Aviso
	dateRange  model.DateRange
	categorias []model.Categoria
	resumen    *model.ResumenDiario
	fechas     []time.Time
	err        error

	filter       model.AvisoFilter
	offset       int
	countCalls   int
	resumenFecha *time.Time
}

func (f *fakeStore) GetAvisos(ctx context.Context, filter model.AvisoFilter, limit, offset int) ([]model.Aviso, error) {
	f.filter = filter
	f.offset = offset
	return f.avisos, f.err
}

func (f *fakeStore) CountAvisos(ctx context.Context, filter model.AvisoFilter) (int, error) {
	f.countCalls++
	return f.total, f.err
}

func (f *fakeStore) GetAvisoByID(ctx context.Context, id int64) (*model.Aviso, error) {
	return f.aviso, f.err
}

func (f *fakeStore) GetDateRange(ctx context.Context) (model.DateRange, error) {
	return f.dateRange, f.err
}

func (f *fakeStore) GetCategorias(ctx context.Context) ([]model.Categoria, error) {
	return f.categorias, f.err
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.err
}

func (f *fakeStore) GetResumenDiario(ctx context.Context, fecha time.Time) (*model.ResumenDiario, error) {
	f.resumenFecha = &fecha
	return f.resumen, f.err
}

func (f *fakeStore) GetUltimoResumenDiario(ctx context.Context) (*model.ResumenDiario, error) {
	return f.resumen, f.err
}

func (f *fakeStore) GetFechasResumenes(ctx context.Context, limit int) ([]time.Time, error) {
	return f.fechas, f.err
}

type routerOption func(*RouterConfig, *Handlers)

func withPageStore(store cache.PageStore) routerOption {
	return func(cfg *RouterConfig, _ *Handlers) {
		cfg.PageStore = store
	}
}

func withMetrics(m *metrics.Metrics) routerOption {
	return func(cfg *RouterConfig, h *Handlers) {
		cfg.Metrics = m
		h.Testing = NewTestingHandler(0, m.ObservePipeline)
	}
}

func newTestRouter(t *testing.T, store *fakeStore, opts ...routerOption) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	formatter := format.NewFormatter(0)
	cfg := RouterConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		Assets:         web.FS,
	}
	h := Handlers{
		Avisos:    NewAvisoHandler(store, cache.NewDateRangeCache(time.Minute), formatter),
		Resumenes: NewResumenHandler(store, formatter),
		Testing:   NewTestingHandler(0, nil),
	}
	for _, opt := range opts {
		opt(&cfg, &h)
	}

	r, err := NewRouter(cfg, h)
	if err != nil {
		t.Fatalf("building router: %v", err)
	}
	return r
}
