package handler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/cache"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/format"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

type AvisoStore interface {
	GetAvisos(ctx context.Context, filter model.AvisoFilter, limit, offset int) ([]model.Aviso, error)
	CountAvisos(ctx context.Context, filter model.AvisoFilter) (int, error)
	GetAvisoByID(ctx context.Context, id int64) (*model.Aviso, error)
	GetDateRange(ctx context.Context) (model.DateRange, error)
	GetCategorias(ctx context.Context) ([]model.Categoria, error)
	Ping(ctx context.Context) error
}

type AvisoHandler struct {
	repository AvisoStore
	dates      *cache.DateRangeCache
	formatter  *format.Formatter
}

func NewAvisoHandler(repository AvisoStore, dates *cache.DateRangeCache, formatter *format.Formatter) *AvisoHandler {
	return &AvisoHandler{repository: repository, dates: dates, formatter: formatter}
}

type avisoView struct {
	model.Aviso
	TextoCorto template.HTML
	TextoLargo template.HTML
}

type filterView struct {
	Fecha     string
	Categoria string
	Busqueda  string
}

type indexPage struct {
	Avisos             []avisoView
	Pagination         model.Pagination
	Filtro             filterView
	Filtrado           bool
	PrevURL            string
	NextURL            string
	FechaDesde         time.Time
	FechaActualizacion time.Time
}

type avisoPage struct {
	Aviso   model.Aviso
	Resumen template.HTML
	Texto   template.HTML
}

// avisosPage loads one page of avisos for the filter. Pages past the end
// come back empty.
func (h *AvisoHandler) avisosPage(ctx context.Context, filter model.AvisoFilter, page int) ([]model.Aviso, model.Pagination, error) {
	total, err := h.repository.CountAvisos(ctx, filter)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	pagination := model.NewPagination(page, model.AvisosPorPagina, total)

	avisos, err := h.repository.GetAvisos(ctx, filter, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, model.Pagination{}, err
	}

	return avisos, pagination, nil
}

func (h *AvisoHandler) Index(c *gin.Context) {
	page, ok := parsePage(c.Param("page"))
	if !ok {
		slog.Warn("invalid page", "page", c.Param("page"))
		renderNotFound(c)
		return
	}

	ctx := c.Request.Context()
	filter := parseFilter(c)

	avisos, pagination, err := h.avisosPage(ctx, filter, page)
	if err != nil {
		slog.Error("error fetching avisos", "error", err, "page", page)
		renderDatabaseError(c)
		return
	}

	dates, err := h.dates.Get(ctx, h.repository.GetDateRange)
	if err != nil {
		slog.Error("error fetching date range", "error", err)
		renderDatabaseError(c)
		return
	}

	views := make([]avisoView, 0, len(avisos))
	for _, a := range avisos {
		corto, largo := h.formatter.Preview(a)
		views = append(views, avisoView{Aviso: a, TextoCorto: corto, TextoLargo: largo})
	}

	data := indexPage{
		Avisos:     views,
		Pagination: pagination,
		Filtro: filterView{
			Categoria: filter.Categoria,
			Busqueda:  filter.Busqueda,
		},
		Filtrado:           !filter.Empty(),
		PrevURL:            pageURL(pagination.PrevPage, filter),
		NextURL:            pageURL(pagination.NextPage, filter),
		FechaDesde:         dates.Desde,
		FechaActualizacion: dates.Actualizacion,
	}
	if filter.Fecha != nil {
		data.Filtro.Fecha = filter.Fecha.Format(model.DateLayout)
	}

	c.HTML(http.StatusOK, "index.html", data)
}

func (h *AvisoHandler) GetAviso(c *gin.Context) {
	id := c.Param("id")

	avisoID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Warn("invalid aviso id", "id", id, "error", err)
		renderNotFound(c)
		return
	}

	aviso, err := h.repository.GetAvisoByID(c.Request.Context(), avisoID)
	if err != nil {
		slog.Error("error fetching aviso", "error", err, "aviso_id", avisoID)
		renderDatabaseError(c)
		return
	}

	if aviso == nil {
		renderNotFound(c)
		return
	}

	c.HTML(http.StatusOK, "aviso.html", avisoPage{
		Aviso:   *aviso,
		Resumen: h.formatter.Full(format.ResumenOrTexto(*aviso)),
		Texto:   h.formatter.Full(aviso.Texto),
	})
}

// GetCategorias lists categories with their aviso count. q narrows the list
// to names containing it, ignoring case.
func (h *AvisoHandler) GetCategorias(c *gin.Context) {
	categorias, err := h.repository.GetCategorias(c.Request.Context())
	if err != nil {
		slog.Error("error fetching categorias", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	res := make([]CategoriaResponse, 0, len(categorias))
	for _, cat := range categorias {
		if q != "" && !strings.Contains(strings.ToLower(cat.Nombre), q) {
			continue
		}
		res = append(res, CategoriaResponse{Nombre: cat.Nombre, Cantidad: cat.Cantidad})
	}

	c.JSON(http.StatusOK, res)
}

func (h *AvisoHandler) GetAvisos(c *gin.Context) {
	page := getQueryInt("pagina", 1, c)
	if !validPage(page) {
		slog.Warn("invalid query parameter, using default", "param", "pagina", "value", page, "default", 1)
		page = 1
	}

	avisos, pagination, err := h.avisosPage(c.Request.Context(), parseFilter(c), page)
	if err != nil {
		slog.Error("error fetching avisos", "error", err, "page", page)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := AvisosResponse{
		Avisos:       make([]AvisoResponse, 0, len(avisos)),
		Total:        pagination.TotalCount,
		Pagina:       pagination.CurrentPage,
		TotalPaginas: pagination.TotalPages,
	}

	for _, a := range avisos {
		corto, largo := h.formatter.Preview(a)
		res.Avisos = append(res.Avisos, toAvisoResponse(a, corto, largo))
	}

	c.JSON(http.StatusOK, res)
}

func toAvisoResponse(a model.Aviso, corto, largo template.HTML) AvisoResponse {
	res := AvisoResponse{
		ID:            a.ID,
		Titulo:        a.Titulo,
		Categoria:     a.Categoria,
		Texto:         a.Texto,
		TextoResumido: a.TextoResumido,
		Enlace:        a.Enlace,
		Modelo:        a.Modelo,
		TextoCorto:    string(corto),
		TextoLargo:    string(largo),
	}
	if !a.FechaPublicacion.IsZero() {
		res.FechaPublicacion = a.FechaPublicacion.Format(model.DateLayout)
	}
	if !a.Timestamp.IsZero() {
		res.Timestamp = a.Timestamp.Format(time.RFC3339)
	}
	return res
}

func (h *AvisoHandler) GetHealth(c *gin.Context) {
	if err := h.repository.Ping(c.Request.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
