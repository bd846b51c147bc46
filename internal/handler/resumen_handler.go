package handler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/format"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

const fechasRecientes = 30

type ResumenStore interface {
	GetResumenDiario(ctx context.Context, fecha time.Time) (*model.ResumenDiario, error)
	GetUltimoResumenDiario(ctx context.Context) (*model.ResumenDiario, error)
	GetFechasResumenes(ctx context.Context, limit int) ([]time.Time, error)
}

type ResumenHandler struct {
	repository ResumenStore
	formatter  *format.Formatter
}

func NewResumenHandler(repository ResumenStore, formatter *format.Formatter) *ResumenHandler {
	return &ResumenHandler{repository: repository, formatter: formatter}
}

type resumenPage struct {
	Resumen   model.ResumenDiario
	Contenido template.HTML
	Fechas    []time.Time
}

// GetResumenDiario shows the summary for ?fecha=, or the latest one when the
// date is missing or malformed.
func (h *ResumenHandler) GetResumenDiario(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		resumen *model.ResumenDiario
		err     error
	)
	if fecha := parseFecha(c); fecha != nil {
		resumen, err = h.repository.GetResumenDiario(ctx, *fecha)
	} else {
		resumen, err = h.repository.GetUltimoResumenDiario(ctx)
	}
	if err != nil {
		slog.Error("error fetching daily summary", "error", err)
		renderDatabaseError(c)
		return
	}

	if resumen == nil {
		renderError(c, http.StatusNotFound, "Todavía no hay un resumen para ese día.")
		return
	}

	fechas, err := h.repository.GetFechasResumenes(ctx, fechasRecientes)
	if err != nil {
		slog.Error("error fetching summary dates", "error", err)
		renderDatabaseError(c)
		return
	}

	c.HTML(http.StatusOK, "resumen_diario.html", resumenPage{
		Resumen:   *resumen,
		Contenido: h.formatter.Full(resumen.Resumen),
		Fechas:    fechas,
	})
}
