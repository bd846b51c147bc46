package handler

import (
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryBool(name string, c *gin.Context) bool {
	return strings.EqualFold(c.Query(name), "true")
}

// maxPage keeps the page offset and the next page number inside int.
const maxPage = math.MaxInt/model.AvisosPorPagina - 1

func validPage(page int) bool {
	return page >= 1 && page <= maxPage
}

// parsePage accepts an empty value as the first page.
func parsePage(value string) (int, bool) {
	if value == "" {
		return 1, true
	}

	page, err := strconv.Atoi(value)
	if err != nil || !validPage(page) {
		return 0, false
	}

	return page, true
}

// parseFecha ignores malformed dates.
func parseFecha(c *gin.Context) *time.Time {
	value := strings.TrimSpace(c.Query("fecha"))
	if value == "" {
		return nil
	}

	fecha, err := time.Parse(model.DateLayout, value)
	if err != nil {
		slog.Warn("invalid fecha filter, ignoring", "value", value, "error", err)
		return nil
	}

	return &fecha
}

func parseFilter(c *gin.Context) model.AvisoFilter {
	return model.AvisoFilter{
		Fecha:     parseFecha(c),
		Categoria: strings.TrimSpace(c.Query("categoria")),
		Busqueda:  strings.TrimSpace(c.Query("q")),
	}
}

func filterQuery(f model.AvisoFilter) string {
	values := url.Values{}
	if f.Fecha != nil {
		values.Set("fecha", f.Fecha.Format(model.DateLayout))
	}
	if f.Categoria != "" {
		values.Set("categoria", f.Categoria)
	}
	if f.Busqueda != "" {
		values.Set("q", f.Busqueda)
	}

	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// pageURL links to an index page keeping the active filters.
func pageURL(page int, f model.AvisoFilter) string {
	return "/" + strconv.Itoa(page) + filterQuery(f)
}
