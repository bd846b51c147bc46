package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

const baseTemplate = "base.html"

var pages = []string{"index.html", "aviso.html", "resumen_diario.html", "error.html"}

var funcMap = template.FuncMap{
	"fecha":     formatFecha,
	"timestamp": formatTimestamp,
	"iso":       func(t time.Time) string { return t.Format(model.DateLayout) },
}

func formatFecha(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006 15:04")
}

// Renderer parses every page together with base.html, so each page gets its
// own "title" and "content" definitions.
type Renderer struct {
	templates map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

func NewRenderer(fsys fs.FS) (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		tmpl, err := template.New(baseTemplate).Funcs(funcMap).ParseFS(fsys, "templates/"+baseTemplate, "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}

	return r, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		slog.Error("unknown template", "name", name)
		tmpl = r.templates["error.html"]
		data = errorPage{StatusCode: http.StatusInternalServerError, Message: "Error interno"}
	}

	return render.HTML{Template: tmpl, Name: baseTemplate, Data: data}
}

type errorPage struct {
	StatusCode int
	Message    string
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", errorPage{StatusCode: status, Message: message})
}

func renderNotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "No encontramos lo que buscabas.")
}

func renderDatabaseError(c *gin.Context) {
	renderError(c, http.StatusInternalServerError, "Error de base de datos. Probá de nuevo en unos minutos.")
}
