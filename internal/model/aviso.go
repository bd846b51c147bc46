package model

import "time"

const (
	AvisosPorPagina  = 50
	DateLayout       = "2006-01-02"
	DefaultSource    = "avisos"
	ResumenPendiente = "RESUMEN AÚN NO GENERADO. TEXTO COMPLETO: "
)

type Aviso struct {
	ID               int64
	Titulo           string
	Categoria        string
	Texto            string
	TextoResumido    string
	Enlace           string
	FechaPublicacion time.Time
	Modelo           string
	Timestamp        time.Time
}

// Resumido reports whether an LLM summary was already stored for the aviso.
func (a Aviso) Resumido() bool {
	return a.TextoResumido != ""
}

type Categoria struct {
	Nombre   string
	Cantidad int
}

type DateRange struct {
	Desde         time.Time
	Actualizacion time.Time
}

type AvisoFilter struct {
	Fecha     *time.Time
	Categoria string
	Busqueda  string
}

func (f AvisoFilter) Empty() bool {
	return f.Fecha == nil && f.Categoria == "" && f.Busqueda == ""
}
