package repository

import (
	"fmt"
	"strings"

	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

const avisoColumns = `Id, Titulo, Categoria, Texto, TextoResumido, Enlace, FechaPublicacion, Modelo, Timestamp`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereClause returns the WHERE clause for the filter (empty when nothing is set)
// and its arguments, numbered from $1.
func whereClause(f model.AvisoFilter) (string, []any) {
	var conditions []string
	var args []any

	if f.Fecha != nil {
		args = append(args, f.Fecha.Format(model.DateLayout))
		conditions = append(conditions, fmt.Sprintf("DATE(FechaPublicacion) = $%d", len(args)))
	}

	if f.Categoria != "" {
		args = append(args, f.Categoria)
		conditions = append(conditions, fmt.Sprintf("Categoria = $%d", len(args)))
	}

	if term := strings.TrimSpace(f.Busqueda); term != "" {
		args = append(args, "%"+likeEscaper.Replace(term)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(Titulo ILIKE $%d OR TextoResumido ILIKE $%d)", n, n))
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func pageClause(argCount int) string {
	return fmt.Sprintf(" ORDER BY Id DESC LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
}
