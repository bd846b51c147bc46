package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

type AvisoRepository struct {
	db     *sql.DB
	source string
}

// NewAvisoRepository reads avisos from source, a table or view name that was
// already validated by the caller.
func NewAvisoRepository(db *sql.DB, source string) *AvisoRepository {
	if source == "" {
		source = model.DefaultSource
	}
	return &AvisoRepository{db: db, source: source}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAviso(row rowScanner) (model.Aviso, error) {
	var a model.Aviso
	var categoria, texto, resumido, modelo sql.NullString
	var timestamp sql.NullTime

	err := row.Scan(&a.ID, &a.Titulo, &categoria, &texto, &resumido, &a.Enlace, &a.FechaPublicacion, &modelo, &timestamp)
	if err != nil {
		return a, err
	}

	a.Categoria = categoria.String
	a.Texto = texto.String
	a.TextoResumido = resumido.String
	a.Modelo = modelo.String
	a.Timestamp = timestamp.Time

	return a, nil
}

func (r *AvisoRepository) GetAvisos(ctx context.Context, filter model.AvisoFilter, limit, offset int) ([]model.Aviso, error) {
	where, args := whereClause(filter)
	query := `SELECT ` + avisoColumns + ` FROM ` + r.source + where + pageClause(len(args))
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying avisos: %w", err)
	}
	defer rows.Close()

	var avisos []model.Aviso
	for rows.Next() {
		a, err := scanAviso(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning aviso: %w", err)
		}
		avisos = append(avisos, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return avisos, nil
}

func (r *AvisoRepository) CountAvisos(ctx context.Context, filter model.AvisoFilter) (int, error) {
	where, args := whereClause(filter)

	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+r.source+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("counting avisos: %w", err)
	}
	return total, nil
}

func (r *AvisoRepository) GetAvisoByID(ctx context.Context, id int64) (*model.Aviso, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+avisoColumns+` FROM `+r.source+` WHERE Id = $1`, id)

	a, err := scanAviso(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("fetching aviso %d: %w", id, err)
	}

	return &a, nil
}

func (r *AvisoRepository) GetDateRange(ctx context.Context) (model.DateRange, error) {
	var desde, actualizacion sql.NullTime
	err := r.db.QueryRowContext(ctx, `
		SELECT MIN(FechaPublicacion), MAX(Timestamp) FROM `+r.source,
	).Scan(&desde, &actualizacion)
	if err != nil {
		return model.DateRange{}, fmt.Errorf("fetching date range: %w", err)
	}

	return model.DateRange{Desde: desde.Time, Actualizacion: actualizacion.Time}, nil
}

func (r *AvisoRepository) GetCategorias(ctx context.Context) ([]model.Categoria, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT Categoria, COUNT(*)
		FROM `+r.source+`
		WHERE Categoria IS NOT NULL AND Categoria <> ''
		GROUP BY Categoria
		ORDER BY Categoria
	`)
	if err != nil {
		return nil, fmt.Errorf("querying categorias: %w", err)
	}
	defer rows.Close()

	var categorias []model.Categoria
	for rows.Next() {
		var c model.Categoria
		if err := rows.Scan(&c.Nombre, &c.Cantidad); err != nil {
			return nil, err
		}
		categorias = append(categorias, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categorias, nil
}

func (r *AvisoRepository) GetPendientesResumir(ctx context.Context, limit int) ([]model.Aviso, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+avisoColumns+`
		FROM `+r.source+`
		WHERE TextoResumido IS NULL OR TextoResumido = ''
		ORDER BY Id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying pending avisos: %w", err)
	}
	defer rows.Close()

	var avisos []model.Aviso
	for rows.Next() {
		a, err := scanAviso(rows)
		if err != nil {
			return nil, err
		}
		avisos = append(avisos, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return avisos, nil
}

func (r *AvisoRepository) GuardarResumen(ctx context.Context, id int64, resumen, modelo string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE `+r.source+` SET TextoResumido = $1, Modelo = $2 WHERE Id = $3
	`, resumen, modelo, id)
	if err != nil {
		return fmt.Errorf("saving summary for aviso %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("saving summary for aviso %d: %w", id, sql.ErrNoRows)
	}

	return nil
}

// GetResumenesDelDia joins the summaries published on fecha into one block,
// each prefixed with its [aviso:ID] reference and title.
func (r *AvisoRepository) GetResumenesDelDia(ctx context.Context, fecha time.Time) (string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT Id, Titulo, TextoResumido
		FROM `+r.source+`
		WHERE DATE(FechaPublicacion) = $1 AND TextoResumido IS NOT NULL AND TextoResumido <> ''
		ORDER BY Id ASC
	`, fecha.Format(model.DateLayout))
	if err != nil {
		return "", fmt.Errorf("querying summaries of %s: %w", fecha.Format(model.DateLayout), err)
	}
	defer rows.Close()

	var sb strings.Builder
	for rows.Next() {
		var id int64
		var titulo, resumen string
		if err := rows.Scan(&id, &titulo, &resumen); err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "[aviso:%d] %s\n%s\n\n", id, titulo, resumen)
	}

	if err := rows.Err(); err != nil {
		return "", err
	}

	return strings.TrimSpace(sb.String()), nil
}

func (r *AvisoRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
