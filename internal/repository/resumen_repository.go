package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

type ResumenRepository struct {
	db *sql.DB
}

func NewResumenRepository(db *sql.DB) *ResumenRepository {
	return &ResumenRepository{db: db}
}

func (r *ResumenRepository) GetResumenDiario(ctx context.Context, fecha time.Time) (*model.ResumenDiario, error) {
	return r.getOne(ctx, `
		SELECT Fecha, Resumen, Modelo, Timestamp
		FROM resumenes_diarios
		WHERE Fecha = $1::date
	`, fecha.Format(model.DateLayout))
}

func (r *ResumenRepository) GetUltimoResumenDiario(ctx context.Context) (*model.ResumenDiario, error) {
	return r.getOne(ctx, `
		SELECT Fecha, Resumen, Modelo, Timestamp
		FROM resumenes_diarios
		ORDER BY Fecha DESC
		LIMIT 1
	`)
}

func (r *ResumenRepository) getOne(ctx context.Context, query string, args ...any) (*model.ResumenDiario, error) {
	var s model.ResumenDiario
	var modelo sql.NullString
	var timestamp sql.NullTime

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.Fecha, &s.Resumen, &modelo, &timestamp)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("fetching daily summary: %w", err)
	}

	s.Modelo = modelo.String
	s.Timestamp = timestamp.Time
	return &s, nil
}

func (r *ResumenRepository) GetFechasResumenes(ctx context.Context, limit int) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT Fecha FROM resumenes_diarios ORDER BY Fecha DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying daily summary dates: %w", err)
	}
	defer rows.Close()

	var fechas []time.Time
	for rows.Next() {
		var f time.Time
		if err := rows.Scan(&f); err != nil {
			return nil, err
		}
		fechas = append(fechas, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fechas, nil
}

func (r *ResumenRepository) ExisteResumenDiario(ctx context.Context, fecha time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM resumenes_diarios WHERE Fecha = $1::date)
	`, fecha.Format(model.DateLayout)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking daily summary: %w", err)
	}
	return exists, nil
}

func (r *ResumenRepository) GuardarResumenDiario(ctx context.Context, fecha time.Time, resumen, modelo string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO resumenes_diarios(Fecha, Resumen, Modelo)
		VALUES($1::date, $2, $3)
		ON CONFLICT (Fecha) DO UPDATE
		SET Resumen = EXCLUDED.Resumen, Modelo = EXCLUDED.Modelo, Timestamp = NOW()
	`, fecha.Format(model.DateLayout), resumen, modelo)
	if err != nil {
		return fmt.Errorf("saving daily summary: %w", err)
	}
	return nil
}

// Store serves both the web handlers and the summarizer workers.
type Store struct {
	*AvisoRepository
	*ResumenRepository
}

func NewStore(db *sql.DB, source string) *Store {
	return &Store{
		AvisoRepository:   NewAvisoRepository(db, source),
		ResumenRepository: NewResumenRepository(db),
	}
}
