package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/assert/v2"
)

func newMockResumenRepository(t *testing.T) (*ResumenRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error creating sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewResumenRepository(db), mock
}

func TestGetResumenDiario_Found(t *testing.T) {
	repo, mock := newMockResumenRepository(t)
	fecha := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE Fecha = $1::date")).
		WithArgs("2025-03-04").
		WillReturnRows(sqlmock.NewRows([]string{"Fecha", "Resumen", "Modelo", "Timestamp"}).
			AddRow(fecha, "Hoy se publicaron **tres** decretos.", "gemini", fecha))

	resumen, err := repo.GetResumenDiario(context.Background(), fecha)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Hoy se publicaron **tres** decretos.", resumen.Resumen)
	assert.Equal(t, "gemini", resumen.Modelo)
}

func TestGetUltimoResumenDiario_Empty(t *testing.T) {
	repo, mock := newMockResumenRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY Fecha DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"Fecha", "Resumen", "Modelo", "Timestamp"}))

	resumen, err := repo.GetUltimoResumenDiario(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, true, resumen == nil)
}

func TestExisteResumenDiario(t *testing.T) {
	repo, mock := newMockResumenRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(")).
		WithArgs("2025-03-05").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExisteResumenDiario(context.Background(), time.Date(2025, time.March, 5, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, nil, err)
	assert.Equal(t, true, exists)
}

func TestGuardarResumenDiario_Upserts(t *testing.T) {
	repo, mock := newMockResumenRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (Fecha) DO UPDATE")).
		WithArgs("2025-03-05", "resumen del día", "claude-4.5-haiku").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.GuardarResumenDiario(context.Background(), time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), "resumen del día", "claude-4.5-haiku")

	assert.Equal(t, nil, err)
	assert.Equal(t, nil, mock.ExpectationsWereMet())
}

func TestGetFechasResumenes(t *testing.T) {
	repo, mock := newMockResumenRepository(t)
	d1 := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT Fecha FROM resumenes_diarios ORDER BY Fecha DESC LIMIT $1")).
		WithArgs(14).
		WillReturnRows(sqlmock.NewRows([]string{"Fecha"}).AddRow(d1).AddRow(d2))

	fechas, err := repo.GetFechasResumenes(context.Background(), 14)

	assert.Equal(t, nil, err)
	assert.Equal(t, []time.Time{d1, d2}, fechas)
}
