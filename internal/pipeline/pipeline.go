// Package pipeline runs the ingestion steps that fill the avisos table:
// obtener (fetch and insert), resumir (summarize each aviso) and resumir_dia
// (summarize the day).
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

const (
	StepObtener    = "obtener"
	StepResumir    = "resumir"
	StepResumirDia = "resumir_dia"
)

var (
	ErrForcedFailure = errors.New("forced failure")
	ErrSimulatedLLM  = errors.New("simulated llm error")
)

type FetchStore interface {
	AvisosParaScraping(ctx context.Context, diasAtras int) ([]model.Aviso, error)
	InsertarAviso(ctx context.Context, aviso model.Aviso) error
}

type SummaryStore interface {
	GetPendientesResumir(ctx context.Context, limit int) ([]model.Aviso, error)
	GuardarResumen(ctx context.Context, id int64, resumen, modelo string) error
}

type DailyStore interface {
	ExisteResumenDiario(ctx context.Context, fecha time.Time) (bool, error)
	GetResumenesDelDia(ctx context.Context, fecha time.Time) (string, error)
	GuardarResumenDiario(ctx context.Context, fecha time.Time, resumen, modelo string) error
}

type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type StepResult struct {
	Procesados int
	Fallidos   int
	Omitido    bool
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
