package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
	"github.com/nrmattar-dev/boletin-no-oficial/pkg/llm"
)

const diasObtener = 2

// Obtener inserts the avisos of today and yesterday. The first failed insert aborts the step.
func Obtener(ctx context.Context, store FetchStore, delay time.Duration) (StepResult, error) {
	var result StepResult

	for diasAtras := 0; diasAtras < diasObtener; diasAtras++ {
		avisos, err := store.AvisosParaScraping(ctx, diasAtras)
		if err != nil {
			return result, fmt.Errorf("fetching avisos %d days back: %w", diasAtras, err)
		}

		if len(avisos) == 0 {
			slog.Info("no new avisos", "step", StepObtener, "dias_atras", diasAtras)
			continue
		}

		for _, a := range avisos {
			if err := store.InsertarAviso(ctx, a); err != nil {
				return result, fmt.Errorf("inserting aviso %d: %w", a.ID, err)
			}

			result.Procesados++
			slog.Info("aviso processed", "step", StepObtener, "aviso_id", a.ID, "titulo", a.Titulo)

			if err := pause(ctx, delay); err != nil {
				return result, err
			}
		}
	}

	return result, nil
}

type ResumirOptions struct {
	Limit       int
	StopOnError bool
	Delay       time.Duration
}

// Resumir summarizes pending avisos one by one. With StopOnError the first
// failure aborts the step, otherwise failures are counted and skipped.
func Resumir(ctx context.Context, store SummaryStore, summarizer llm.Summarizer, opts ResumirOptions) (StepResult, error) {
	var result StepResult

	if opts.Limit <= 0 {
		opts.Limit = model.AvisosPorPagina
	}

	pendientes, err := store.GetPendientesResumir(ctx, opts.Limit)
	if err != nil {
		return result, fmt.Errorf("fetching pending avisos: %w", err)
	}

	if len(pendientes) == 0 {
		slog.Info("no pending avisos to summarize", "step", StepResumir)
		result.Omitido = true
		return result, nil
	}

	for _, a := range pendientes {
		err := resumirAviso(ctx, store, summarizer, a)
		if err != nil {
			result.Fallidos++
			slog.Error("error summarizing aviso", "step", StepResumir, "aviso_id", a.ID, "model", summarizer.Name(), "error", err)
			if opts.StopOnError {
				return result, err
			}
			continue
		}

		result.Procesados++
		slog.Info("summary saved", "step", StepResumir, "aviso_id", a.ID, "model", summarizer.Name())

		if err := pause(ctx, opts.Delay); err != nil {
			return result, err
		}
	}

	return result, nil
}

func resumirAviso(ctx context.Context, store SummaryStore, summarizer llm.Summarizer, a model.Aviso) error {
	resumen, err := summarizer.Resumir(ctx, a.Texto)
	if err != nil {
		return fmt.Errorf("summarizing aviso %d: %w", a.ID, err)
	}

	return store.GuardarResumen(ctx, a.ID, resumen, summarizer.Name())
}

// ResumirDia stores the daily summary for fecha unless one already exists or
// there is nothing summarized that day.
func ResumirDia(ctx context.Context, store DailyStore, summarizer llm.Summarizer, fecha time.Time) (StepResult, error) {
	var result StepResult
	dia := fecha.Format(model.DateLayout)

	exists, err := store.ExisteResumenDiario(ctx, fecha)
	if err != nil {
		return result, err
	}

	if exists {
		slog.Info("daily summary already exists, skipping", "step", StepResumirDia, "fecha", dia)
		result.Omitido = true
		return result, nil
	}

	contenido, err := store.GetResumenesDelDia(ctx, fecha)
	if err != nil {
		return result, err
	}

	if contenido == "" {
		slog.Info("no content to summarize", "step", StepResumirDia, "fecha", dia)
		result.Omitido = true
		return result, nil
	}

	resumen, err := summarizer.ResumirDia(ctx, contenido)
	if err != nil {
		result.Fallidos++
		return result, fmt.Errorf("summarizing %s: %w", dia, err)
	}

	if err := store.GuardarResumenDiario(ctx, fecha, resumen, summarizer.Name()); err != nil {
		result.Fallidos++
		return result, err
	}

	result.Procesados++
	slog.Info("daily summary saved", "step", StepResumirDia, "fecha", dia, "model", summarizer.Name())
	return result, nil
}
