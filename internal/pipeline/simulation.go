package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/nrmattar-dev/boletin-no-oficial/pkg/llm"
)

type SimulationOptions struct {
	SimulateError bool
	ErrorStep     string
	LLMError      bool
	API           string
	Delay         time.Duration
	Now           func() time.Time
}

func (o SimulationOptions) forced(step string) bool {
	return o.SimulateError || strings.EqualFold(o.ErrorStep, step)
}

// RunSimulation runs the three steps against in-memory mocks. It returns a
// *StepError for the first step that fails.
func RunSimulation(ctx context.Context, opts SimulationOptions) error {
	if opts.API == "" {
		opts.API = llm.ProviderGemini
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	slog.Info("starting pipeline simulation", "api", opts.API, "simulate_error", opts.SimulateError, "error_step", opts.ErrorStep, "llm_error", opts.LLMError)

	store := NewMockStore(opts.Now)

	steps := []struct {
		name string
		run  func() error
	}{
		{StepObtener, func() error {
			_, err := Obtener(ctx, store, opts.Delay)
			return err
		}},
		{StepResumir, func() error {
			_, err := Resumir(ctx, store, &MockSummarizer{API: opts.API, Fail: opts.LLMError}, ResumirOptions{StopOnError: true, Delay: opts.Delay})
			return err
		}},
		{StepResumirDia, func() error {
			_, err := ResumirDia(ctx, store, &MockSummarizer{API: opts.API, Fail: opts.LLMError}, opts.Now())
			return err
		}},
	}

	for _, step := range steps {
		if opts.forced(step.name) {
			slog.Warn("forcing step failure", "step", step.name)
			return &StepError{Step: step.name, Err: ErrForcedFailure}
		}

		if err := step.run(); err != nil {
			slog.Error("pipeline step failed, aborting", "step", step.name, "error", err)
			return &StepError{Step: step.name, Err: err}
		}

		slog.Info("pipeline step complete", "step", step.name)
	}

	slog.Info("pipeline simulation completed successfully")
	return nil
}
