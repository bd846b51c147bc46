package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestRunSimulation_Success(t *testing.T) {
	err := RunSimulation(context.Background(), SimulationOptions{})

	assert.Equal(t, nil, err)
}

func TestRunSimulation_Failures(t *testing.T) {
	tests := []struct {
		name     string
		opts     SimulationOptions
		wantStep string
		wantErr  error
	}{
		{name: "general error fails the first step", opts: SimulationOptions{SimulateError: true}, wantStep: StepObtener, wantErr: ErrForcedFailure},
		{name: "forced obtener", opts: SimulationOptions{ErrorStep: "obtener"}, wantStep: StepObtener, wantErr: ErrForcedFailure},
		{name: "forced resumir", opts: SimulationOptions{ErrorStep: "resumir"}, wantStep: StepResumir, wantErr: ErrForcedFailure},
		{name: "forced resumir_dia", opts: SimulationOptions{ErrorStep: "resumir_dia"}, wantStep: StepResumirDia, wantErr: ErrForcedFailure},
		{name: "llm error stops at resumir", opts: SimulationOptions{LLMError: true}, wantStep: StepResumir, wantErr: ErrSimulatedLLM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RunSimulation(context.Background(), tt.opts)

			var stepErr *StepError
			assert.Equal(t, true, errors.As(err, &stepErr))
			assert.Equal(t, tt.wantStep, stepErr.Step)
			assert.Equal(t, true, errors.Is(err, tt.wantErr))
		})
	}
}

func TestMockSummarizer(t *testing.T) {
	m := &MockSummarizer{API: "OPENROUTER"}

	resumen, err := m.Resumir(context.Background(), strings.Repeat("x", 80))

	assert.Equal(t, nil, err)
	assert.Equal(t, "Este es un resumen simulado del texto '"+strings.Repeat("x", 50)+"...' generado por OPENROUTER.", resumen)
	assert.Equal(t, "OPENROUTER", m.Name())
}
