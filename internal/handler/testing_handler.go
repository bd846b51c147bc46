package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/pipeline"
	"github.com/nrmattar-dev/boletin-no-oficial/pkg/llm"
)

// OutcomeObserver receives "success" or the name of the failed step.
type OutcomeObserver func(outcome string)

type TestingHandler struct {
	pause   time.Duration
	observe OutcomeObserver
}

func NewTestingHandler(pause time.Duration, observe OutcomeObserver) *TestingHandler {
	return &TestingHandler{pause: pause, observe: observe}
}

// RunTesting runs the mocked obtener, resumir and resumir_dia flow.
func (h *TestingHandler) RunTesting(c *gin.Context) {
	api := strings.ToUpper(strings.TrimSpace(c.Query("api_seleccionada")))
	if api == "" {
		api = llm.ProviderGemini
	}

	opts := pipeline.SimulationOptions{
		SimulateError: getQueryBool("simulate_error", c),
		ErrorStep:     strings.TrimSpace(c.Query("simulate_error_step")),
		LLMError:      getQueryBool("simulate_llm_error", c),
		API:           api,
		Delay:         h.pause,
	}

	err := pipeline.RunSimulation(c.Request.Context(), opts)
	if err != nil {
		step := "unknown"
		var stepErr *pipeline.StepError
		if errors.As(err, &stepErr) {
			step = stepErr.Step
		}

		slog.Error("testing flow failed", "step", step, "error", err)
		h.record(step)
		c.JSON(http.StatusInternalServerError, TestingResponse{
			Error: fmt.Sprintf("Testing failed: %s simulation had an error.", step),
		})
		return
	}

	h.record("success")
	c.JSON(http.StatusOK, TestingResponse{Message: "Testing flow completed successfully."})
}

func (h *TestingHandler) record(outcome string) {
	if h.observe != nil {
		h.observe(outcome)
	}
}
