package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/nrmattar-dev/boletin-no-oficial/db"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/pipeline"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/repository"
	"github.com/nrmattar-dev/boletin-no-oficial/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	limit := model.AvisosPorPagina
	if v := os.Getenv("RESUMIR_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Fatalf("invalid RESUMIR_LIMIT %q", v)
		}
		limit = n
	}

	delay := 2 * time.Second
	if v := os.Getenv("RESUMIR_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid RESUMIR_DELAY %q: %v", v, err)
		}
		delay = d
	}

	provider := os.Getenv("API_SELECCIONADA")
	if provider == "" {
		provider = llm.ProviderGemini
	}

	summarizer, err := llm.NewFromEnv(provider)
	if err != nil {
		log.Fatalf("error creating LLM client: %v", err)
	}

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	store := repository.NewStore(db.DB, model.DefaultSource)

	result, err := pipeline.Resumir(context.Background(), store, summarizer, pipeline.ResumirOptions{
		Limit: limit,
		Delay: delay,
	})
	if err != nil {
		log.Fatalf("error summarizing avisos: %v", err)
	}

	slog.Info("summarization finished", "model", summarizer.Name(), "processed", result.Procesados, "failed", result.Fallidos)
}
