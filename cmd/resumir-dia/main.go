package main

import (
	"context"
	"log"
	"log/slog"
	"os"
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

	fecha := time.Now()
	if v := os.Getenv("FECHA"); v != "" {
		parsed, err := time.Parse(model.DateLayout, v)
		if err != nil {
			log.Fatalf("invalid FECHA %q, expected YYYY-MM-DD: %v", v, err)
		}
		fecha = parsed
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

	result, err := pipeline.ResumirDia(context.Background(), store, summarizer, fecha)
	if err != nil {
		log.Fatalf("error generating daily summary: %v", err)
	}

	if result.Omitido {
		slog.Info("daily summary skipped", "fecha", fecha.Format(model.DateLayout))
		return
	}

	slog.Info("daily summary generated", "fecha", fecha.Format(model.DateLayout), "model", summarizer.Name())
}
