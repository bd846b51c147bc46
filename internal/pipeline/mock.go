package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

// MockStore stands in for the database during the pipeline simulation. It
// serves fixed avisos and records what the steps write.
type MockStore struct {
	now func() time.Time

	Insertados       []int64
	Resumenes        map[int64]string
	ResumenesDiarios map[string]string
	FailInsert       bool
}

func NewMockStore(now func() time.Time) *MockStore {
	if now == nil {
		now = time.Now
	}
	slog.Info("mock store initialized")
	return &MockStore{
		now:              now,
		Resumenes:        map[int64]string{},
		ResumenesDiarios: map[string]string{},
	}
}

func (s *MockStore) AvisosParaScraping(_ context.Context, diasAtras int) ([]model.Aviso, error) {
	slog.Info("mock store: fetching avisos for scraping", "dias_atras", diasAtras)

	fecha := s.now().AddDate(0, 0, -diasAtras)

	switch diasAtras {
	case 0:
		return []model.Aviso{
			{ID: 1001, Titulo: "Título de Aviso 1 (Scraping Hoy)", Texto: "Texto completo del aviso 1 hoy...", Enlace: "http://example.com/aviso1_hoy", FechaPublicacion: fecha},
			{ID: 1002, Titulo: "Título de Aviso 2 (Scraping Hoy)", Texto: "Texto completo del aviso 2 hoy...", Enlace: "http://example.com/aviso2_hoy", FechaPublicacion: fecha},
		}, nil
	case 1:
		return []model.Aviso{
			{ID: 999, Titulo: "Título de Aviso A (Scraping Ayer)", Texto: "Texto completo del aviso A ayer...", Enlace: "http://example.com/avisoA_ayer", FechaPublicacion: fecha},
			{ID: 1000, Titulo: "Título de Aviso B (Scraping Ayer)", Texto: "Texto completo del aviso B ayer...", Enlace: "http://example.com/avisoB_ayer", FechaPublicacion: fecha},
		}, nil
	}

	return nil, nil
}

func (s *MockStore) InsertarAviso(_ context.Context, aviso model.Aviso) error {
	slog.Info("mock store: inserting aviso", "aviso_id", aviso.ID)
	if s.FailInsert {
		return fmt.Errorf("inserting aviso %d: %w", aviso.ID, ErrForcedFailure)
	}
	s.Insertados = append(s.Insertados, aviso.ID)
	return nil
}

func (s *MockStore) GetPendientesResumir(_ context.Context, _ int) ([]model.Aviso, error) {
	slog.Info("mock store: fetching pending avisos")
	return []model.Aviso{
		{ID: 2001, Texto: "Este es un texto largo para ser resumido por el LLM simulado. Contiene mucha información relevante y algunos detalles que deberían ser compactados en un resumen conciso."},
		{ID: 2002, Texto: "Otro texto de ejemplo, quizás un poco más corto, pero aún lo suficientemente largo como para requerir un resumen. La idea es simular el proceso real."},
	}, nil
}

func (s *MockStore) GuardarResumen(_ context.Context, id int64, resumen, modelo string) error {
	slog.Info("mock store: saving summary", "aviso_id", id, "model", modelo, "resumen", preview(resumen, 50))
	s.Resumenes[id] = resumen
	return nil
}

func (s *MockStore) ExisteResumenDiario(_ context.Context, fecha time.Time) (bool, error) {
	slog.Info("mock store: checking daily summary", "fecha", fecha.Format(model.DateLayout))
	return false, nil
}

func (s *MockStore) GetResumenesDelDia(_ context.Context, fecha time.Time) (string, error) {
	dia := fecha.Format(model.DateLayout)
	slog.Info("mock store: fetching summaries of the day", "fecha", dia)
	return fmt.Sprintf("Resumen simulado 1 para %s. Resumen simulado 2 para %s. Resumen simulado 3 para %s.", dia, dia, dia), nil
}

func (s *MockStore) GuardarResumenDiario(_ context.Context, fecha time.Time, resumen, modelo string) error {
	dia := fecha.Format(model.DateLayout)
	slog.Info("mock store: saving daily summary", "fecha", dia, "model", modelo, "resumen", preview(resumen, 50))
	s.ResumenesDiarios[dia] = resumen
	return nil
}

// MockSummarizer answers with a canned summary naming the selected API.
type MockSummarizer struct {
	API  string
	Fail bool
}

func (m *MockSummarizer) Name() string {
	return m.API
}

func (m *MockSummarizer) Resumir(_ context.Context, texto string) (string, error) {
	slog.Info("mock llm: generating summary", "api", m.API, "text_length", len(texto))
	if m.Fail {
		return "", ErrSimulatedLLM
	}
	return fmt.Sprintf("Este es un resumen simulado del texto '%s...' generado por %s.", preview(texto, 50), m.API), nil
}

func (m *MockSummarizer) ResumirDia(ctx context.Context, contenido string) (string, error) {
	return m.Resumir(ctx, contenido)
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
