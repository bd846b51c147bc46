package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/go-playground/assert/v2"
)

func TestAnthropicClientResumirDia(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          "msg_01",
			"type":        "message",
			"role":        "assistant",
			"model":       "claude-haiku-4-5",
			"stop_reason": "end_turn",
			"content": []map[string]interface{}{
				{"type": "text", "text": "Hoy se publicaron **dos** decretos.\n|||\nVer [aviso:2]."},
			},
			"usage": map[string]interface{}{"input_tokens": 10, "output_tokens": 12},
		})
	}))
	defer srv.Close()

	client := NewAnthropicClient("test-key", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	resumen, err := client.ResumirDia(context.Background(), "[aviso:2] Decreto 2/2025\nResumen.")

	assert.Equal(t, nil, err)
	assert.Equal(t, "/v1/messages", path)
	assert.Equal(t, "Hoy se publicaron **dos** decretos.\n|||\nVer [aviso:2].", resumen)
}
