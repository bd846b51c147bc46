package llm

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Se designa a **Juan Pérez**.",
			want:  "Se designa a **Juan Pérez**.",
		},
		{
			name:  "strips markdown fenced block",
			input: "```markdown\nSe designa a **Juan Pérez**.\n```",
			want:  "Se designa a **Juan Pérez**.",
		},
		{
			name:  "strips plain fenced block",
			input: "```\nTexto\n```",
			want:  "Texto",
		},
		{
			name:  "strips leading label",
			input: "  Resumen: Se prorroga el plazo.  ",
			want:  "Se prorroga el plazo.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	_, err := NewFromEnv("GEMINI")
	assert.Equal(t, true, errors.Is(err, ErrMissingAPIKey))

	_, err = NewFromEnv("BARD")
	assert.Equal(t, true, errors.Is(err, ErrUnknownProvider))

	client, err := NewFromEnv(" anthropic ")
	assert.Equal(t, nil, err)
	assert.Equal(t, "claude-4.5-haiku", client.Name())
}
