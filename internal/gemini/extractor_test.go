package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/adnan/news_geo_api/internal/config"
)

// mockGeminiClient - мок для тестирования Extractor
type mockGeminiClient struct {
	generateTextFunc func(ctx context.Context, model string, prompt string) (string, error)
	calls            int
}

func (m *mockGeminiClient) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	m.calls++
	if m.generateTextFunc != nil {
		return m.generateTextFunc(ctx, model, prompt)
	}
	return "", errors.New("not implemented")
}

func TestExtractor_Extract(t *testing.T) {
	cfg := config.Gemini{ModelExtraction: "gemini-2.5-flash"}

	tests := []struct {
		name     string
		text     string
		mockFunc func(ctx context.Context, model string, prompt string) (string, error)
		wantErr  bool
		want     []string
	}{
		{
			name: "plain json array",
			text: "Flooding hits Karachi as rains lash Sindh",
			mockFunc: func(ctx context.Context, model string, prompt string) (string, error) {
				return `["Karachi", "Sindh"]`, nil
			},
			want: []string{"Karachi", "Sindh"},
		},
		{
			name: "duplicates preserved in order",
			text: "Karachi protests: Karachi port closed",
			mockFunc: func(ctx context.Context, model string, prompt string) (string, error) {
				return `["Karachi", "Karachi"]`, nil
			},
			want: []string{"Karachi", "Karachi"},
		},
		{
			name: "json wrapped in markdown block",
			text: "Earthquake near Islamabad",
			mockFunc: func(ctx context.Context, model string, prompt string) (string, error) {
				return "```json\n[\"Islamabad\"]\n```", nil
			},
			want: []string{"Islamabad"},
		},
		{
			name: "json with surrounding commentary",
			text: "Talks in London and Paris",
			mockFunc: func(ctx context.Context, model string, prompt string) (string, error) {
				return `Here are the entities: ["London", "Paris"] as requested.`, nil
			},
			want: []string{"London", "Paris"},
		},
		{
			name: "empty array when no places",
			text: "Stock market rallies on earnings",
			mockFunc: func(ctx context.Context, model string, prompt string) (string, error) {
				return `[]`, nil
			},
			want: []string{},
		},
		{
			name: "blank entries are dropped",
			text: "News from Lahore",
			mockFunc: func(ctx context.Context, model string, prompt string) (string, error) {
				return `["Lahore", "  ", ""]`, nil
			},
			want: []string{"Lahore"},
		},
		{
			name: "api error",
			text: "Some news",
			mockFunc: func(ctx context.Context, model string, prompt string) (string, error) {
				return "", errors.New("api error")
			},
			wantErr: true,
		},
		{
			name: "unparseable response",
			text: "Some news",
			mockFunc: func(ctx context.Context, model string, prompt string) (string, error) {
				return "no json here", nil
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &mockGeminiClient{generateTextFunc: tt.mockFunc}
			extractor := NewExtractor(mockClient, cfg)

			got, err := extractor.Extract(context.Background(), tt.text)

			if (err != nil) != tt.wantErr {
				t.Errorf("Extract() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Extract() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Extract()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractor_EmptyTextSkipsAPICall(t *testing.T) {
	mockClient := &mockGeminiClient{}
	extractor := NewExtractor(mockClient, config.Gemini{})

	got, err := extractor.Extract(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Extract() = %v, want empty", got)
	}
	if mockClient.calls != 0 {
		t.Errorf("Extract() made %d API calls for empty text, want 0", mockClient.calls)
	}
}

func TestExtractor_extractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "pure json",
			text: `["Karachi"]`,
			want: `["Karachi"]`,
		},
		{
			name: "json with prefix and suffix",
			text: `Prefix ["Karachi","Sindh"] Suffix`,
			want: `["Karachi","Sindh"]`,
		},
		{
			name: "markdown json block",
			text: "```json\n[\"Karachi\"]\n```",
			want: `["Karachi"]`,
		},
		{
			name: "plain markdown block",
			text: "```\n[\"Karachi\"]\n```",
			want: `["Karachi"]`,
		},
		{
			name: "no json",
			text: `Just text without json`,
			want: ``,
		},
		{
			name: "nested arrays",
			text: `Result: [["a"],["b"]] done`,
			want: `[["a"],["b"]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.text); got != tt.want {
				t.Errorf("extractJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}
