// Package insight generates a short supportive reflection from a
// window of recent check-ins. Generation is best-effort: the service
// never returns an error, only fixed fallback text.
package insight

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"lumina/internal/journal"
	"lumina/internal/llm"
)

const (
	// EmptyLogText is returned without any network call when there is
	// nothing to analyze yet.
	EmptyLogText = "Start tracking your mood to see insights here."
	// NoContentText covers a successful call with an empty text field.
	NoContentText = "Unable to generate insights at this time."
	// FallbackText covers any transport or provider failure.
	FallbackText = "Keep taking care of yourself. Remember that support is always available."
)

const instruction = "You are a compassionate mental health AI assistant. " +
	"Based on the following recent mood logs, provide a brief (2-3 sentence) supportive summary. " +
	"If the mood scores are consistently low (1 or 2), gently encourage the user to reach out " +
	"to their support system or use the SOS feature in the app."

const requestTimeout = 30 * time.Second

type Service struct {
	client llm.Client
}

func New(client llm.Client) *Service {
	return &Service{client: client}
}

// AnalyzeTrend submits the given window (callers pass the last 7
// entries) and returns the reflection text. Provider failures are
// logged and converted to FallbackText; the call never panics or
// propagates an error.
func (s *Service) AnalyzeTrend(ctx context.Context, entries []journal.Entry) string {
	if len(entries) == 0 {
		return EmptyLogText
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := s.client.Generate(ctx, []llm.Message{
		{Role: "user", Content: buildPrompt(entries)},
	})
	if err != nil {
		log.Printf("insight generation failed: %v", err)
		return FallbackText
	}
	if strings.TrimSpace(resp.Content) == "" {
		return NoContentText
	}
	return resp.Content
}

func buildPrompt(entries []journal.Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("Score: %d, Note: %s", e.Score, e.Note))
	}
	return instruction + "\n\nLogs:\n" + strings.Join(lines, "\n")
}
