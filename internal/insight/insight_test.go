package insight

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"lumina/internal/journal"
	"lumina/internal/llm"
)

type fakeClient struct {
	calls    int
	lastMsgs []llm.Message
	resp     llm.Response
	err      error
}

func (f *fakeClient) Generate(ctx context.Context, messages []llm.Message) (llm.Response, error) {
	f.calls++
	f.lastMsgs = messages
	return f.resp, f.err
}

func window(scores ...int) []journal.Entry {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var out []journal.Entry
	for i, s := range scores {
		out = append(out, journal.Entry{
			Timestamp: base.AddDate(0, 0, i).UnixMilli(),
			Score:     s,
			Note:      "note",
		})
	}
	return out
}

func TestAnalyzeTrendEmptyWindow(t *testing.T) {
	fc := &fakeClient{}
	svc := New(fc)

	got := svc.AnalyzeTrend(context.Background(), nil)
	if got != "Start tracking your mood to see insights here." {
		t.Fatalf("unexpected empty-window text: %q", got)
	}
	if fc.calls != 0 {
		t.Fatalf("empty window must not issue a network call, got %d", fc.calls)
	}
}

func TestAnalyzeTrendSuccess(t *testing.T) {
	fc := &fakeClient{resp: llm.Response{Content: "You are doing great, keep it up."}}
	svc := New(fc)

	got := svc.AnalyzeTrend(context.Background(), window(4, 5, 4))
	if got != "You are doing great, keep it up." {
		t.Fatalf("provider text not returned verbatim: %q", got)
	}
	if fc.calls != 1 {
		t.Fatalf("want exactly one call, got %d", fc.calls)
	}

	prompt := fc.lastMsgs[len(fc.lastMsgs)-1].Content
	if !strings.Contains(prompt, "Score: 4, Note: note") {
		t.Fatalf("prompt missing formatted log line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "compassionate") {
		t.Fatalf("prompt missing instruction:\n%s", prompt)
	}
}

func TestAnalyzeTrendProviderFailure(t *testing.T) {
	fc := &fakeClient{err: errors.New("rate limited")}
	svc := New(fc)

	got := svc.AnalyzeTrend(context.Background(), window(1, 2, 1))
	if got != "Keep taking care of yourself. Remember that support is always available." {
		t.Fatalf("unexpected fallback text: %q", got)
	}
}

func TestAnalyzeTrendEmptyProviderText(t *testing.T) {
	fc := &fakeClient{resp: llm.Response{Content: "  \n"}}
	svc := New(fc)

	got := svc.AnalyzeTrend(context.Background(), window(3))
	if got != "Unable to generate insights at this time." {
		t.Fatalf("blank provider text must map to the fixed notice, got %q", got)
	}
}
