// Command mcp-server exposes the mood journal over MCP stdio so
// external assistants can log check-ins and read trends.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"lumina/internal/insight"
	"lumina/internal/journal"
	"lumina/internal/llm"
	"lumina/internal/trend"
)

// LogMoodParams are the arguments for the log_mood tool.
type LogMoodParams struct {
	Score int    `json:"score" mcp:"mood score on the 1-5 scale (1=Crisis, 5=Great)"`
	Note  string `json:"note,omitempty" mcp:"optional free-text note for the check-in"`
	Date  string `json:"date,omitempty" mcp:"optional YYYY-MM-DD day to attribute the check-in to (defaults to now)"`
}

// ListEntriesParams are the arguments for the list_entries tool.
type ListEntriesParams struct {
	Limit int `json:"limit,omitempty" mcp:"maximum number of entries to return, most recent first (default: 20)"`
}

// SummaryParams are the arguments for the mood_summary tool.
type SummaryParams struct{}

// InsightParams are the arguments for the mood_insight tool.
type InsightParams struct{}

type journalServer struct {
	store    *journal.Store
	insights *insight.Service
}

func (s *journalServer) LogMood(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[LogMoodParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments

	at := time.Now()
	if args.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", args.Date, time.Local)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", args.Date)), nil
		}
		at = day.Add(12 * time.Hour)
	}

	entry, err := s.store.Append(args.Score, args.Note, at)
	switch {
	case errors.Is(err, journal.ErrPersistence):
		log.Printf("check-in persisted in memory only: %v", err)
	case err != nil:
		return errorResult(fmt.Sprintf("failed to log mood: %v", err)), nil
	}

	mood, _ := journal.MoodFor(entry.Score)
	return textResult(fmt.Sprintf("Logged %s %s (id %s). Total check-ins: %d.",
		mood.Emoji, mood.Label, entry.ID, s.store.Len())), nil
}

func (s *journalServer) ListEntries(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ListEntriesParams]) (*mcp.CallToolResultFor[any], error) {
	limit := params.Arguments.Limit
	if limit <= 0 {
		limit = 20
	}

	entries := s.store.All()
	if len(entries) > limit {
		entries = entries[:limit]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("failed to encode entries: %v", err)), nil
	}
	return textResult(string(data)), nil
}

func (s *journalServer) Summary(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[SummaryParams]) (*mcp.CallToolResultFor[any], error) {
	entries := s.store.All()
	stats := trend.Summary(entries)

	out := struct {
		trend.Stats
		Series []trend.Point `json:"series"`
	}{
		Stats:  stats,
		Series: trend.RecentSeries(entries, trend.SeriesSize),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("failed to encode summary: %v", err)), nil
	}
	return textResult(string(data)), nil
}

func (s *journalServer) Insight(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[InsightParams]) (*mcp.CallToolResultFor[any], error) {
	return textResult(s.insights.AnalyzeTrend(ctx, s.store.Recent(7))), nil
}

func textResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	path := os.Getenv("JOURNAL_FILE_PATH")
	if path == "" {
		path = "data/mood_logs.json"
	}

	repo, err := journal.NewFileRepository(path)
	if err != nil {
		log.Fatalf("failed to init journal file repo: %v", err)
	}
	store := journal.NewStore(repo)

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	llmClient := llm.NewOpenAI(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_BASE_URL"), model, llm.DefaultSampling)

	srv := &journalServer{store: store, insights: insight.New(llmClient)}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "lumina-journal-mcp",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_mood",
		Description: "Logs a mood check-in (score 1-5, optional note, optional backdate)",
	}, srv.LogMood)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_entries",
		Description: "Lists recent mood check-ins, most recent first",
	}, srv.ListEntries)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mood_summary",
		Description: "Returns check-in count, average score and the recent score series",
	}, srv.Summary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mood_insight",
		Description: "Generates a short supportive reflection from the last week of check-ins",
	}, srv.Insight)

	log.Printf("starting Lumina journal MCP server on stdin/stdout (journal: %s)", path)

	transport := mcp.NewStdioTransport()
	if err := server.Run(context.Background(), transport); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
