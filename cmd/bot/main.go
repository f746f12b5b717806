package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"lumina/internal/chat"
	"lumina/internal/config"
	"lumina/internal/insight"
	"lumina/internal/journal"
	"lumina/internal/llm"
	"lumina/internal/scheduler"
	"lumina/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	var repo journal.Repository
	if cfg.JournalFilePath != "" {
		fr, err := journal.NewFileRepository(cfg.JournalFilePath)
		if err != nil {
			log.Printf("failed to init journal file repo, falling back to memory: %v", err)
		} else {
			repo = fr
		}
	}
	store := journal.NewStore(repo)
	log.Printf("journal loaded: %d entries", store.Len())

	llmClient, err := llm.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	bot, err := telegram.New(
		cfg.TelegramBotToken,
		store,
		insight.New(llmClient),
		chat.NewManager(llmClient),
	)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if cfg.ReminderChatID != 0 && cfg.ReminderCron != "" {
		sched := scheduler.New()
		sched.SetReminderFunction(func(ctx context.Context) error {
			return bot.SendReminder(cfg.ReminderChatID)
		})
		if err := sched.Start(cfg.ReminderCron); err != nil {
			log.Printf("failed to start reminder scheduler: %v", err)
		} else {
			defer sched.Stop()
		}
	}

	bot.Start(context.Background())
}
