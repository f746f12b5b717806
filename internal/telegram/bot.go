package telegram

import (
	"context"
	"log"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lumina/internal/chat"
	"lumina/internal/insight"
	"lumina/internal/journal"
)

// pendingCheckIn is a mood selection waiting for its optional note.
type pendingCheckIn struct {
	score int
	at    time.Time
}

type Bot struct {
	api      *tgbotapi.BotAPI
	store    *journal.Store
	insights *insight.Service
	chats    *chat.Manager

	mu      sync.Mutex
	pending map[int64]pendingCheckIn
}

func New(botToken string, store *journal.Store, insights *insight.Service, chats *chat.Manager) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		store:    store,
		insights: insights,
		chats:    chats,
		pending:  make(map[int64]pendingCheckIn),
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				go b.handleIncomingMessage(ctx, update.Message)
				continue
			}
			if update.CallbackQuery != nil {
				b.handleCallback(update.CallbackQuery)
				continue
			}
		}
	}
}

// SendReminder posts the daily check-in nudge to the given chat.
func (b *Bot) SendReminder(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Hi! How are you feeling today? Use /mood to check in.")
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) setPending(chatID int64, p pendingCheckIn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[chatID] = p
}

func (b *Bot) takePending(chatID int64) (pendingCheckIn, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.pending[chatID]
	if ok {
		delete(b.pending, chatID)
	}
	return p, ok
}
