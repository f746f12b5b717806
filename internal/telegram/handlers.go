package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lumina/internal/calendar"
	"lumina/internal/chat"
	"lumina/internal/content"
	"lumina/internal/journal"
	"lumina/internal/trend"
)

const (
	journalPageSize = 10
	insightWindow   = 7

	// streamEditInterval throttles in-place edits while a chat reply is
	// streaming; Telegram rate-limits message edits.
	streamEditInterval = time.Second
)

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// A mood selection waiting for its note consumes the next message.
	if p, ok := b.takePending(msg.Chat.ID); ok {
		b.saveCheckIn(msg.Chat.ID, p, msg.Text)
		return
	}

	b.handleChatMessage(ctx, msg)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendMessage(msg.Chat.ID, "Hello! I'm Lumina, your mood journal.\n\n"+
			"/mood — check in (add a date like /mood 2026-08-30 to backdate)\n"+
			"/journal — recent check-ins\n"+
			"/stats — trends and AI insight\n"+
			"/insight — a fresh reflection on your last week\n"+
			"/calendar — this month at a glance\n"+
			"/hub — learn how to protect yourself and others\n"+
			"/sos — crisis hotlines, right now\n"+
			"/reset — start our conversation over\n\n"+
			"Anything else you write goes to Luminar, my supportive chat companion.")
	case "mood":
		b.handleMoodCommand(msg)
	case "skip":
		if p, ok := b.takePending(msg.Chat.ID); ok {
			b.saveCheckIn(msg.Chat.ID, p, "")
		} else {
			b.sendMessage(msg.Chat.ID, "Nothing to skip. Use /mood to check in.")
		}
	case "journal":
		b.sendMessage(msg.Chat.ID, b.renderJournal())
	case "stats":
		b.sendMessage(msg.Chat.ID, b.renderStats())
	case "insight":
		b.handleInsightCommand(ctx, msg.Chat.ID)
	case "calendar":
		b.sendMessage(msg.Chat.ID, b.renderCalendar(time.Now()))
	case "hub":
		b.sendMessage(msg.Chat.ID, renderHub())
	case "sos":
		b.sendMessage(msg.Chat.ID, renderSOS())
	case "reset":
		b.chats.Reset(msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, "Conversation cleared. I'm still here whenever you need me.")
	default:
		b.sendMessage(msg.Chat.ID, "I don't know that command. Try /start for the list.")
	}
}

func (b *Bot) handleMoodCommand(msg *tgbotapi.Message) {
	at := time.Now()
	if arg := strings.TrimSpace(msg.CommandArguments()); arg != "" {
		day, err := time.ParseInLocation("2006-01-02", arg, time.Local)
		if err != nil {
			b.sendMessage(msg.Chat.ID, "I couldn't read that date. Use /mood YYYY-MM-DD to backdate a check-in.")
			return
		}
		// Attribute backdated check-ins to midday so they land inside
		// the intended calendar day in any nearby timezone.
		at = day.Add(12 * time.Hour)
	}

	var row []tgbotapi.InlineKeyboardButton
	for _, m := range journal.Moods {
		label := fmt.Sprintf("%s %s", m.Emoji, m.Label)
		data := fmt.Sprintf("mood:%d:%d", m.Score, at.UnixMilli())
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, data))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(row)

	out := tgbotapi.NewMessage(msg.Chat.ID, "How are you feeling right now?")
	out.ReplyMarkup = kb
	if _, err := b.api.Send(out); err != nil {
		log.Printf("failed to send mood keyboard: %v", err)
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("failed to ack callback: %v", err)
	}

	parts := strings.Split(cb.Data, ":")
	if len(parts) != 3 || parts[0] != "mood" {
		return
	}
	score, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}
	millis, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return
	}

	b.setPending(cb.Message.Chat.ID, pendingCheckIn{score: score, at: time.UnixMilli(millis)})
	b.sendMessage(cb.Message.Chat.ID, "Want to write about it? Send a note now, or /skip to save without one.")
}

func (b *Bot) saveCheckIn(chatID int64, p pendingCheckIn, note string) {
	entry, err := b.store.Append(p.score, note, p.at)
	switch {
	case errors.Is(err, journal.ErrInvalidScore):
		b.sendMessage(chatID, "That score isn't on the 1-5 scale. Use /mood to try again.")
		return
	case errors.Is(err, journal.ErrPersistence):
		log.Printf("check-in persisted in memory only: %v", err)
	case err != nil:
		log.Printf("check-in failed: %v", err)
		b.sendMessage(chatID, "Something went wrong saving that check-in. Please try again.")
		return
	}

	mood, _ := journal.MoodFor(entry.Score)
	b.sendMessage(chatID, fmt.Sprintf("Saved: %s %s. Small steps matter — you've logged %d moments so far. See /stats for your trends.",
		mood.Emoji, mood.Label, b.store.Len()))
}

func (b *Bot) handleInsightCommand(ctx context.Context, chatID int64) {
	window := b.store.Recent(insightWindow)

	sent, err := b.api.Send(tgbotapi.NewMessage(chatID, "Analyzing your mood patterns..."))
	if err != nil {
		log.Printf("failed to send placeholder: %v", err)
		return
	}

	text := b.insights.AnalyzeTrend(ctx, window)
	edit := tgbotapi.NewEditMessageText(chatID, sent.MessageID, text)
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("failed to edit insight message: %v", err)
	}
}

// handleChatMessage streams Luminar's reply by editing one message in
// place as chunks arrive.
func (b *Bot) handleChatMessage(ctx context.Context, msg *tgbotapi.Message) {
	session := b.chats.Session(msg.Chat.ID)

	sent, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "..."))
	if err != nil {
		log.Printf("failed to send chat placeholder: %v", err)
		return
	}

	var lastEdit time.Time
	onUpdate := func(text string, done bool) {
		if text == "" {
			return
		}
		if !done && time.Since(lastEdit) < streamEditInterval {
			return
		}
		lastEdit = time.Now()
		edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sent.MessageID, text)
		if _, err := b.api.Send(edit); err != nil {
			log.Printf("failed to edit streamed message: %v", err)
		}
	}

	switch err := session.Send(ctx, msg.Text, onUpdate); {
	case errors.Is(err, chat.ErrBusy):
		edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sent.MessageID,
			"One moment — I'm still finishing my previous reply.")
		if _, err := b.api.Send(edit); err != nil {
			log.Printf("failed to edit busy notice: %v", err)
		}
	case errors.Is(err, chat.ErrEmptyMessage):
		// Nothing to answer.
	case err != nil:
		log.Printf("chat send failed: %v", err)
	}
}

func (b *Bot) renderJournal() string {
	entries := b.store.All()
	if len(entries) == 0 {
		return "Your journal is empty. Start by checking in with /mood."
	}
	if len(entries) > journalPageSize {
		entries = entries[:journalPageSize]
	}

	var sb strings.Builder
	sb.WriteString("Your journal — most recent first:\n")
	for _, e := range entries {
		mood, _ := journal.MoodFor(e.Score)
		sb.WriteString(fmt.Sprintf("\n%s %s — %s\n", mood.Emoji, mood.Label, e.Time().Format("Mon, Jan 2 15:04")))
		if e.Note != "" {
			sb.WriteString(fmt.Sprintf("“%s”\n", e.Note))
		} else {
			sb.WriteString("No notes added for this check-in.\n")
		}
	}
	return sb.String()
}

func (b *Bot) renderStats() string {
	entries := b.store.All()
	stats := trend.Summary(entries)
	if stats.Count == 0 {
		return "No check-ins yet. Use /mood to start tracking."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Logs: %d\nAverage mood: %.1f\n", stats.Count, *stats.Average))
	sb.WriteString(fmt.Sprintf("\nLast %d check-ins:\n", trend.SeriesSize))
	for _, p := range trend.RecentSeries(entries, trend.SeriesSize) {
		sb.WriteString(fmt.Sprintf("%-7s %s %d\n", p.Date, strings.Repeat("▮", p.Score), p.Score))
	}
	sb.WriteString("\nUse /insight for a reflection on your week.")
	return sb.String()
}

func (b *Bot) renderCalendar(anchor time.Time) string {
	cells := calendar.MonthGrid(anchor, anchor, time.Now(), b.store.HasEntryOn)

	var sb strings.Builder
	sb.WriteString(anchor.Format("January 2006") + "\n")
	sb.WriteString("Su Mo Tu We Th Fr Sa\n")
	col := 0
	for _, c := range cells {
		switch {
		case c.Padding:
			sb.WriteString("  ")
		case c.HasEntry:
			sb.WriteString(fmt.Sprintf("%2d", c.Day))
		default:
			sb.WriteString(" ·")
		}
		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\nNumbered days have a check-in.")
	return sb.String()
}

func renderHub() string {
	var sb strings.Builder
	sb.WriteString("Knowledge Hub — learn how to protect yourself and others.\n")
	for _, a := range content.Articles {
		sb.WriteString(fmt.Sprintf("\n[%s] %s\n%s\n", strings.ToUpper(string(a.Category)), a.Title, a.Content))
	}
	return sb.String()
}

func renderSOS() string {
	var sb strings.Builder
	sb.WriteString("GET HELP NOW\n\nIf you are in immediate danger, please call your local emergency services immediately. You are not alone.\n")
	for _, c := range content.EmergencyContacts {
		sb.WriteString(fmt.Sprintf("\n%s\nCall %s\n%s\n", c.Name, c.Number, c.Description))
	}
	sb.WriteString("\nQuick tips: hold something cold to ground yourself; focus on taking 5 slow breaths.")
	return sb.String()
}
