// Package chat maintains the conversation with the supportive
// assistant: a growing transcript plus a state machine that serializes
// streaming turns and folds response chunks into the last message.
package chat

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	"lumina/internal/llm"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript turn. Assistant messages grow in place
// while their stream is active and are immutable afterwards.
type Message struct {
	Role Role
	Text string
}

var (
	// ErrEmptyMessage rejects blank or whitespace-only input.
	ErrEmptyMessage = errors.New("chat: empty message")
	// ErrBusy rejects a send while a previous turn is still streaming.
	ErrBusy = errors.New("chat: a response is still streaming")
)

// UpdateFunc observes the assistant message as it grows. It receives
// the accumulated text after each chunk and once more when the turn
// completes.
type UpdateFunc func(text string, done bool)

// Session holds one conversation. The provider itself is stateless;
// the transcript is replayed on every send, so the session is the
// single source of conversational memory. Safe for concurrent use,
// though only one Send may be active at a time.
type Session struct {
	mu         sync.Mutex
	client     llm.StreamingClient
	transcript []Message
	streaming  bool
}

func NewSession(client llm.StreamingClient) *Session {
	return &Session{client: client}
}

// Send appends the user message and streams the assistant reply into
// the transcript. Blank input returns ErrEmptyMessage and a send
// during an active stream returns ErrBusy; in both cases the
// transcript is untouched. Provider failures never surface as errors:
// a turn that produced no content is replaced with a fixed fallback
// that reiterates the SOS escalation path.
func (s *Session) Send(ctx context.Context, userText string, onUpdate UpdateFunc) error {
	if strings.TrimSpace(userText) == "" {
		return ErrEmptyMessage
	}

	s.mu.Lock()
	if s.streaming {
		s.mu.Unlock()
		return ErrBusy
	}
	s.streaming = true
	s.transcript = append(s.transcript,
		Message{Role: RoleUser, Text: userText},
		Message{Role: RoleAssistant},
	)
	msgs := s.contextLocked()
	s.mu.Unlock()

	received := s.consumeStream(ctx, msgs, onUpdate)

	s.mu.Lock()
	if received == 0 {
		s.transcript[len(s.transcript)-1].Text = streamFallback
	}
	final := s.transcript[len(s.transcript)-1].Text
	s.streaming = false
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(final, true)
	}
	return nil
}

// consumeStream folds chunks into the last transcript message and
// returns how many chunks arrived before completion or failure.
func (s *Session) consumeStream(ctx context.Context, msgs []llm.Message, onUpdate UpdateFunc) int {
	stream, err := s.client.GenerateStream(ctx, msgs)
	if err != nil {
		log.Printf("chat stream init failed: %v", err)
		return 0
	}
	defer func() {
		if err := stream.Close(); err != nil {
			log.Printf("chat stream close: %v", err)
		}
	}()

	received := 0
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			return received
		}
		if err != nil {
			log.Printf("chat stream failed after %d chunks: %v", received, err)
			return received
		}
		if chunk.Content == "" {
			continue
		}
		received++
		s.appendChunk(chunk.Content, onUpdate)
	}
}

func (s *Session) appendChunk(content string, onUpdate UpdateFunc) {
	s.mu.Lock()
	last := len(s.transcript) - 1
	s.transcript[last].Text += content
	text := s.transcript[last].Text
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(text, false)
	}
}

// contextLocked builds the provider request: the fixed system prompt
// followed by the transcript, skipping the still-empty assistant slot.
func (s *Session) contextLocked() []llm.Message {
	msgs := make([]llm.Message, 0, len(s.transcript)+1)
	msgs = append(msgs, llm.Message{Role: "system", Content: SystemPrompt})
	for _, m := range s.transcript {
		if m.Role == RoleAssistant && m.Text == "" {
			continue
		}
		msgs = append(msgs, llm.Message{Role: string(m.Role), Content: m.Text})
	}
	return msgs
}

// Transcript returns a copy of the conversation in strict append order.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Streaming reports whether an assistant turn is currently active.
func (s *Session) Streaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaming
}
