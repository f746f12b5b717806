package llm

import (
	"context"
	"io"
)

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Chunk is one incremental fragment of a streamed response.
type Chunk struct {
	Content string
}

// Stream yields response chunks in arrival order. Recv returns io.EOF
// when the stream is complete.
type Stream interface {
	Recv() (Chunk, error)
	Close() error
}

type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}

// StreamingClient additionally supports incremental generation.
type StreamingClient interface {
	Client
	GenerateStream(ctx context.Context, messages []Message) (Stream, error)
}

// singleChunkStream adapts a complete response into a one-chunk stream
// for providers without a streaming API.
type singleChunkStream struct {
	content string
	done    bool
}

func (s *singleChunkStream) Recv() (Chunk, error) {
	if s.done {
		return Chunk{}, io.EOF
	}
	s.done = true
	return Chunk{Content: s.content}, nil
}

func (s *singleChunkStream) Close() error { return nil }

type singleShotStreamer struct {
	Client
}

func (s singleShotStreamer) GenerateStream(ctx context.Context, messages []Message) (Stream, error) {
	resp, err := s.Generate(ctx, messages)
	if err != nil {
		return nil, err
	}
	return &singleChunkStream{content: resp.Content}, nil
}

// WithStreaming returns c unchanged when it already streams, otherwise
// wraps it so the whole response arrives as a single chunk.
func WithStreaming(c Client) StreamingClient {
	if sc, ok := c.(StreamingClient); ok {
		return sc
	}
	return singleShotStreamer{Client: c}
}
