package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Sampling fixes the creativity settings applied to every request.
type Sampling struct {
	Temperature float32
	TopP        float32
}

// DefaultSampling is the moderate-creativity profile used for both the
// insight and chat call shapes.
var DefaultSampling = Sampling{Temperature: 0.7, TopP: 0.95}

type OpenAIClient struct {
	client   *openai.Client
	model    string
	sampling Sampling
}

func NewOpenAI(apiKey, baseURL, model string, sampling Sampling) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:   openai.NewClientWithConfig(config),
		model:    model,
		sampling: sampling,
	}
}

func (c *OpenAIClient) request(messages []Message) openai.ChatCompletionRequest {
	var oaMsgs []openai.ChatCompletionMessage
	for _, m := range messages {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		Temperature: c.sampling.Temperature,
		TopP:        c.sampling.TopP,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.request(messages))
	if err != nil {
		return Response{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	return Response{
		Content:          resp.Choices[0].Message.Content,
		Model:            c.model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}

func (c *OpenAIClient) GenerateStream(ctx context.Context, messages []Message) (Stream, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, c.request(messages))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion stream: %w", err)
	}
	return &openAIStream{stream: stream}, nil
}

type openAIStream struct {
	stream *openai.ChatCompletionStream
}

// Recv passes through the provider's delta fragments; io.EOF from the
// underlying stream marks normal completion.
func (s *openAIStream) Recv() (Chunk, error) {
	resp, err := s.stream.Recv()
	if err != nil {
		return Chunk{}, err
	}
	if len(resp.Choices) == 0 {
		return Chunk{}, nil
	}
	return Chunk{Content: resp.Choices[0].Delta.Content}, nil
}

func (s *openAIStream) Close() error {
	return s.stream.Close()
}
