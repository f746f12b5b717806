package llm

import (
	"fmt"
	"strings"

	"lumina/internal/config"
)

// NewFromConfig builds the provider the config selects. YandexGPT has
// no streaming call, so its client is adapted to deliver the whole
// response as one chunk.
func NewFromConfig(cfg *config.Config) (StreamingClient, error) {
	switch strings.ToLower(string(cfg.LLMProvider)) {
	case string(config.ProviderOpenAI):
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, DefaultSampling), nil
	case string(config.ProviderYandex):
		c, err := NewYandex(cfg.YandexOAuthToken, cfg.YandexFolderID)
		if err != nil {
			return nil, err
		}
		return WithStreaming(c), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
