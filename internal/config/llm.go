package config

import (
	"os"
	"strings"
	"sync"
)

// LLMConfig selects which live provider backs the text-generation gateway.
// An empty or unknown provider, or a provider without an API key, means the
// deterministic stand-in is used.
type LLMConfig struct {
	Provider  string
	MaxTokens int
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		llmConfig = &LLMConfig{
			Provider:  strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER"))),
			MaxTokens: 4096,
		}
	})
	return llmConfig
}
