package narrative

import (
	"fmt"
	"strings"
)

// NewNarrator creates a narrator for the configured provider. An empty
// provider returns (nil, nil): narration is optional and a nil Narrator means
// the decision engine runs fully offline with templated reasoning.
func NewNarrator(cfg Config) (Narrator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "":
		return nil, nil
	case "anthropic":
		return newAnthropicNarrator(cfg)
	case "openai":
		return newOpenAINarrator(cfg)
	default:
		return nil, fmt.Errorf("unsupported narrative provider: %s", cfg.Provider)
	}
}
