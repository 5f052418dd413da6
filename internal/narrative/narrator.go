// Package narrative turns numeric affordability verdicts into human-readable
// explanations via an external language model. The capability is strictly
// best-effort: every verdict must be fully computable when this package's
// providers are unconfigured, unreachable or failing.
package narrative

import (
	"context"

	"github.com/castlewood/finsight/internal/model"
)

// Narrator produces a natural-language explanation for a structured decision
// summary, or fails. Callers must treat failure as non-fatal.
type Narrator interface {
	Explain(ctx context.Context, summary Summary) (string, error)
}

// Summary is the structured decision handed to a narrator: the verdict, the
// decision type and the key numbers behind it. Narrators never receive free
// text in.
type Summary struct {
	Figures    map[string]float64
	Type       model.DecisionType
	Subject    string
	Affordable bool
}

// Config holds narrator provider settings.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}
