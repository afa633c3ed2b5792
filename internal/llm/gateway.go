package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Completer is the single-operation contract for a text-completion
// backend. The orchestrator and tests depend on this seam, not on a
// concrete provider.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ErrorMarkerPrefix prefixes section content produced from a failed
// generation call so a human reading the summary can recognize the
// degraded text.
const ErrorMarkerPrefix = "Unexpected error: "

// Gateway wraps a Completer with the degraded-text recovery policy:
// a failed call never propagates an error, it yields the literal
// "Unexpected error: <cause>" marker as section content instead.
type Gateway struct {
	completer Completer
}

// NewGateway creates a gateway over the given completer.
func NewGateway(completer Completer) *Gateway {
	return &Gateway{completer: completer}
}

// Generate returns the completion for one (system, user) prompt pair,
// or the error-marker string when the call fails.
func (g *Gateway) Generate(ctx context.Context, system, user string) string {
	text, err := g.completer.Complete(ctx, system, user)
	if err != nil {
		log.Warn().Err(err).Msg("text generation failed, embedding error marker")
		return fmt.Sprintf("%s%v", ErrorMarkerPrefix, err)
	}
	return text
}
