package advisor

import "context"

// Generator produces assistant replies and conversation titles.
//
// Implementations never return an error: when the generative backend is
// unreachable, misconfigured, or answers with garbage they degrade to a
// deterministic offline fallback. The conversation flow must never be
// blocked by backend unavailability.
type Generator interface {
	// GenerateReply turns raw user text into assistant reply text.
	GenerateReply(ctx context.Context, text string) string
	// GenerateTitle reduces the first user message to a short
	// conversation title of at most five words.
	GenerateTitle(ctx context.Context, text string) string
}
