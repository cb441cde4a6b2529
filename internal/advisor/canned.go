package advisor

import (
	"context"
	"time"
)

// FixedReply is the advisory text the canned backend always returns.
const FixedReply = "I'm analyzing your request. Based on current market conditions in that area, I'd recommend considering a strong offer with fewer contingencies to stand out among other buyers. Would you like me to help draft an offer letter for you?"

// CannedProvider is an offline stand-in for a real assistant backend. It
// mimics the interface and behavior (timeouts, one reply per request) so the
// rest of the app can remain non-blocking while real API wiring is added
// later.
type CannedProvider struct{}

func NewCannedProvider() *CannedProvider {
	return &CannedProvider{}
}

func (p *CannedProvider) Reply(ctx context.Context, transcript []Turn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_ = transcript
	return FixedReply, nil
}
