// Package backoff provides the retry helper shared by both channel clients,
// so WhatsApp and email keep identical backoff semantics.
package backoff

import (
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// Linear runs op up to attempts times, sleeping step*attemptNumber between
// failed attempts (1s, 2s, ... with a 1s step). It returns nil on the first
// success, or a single aggregated error carrying the attempt count and the
// last underlying error once attempts are exhausted.
func Linear(attempts int, step time.Duration, op func() error) error {
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}

		zlog.Logger.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Int("attempts", attempts).
			Msg("attempt failed")

		if attempt < attempts {
			time.Sleep(step * time.Duration(attempt))
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
