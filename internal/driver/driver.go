// Package driver constructs the fixed roster and announces each member.
package driver

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/olehluchkiv/goanimals/internal/animal"
)

// Default returns the roster announced by the CLI, in construction order.
func Default() []animal.Speaker {
	return []animal.Speaker{
		animal.NewDog("Buddy"),
		animal.NewCat("Whiskers"),
		animal.NewBird("Tweety"),
	}
}

// Run announces each speaker to w in order and stops at the first failure.
func Run(ctx context.Context, w io.Writer, speakers []animal.Speaker, logger *slog.Logger) error {
	for i, s := range speakers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := animal.Announce(w, s); err != nil {
			logger.Error("announce failed", "index", i, "type", fmt.Sprintf("%T", s), "error", err)
			return fmt.Errorf("announcing speaker %d: %w", i, err)
		}
		logger.Debug("announced", "index", i, "type", fmt.Sprintf("%T", s))
	}
	logger.Info("run complete", "speakers_count", len(speakers))
	return nil
}
