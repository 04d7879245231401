// Package ai holds the opaque generative-completion collaborator. The
// platform treats content generation as an external call: the guard and the
// rate limiter decide whether it may run, nothing here decides anything.
package ai

import (
	"context"
	"fmt"
)

// Completer produces a completion for a prompt. Implementations wrap
// whichever hosted model the deployment uses.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// StaticCompleter answers every prompt with a canned template. Used in dev
// and tests so the cost-bearing path is exercisable without a model backend.
type StaticCompleter struct{}

func (StaticCompleter) Complete(_ context.Context, prompt string) (string, error) {
	return fmt.Sprintf("[draft] %s", prompt), nil
}
