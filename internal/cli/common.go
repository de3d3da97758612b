package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jordanhk/resolvo/internal/clock"
	"github.com/jordanhk/resolvo/internal/config"
	"github.com/jordanhk/resolvo/internal/engine"
	"github.com/jordanhk/resolvo/internal/fsops"
	"github.com/jordanhk/resolvo/internal/gitx"
	"github.com/jordanhk/resolvo/internal/strategy"
)

// newEngine creates a new engine with real implementations of all
// dependencies, bound to the repository containing the current directory.
func newEngine(ctx context.Context) (*engine.Engine, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	policy := config.Default()

	gateway, err := gitx.Discover(ctx, cwd, fsops.NewRealFS(), policy.CommandTimeout)
	if err != nil {
		return nil, err
	}

	return engine.New(gateway, strategy.NewClassifier(policy), &clock.RealClock{}, policy), nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
