// Package engine provides the core conflict-resolution logic for resolvo.
//
// The engine acts as the orchestration layer between CLI commands and the
// version-control gateway. It enumerates conflicted paths, classifies each
// one, applies the selected strategy with an unconditional fall-back to
// the current branch's content, and finalizes the repository state.
//
// Key components:
//   - Engine: main orchestrator called by the CLI
//   - Resolve: resolves every conflicted path, one strategy per file
//   - Finalize: commits staged resolutions (no-op success when idle)
//   - Status: read-only view of conflicts and their planned strategies
package engine

import (
	"github.com/jordanhk/resolvo/internal/clock"
	"github.com/jordanhk/resolvo/internal/config"
	"github.com/jordanhk/resolvo/internal/gitx"
	"github.com/jordanhk/resolvo/internal/strategy"
)

// Engine orchestrates conflict resolution.
// It is the main API surface called by the CLI.
type Engine struct {
	gateway    gitx.Gateway
	classifier *strategy.Classifier
	clock      clock.Clock
	policy     config.Policy
}

// New creates a new Engine with the given dependencies.
func New(
	gateway gitx.Gateway,
	classifier *strategy.Classifier,
	clk clock.Clock,
	policy config.Policy,
) *Engine {
	return &Engine{
		gateway:    gateway,
		classifier: classifier,
		clock:      clk,
		policy:     policy,
	}
}
