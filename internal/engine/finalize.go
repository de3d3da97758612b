package engine

import (
	"context"
	"fmt"
)

// Finalize commits staged resolutions.
//
// With nothing staged it succeeds without committing, so re-running after
// a completed resolution is a no-op. Finalize is deliberately separate
// from Resolve so a caller can inspect outcomes before committing.
func (e *Engine) Finalize(ctx context.Context, req *FinalizeRequest) (*FinalizeResult, error) {
	staged, err := e.gateway.StagedPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}

	message := req.Message
	if message == "" {
		message = e.policy.CommitMessage
	}

	result := &FinalizeResult{
		Message: message,
		Staged:  len(staged),
	}
	if len(staged) == 0 {
		return result, nil
	}

	if err := e.gateway.Commit(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to commit resolution: %w", err)
	}
	result.Committed = true
	return result, nil
}
