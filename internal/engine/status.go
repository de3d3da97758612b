package engine

import (
	"context"
	"fmt"
)

// Status reports the repository's current conflict state without touching
// the working tree or index.
func (e *Engine) Status(ctx context.Context) (*StatusResult, error) {
	paths, err := e.gateway.ListConflicted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicted files: %w", err)
	}

	staged, err := e.gateway.StagedPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}

	result := &StatusResult{
		Root:   e.gateway.Root(),
		Staged: staged,
	}
	for _, path := range paths {
		result.Conflicted = append(result.Conflicted, PlannedResolution{
			Path:     path,
			Strategy: e.classifier.Classify(path),
		})
	}
	return result, nil
}
