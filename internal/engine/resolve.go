package engine

import (
	"context"
	"fmt"

	"github.com/jordanhk/resolvo/internal/confmerge"
	"github.com/jordanhk/resolvo/internal/gitx"
	"github.com/jordanhk/resolvo/internal/strategy"
)

// Resolve resolves every conflicted file in the repository.
//
// Each path is classified and the selected strategy applied; when the
// classified strategy fails the engine falls back to the current branch's
// content. A per-file failure never aborts the run: remaining files are
// still attempted and the failure is recorded in the outcome.
func (e *Engine) Resolve(ctx context.Context, req *ResolveRequest) (*ResolveResult, error) {
	started := e.clock.Now()

	paths, err := e.gateway.ListConflicted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicted files: %w", err)
	}

	result := &ResolveResult{
		Total:  len(paths),
		DryRun: req.DryRun,
	}

	for _, path := range paths {
		st := e.classifier.Classify(path)
		outcome := Outcome{Path: path, Strategy: st}

		if req.DryRun {
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		err := e.apply(ctx, st, path)
		if err != nil && st != strategy.PreferCurrent {
			outcome.Fallback = true
			outcome.Reason = err.Error()
			if fallbackErr := e.apply(ctx, strategy.PreferCurrent, path); fallbackErr != nil {
				err = fmt.Errorf("%v; fallback failed: %v", err, fallbackErr)
			} else {
				err = nil
			}
		}
		if err == nil {
			outcome.Resolved = true
			result.Resolved++
		} else {
			outcome.Reason = err.Error()
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.Duration = e.clock.Now().Sub(started)
	return result, nil
}

// apply runs a single strategy against a single path.
func (e *Engine) apply(ctx context.Context, st strategy.Strategy, path string) error {
	switch st {
	case strategy.PreserveIncoming:
		return e.preserveIncoming(ctx, path)
	case strategy.StructuredMerge:
		return e.structuredMerge(ctx, path)
	default:
		return e.preferCurrent(ctx, path)
	}
}

// preserveIncoming overwrites the file with the incoming branch's content.
func (e *Engine) preserveIncoming(ctx context.Context, path string) error {
	content, found, err := e.gateway.Show(ctx, gitx.MergeHead, path)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s does not exist at %s", path, gitx.MergeHead)
	}
	return e.writeAndStage(ctx, path, content)
}

// structuredMerge deep-merges the current and incoming versions of a
// structured config file. Both versions must exist and parse as JSON.
func (e *Engine) structuredMerge(ctx context.Context, path string) error {
	current, found, err := e.gateway.Show(ctx, gitx.Head, path)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s does not exist at %s", path, gitx.Head)
	}

	incoming, found, err := e.gateway.Show(ctx, gitx.MergeHead, path)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s does not exist at %s", path, gitx.MergeHead)
	}

	merged, err := confmerge.MergeDocuments(current, incoming)
	if err != nil {
		return fmt.Errorf("structured merge of %s: %w", path, err)
	}
	return e.writeAndStage(ctx, path, merged)
}

// preferCurrent overwrites the file with the current branch's content.
// A path missing at HEAD is terminal: there is no other source of truth.
func (e *Engine) preferCurrent(ctx context.Context, path string) error {
	content, found, err := e.gateway.Show(ctx, gitx.Head, path)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s does not exist at %s", path, gitx.Head)
	}
	return e.writeAndStage(ctx, path, content)
}

// writeAndStage overwrites the working file and marks it resolved, keeping
// the working tree and index in agreement for every reported success.
func (e *Engine) writeAndStage(ctx context.Context, path string, content []byte) error {
	if err := e.gateway.WriteWorkingFile(path, content); err != nil {
		return err
	}
	if err := e.gateway.Stage(ctx, path); err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	return nil
}
