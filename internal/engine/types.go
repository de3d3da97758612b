package engine

import (
	"time"

	"github.com/jordanhk/resolvo/internal/strategy"
)

// ResolveRequest represents a request to resolve all merge conflicts.
type ResolveRequest struct {
	// DryRun classifies conflicts without touching the tree or index.
	DryRun bool
}

// Outcome records how a single conflicted path was handled.
type Outcome struct {
	// Path is the repository-relative path.
	Path string `json:"path"`

	// Strategy is the strategy selected by classification.
	Strategy strategy.Strategy `json:"strategy"`

	// Fallback is true when the classified strategy failed and the
	// current branch's content was used instead.
	Fallback bool `json:"fallback,omitempty"`

	// Resolved is true when the file was written and staged.
	Resolved bool `json:"resolved"`

	// Reason carries the diagnostic for a fallback or a failure.
	Reason string `json:"reason,omitempty"`
}

// ResolveResult represents the result of a resolution run.
type ResolveResult struct {
	// Outcomes lists per-file results in gateway order.
	Outcomes []Outcome `json:"outcomes"`

	// Resolved is the number of files successfully resolved.
	Resolved int `json:"resolved"`

	// Total is the number of conflicted files found.
	Total int `json:"total"`

	// DryRun is true when nothing was written or staged.
	DryRun bool `json:"dryRun,omitempty"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration"`
}

// Success reports whether every conflicted file was resolved.
// An empty run and a dry run both count as success.
func (r *ResolveResult) Success() bool {
	return r.DryRun || r.Resolved == r.Total
}

// FailedPaths returns the paths that could not be resolved.
func (r *ResolveResult) FailedPaths() []string {
	var failed []string
	for _, o := range r.Outcomes {
		if !o.Resolved {
			failed = append(failed, o.Path)
		}
	}
	return failed
}

// FinalizeRequest represents a request to commit staged resolutions.
type FinalizeRequest struct {
	// Message overrides the policy's default commit message when non-empty.
	Message string
}

// FinalizeResult represents the result of finalizing a run.
type FinalizeResult struct {
	// Committed is true when a commit was recorded. False with a nil
	// error means there was nothing to commit.
	Committed bool `json:"committed"`

	// Message is the commit message used.
	Message string `json:"message"`

	// Staged is the number of staged paths observed before committing.
	Staged int `json:"staged"`
}

// PlannedResolution pairs a conflicted path with its classified strategy.
type PlannedResolution struct {
	Path     string            `json:"path"`
	Strategy strategy.Strategy `json:"strategy"`
}

// StatusResult represents the current conflict state of the repository.
type StatusResult struct {
	// Root is the repository's top-level directory.
	Root string `json:"root"`

	// Conflicted lists unmerged paths with their planned strategies.
	Conflicted []PlannedResolution `json:"conflicted"`

	// Staged lists paths already staged for the next commit.
	Staged []string `json:"staged"`
}
