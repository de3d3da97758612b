// Package config holds the resolution policy for resolvo.
//
// The policy captures everything that is tunable about a resolution run:
// which filenames count as documentation, which paths count as structured
// configuration, the default commit message, and how long an individual
// git invocation may take.
package config

import "time"

// Policy describes how conflicted paths are classified and resolved.
type Policy struct {
	// DocFilenames are final path segments (case-insensitive) resolved by
	// preserving the incoming branch's content.
	DocFilenames []string

	// StructuredExtensions are file extensions resolved by structured merge.
	StructuredExtensions []string

	// StructuredToken is a substring (case-insensitive) anywhere in the
	// path that marks a file as structured configuration.
	StructuredToken string

	// CommitMessage is the default message used when finalizing a run.
	CommitMessage string

	// CommandTimeout bounds each git subprocess invocation.
	CommandTimeout time.Duration
}

// Default returns the standard resolution policy.
func Default() Policy {
	return Policy{
		DocFilenames:         []string{"readme.md"},
		StructuredExtensions: []string{".json"},
		StructuredToken:      "config",
		CommitMessage:        "Auto-resolve merge conflicts",
		CommandTimeout:       30 * time.Second,
	}
}
