// Package strategy selects the resolution strategy for a conflicted path.
//
// Classification is a pure function of the repository-relative path string
// and the configured policy. Rules are evaluated in priority order:
// documentation filenames first, then structured-configuration matches,
// then the default. A documentation file whose path also matches the
// config substring is still classified as documentation.
package strategy

import (
	"path"
	"strings"

	"github.com/jordanhk/resolvo/internal/config"
)

// Strategy identifies how a conflicted file is resolved.
type Strategy int

const (
	// PreferCurrent resolves with the current branch's content (HEAD).
	// It is the default and the unconditional fallback.
	PreferCurrent Strategy = iota

	// PreserveIncoming resolves with the incoming branch's content (MERGE_HEAD).
	PreserveIncoming

	// StructuredMerge resolves by deep-merging both sides as a key-value document.
	StructuredMerge
)

// String returns the human-readable name of the strategy.
func (s Strategy) String() string {
	switch s {
	case PreserveIncoming:
		return "preserve-incoming"
	case StructuredMerge:
		return "structured-merge"
	default:
		return "prefer-current"
	}
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Classifier classifies conflicted paths according to a policy.
type Classifier struct {
	docFilenames []string
	extensions   []string
	token        string
}

// NewClassifier creates a Classifier from the given policy.
func NewClassifier(p config.Policy) *Classifier {
	docs := make([]string, len(p.DocFilenames))
	for i, name := range p.DocFilenames {
		docs[i] = strings.ToLower(name)
	}
	return &Classifier{
		docFilenames: docs,
		extensions:   append([]string(nil), p.StructuredExtensions...),
		token:        strings.ToLower(p.StructuredToken),
	}
}

// Classify returns the strategy for a repository-relative path.
// Git reports paths with forward slashes regardless of platform.
func (c *Classifier) Classify(relPath string) Strategy {
	base := strings.ToLower(path.Base(relPath))
	for _, name := range c.docFilenames {
		if base == name {
			return PreserveIncoming
		}
	}

	for _, ext := range c.extensions {
		if strings.HasSuffix(relPath, ext) {
			return StructuredMerge
		}
	}
	if c.token != "" && strings.Contains(strings.ToLower(relPath), c.token) {
		return StructuredMerge
	}

	return PreferCurrent
}
