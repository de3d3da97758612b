// Package gitx provides the version-control gateway for resolvo.
//
// The gateway is a narrow capability boundary around the git command-line
// tool: it lists conflicted paths, fetches file content at a revision,
// writes and stages resolved files, and commits. Everything runs as a
// synchronous subprocess pinned to the repository root discovered once at
// startup.
package gitx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jordanhk/resolvo/internal/fsops"
)

// Revision is a symbolic reference to one side of an in-progress merge.
type Revision string

const (
	// Head is the current branch tip.
	Head Revision = "HEAD"

	// MergeHead is the incoming branch tip of the merge in progress.
	MergeHead Revision = "MERGE_HEAD"
)

// ErrNotRepository is returned by Discover when the starting directory is
// not inside a git repository.
var ErrNotRepository = errors.New("not in a git repository")

// Gateway provides an abstraction for git repository operations.
type Gateway interface {
	// Root returns the absolute path of the repository's top-level directory.
	Root() string

	// ListConflicted returns repository-relative paths currently unmerged.
	ListConflicted(ctx context.Context) ([]string, error)

	// Show retrieves a file's content as committed at the given revision.
	// found is false if the path does not exist at that revision.
	Show(ctx context.Context, rev Revision, path string) (content []byte, found bool, err error)

	// WriteWorkingFile overwrites the working-tree file at the given
	// repository-relative path, creating parent directories if absent.
	WriteWorkingFile(path string, content []byte) error

	// Stage marks the file as resolved in the index.
	Stage(ctx context.Context, path string) error

	// StagedPaths returns repository-relative paths with staged changes.
	StagedPaths(ctx context.Context) ([]string, error)

	// Commit records staged content with the given message.
	Commit(ctx context.Context, message string) error
}

// RealGateway implements Gateway using the git command-line tool.
type RealGateway struct {
	root    string
	fs      fsops.FS
	timeout time.Duration
}

// Discover resolves the repository root starting from cwd and returns a
// gateway bound to it. The root is resolved exactly once; every subsequent
// git invocation runs with its working directory pinned there.
func Discover(ctx context.Context, cwd string, fs fsops.FS, timeout time.Duration) (*RealGateway, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = cwd
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("failed to run git: %w", err)
	}

	root := strings.TrimSpace(stdout.String())
	if root == "" {
		return nil, ErrNotRepository
	}
	ok, err := fs.Exists(root)
	if err != nil {
		return nil, fmt.Errorf("repository root %s not accessible: %w", root, err)
	}
	if !ok {
		return nil, fmt.Errorf("repository root %s does not exist", root)
	}

	return &RealGateway{root: root, fs: fs, timeout: timeout}, nil
}

// Root returns the repository's top-level directory.
func (g *RealGateway) Root() string {
	return g.root
}

// run executes a git subcommand at the repository root and returns stdout.
func (g *RealGateway) run(ctx context.Context, args ...string) ([]byte, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return stdout.Bytes(), nil
}

// ListConflicted returns paths still marked unmerged in the index.
func (g *RealGateway) ListConflicted(ctx context.Context) ([]string, error) {
	out, err := g.run(ctx, "diff", "--name-only", "--diff-filter=U", "-z")
	if err != nil {
		return nil, err
	}
	return splitNul(out), nil
}

// Show retrieves blob content at rev:path. A git exit error (typically the
// path not existing at that revision) is reported as found=false, not as a
// gateway failure.
func (g *RealGateway) Show(ctx context.Context, rev Revision, path string) ([]byte, bool, error) {
	out, err := g.run(ctx, "show", string(rev)+":"+path)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return out, true, nil
}

// WriteWorkingFile overwrites the working-tree file at the given
// repository-relative path.
func (g *RealGateway) WriteWorkingFile(path string, content []byte) error {
	if err := fsops.ValidateRelPath(path); err != nil {
		return err
	}
	full := filepath.Join(g.root, filepath.FromSlash(path))
	if err := g.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	if err := g.fs.AtomicWrite(full, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Stage marks the path as resolved in the index.
func (g *RealGateway) Stage(ctx context.Context, path string) error {
	_, err := g.run(ctx, "add", "--", path)
	return err
}

// StagedPaths returns paths with content staged for the next commit.
func (g *RealGateway) StagedPaths(ctx context.Context) ([]string, error) {
	out, err := g.run(ctx, "diff", "--cached", "--name-only", "-z")
	if err != nil {
		return nil, err
	}
	return splitNul(out), nil
}

// Commit records staged content with the given message.
func (g *RealGateway) Commit(ctx context.Context, message string) error {
	_, err := g.run(ctx, "commit", "-m", message)
	return err
}

func splitNul(out []byte) []string {
	var paths []string
	for _, p := range bytes.Split(out, []byte{0}) {
		if len(p) > 0 {
			paths = append(paths, string(p))
		}
	}
	return paths
}

// FakeGateway implements Gateway in memory for testing. It simulates
// conflicted paths, per-revision content, the working tree, and the index
// without invoking git.
type FakeGateway struct {
	root       string
	conflicted []string
	revisions  map[Revision]map[string][]byte
	working    map[string][]byte
	staged     []string
	commits    []string

	listErr    error
	stageErr   map[string]error
	commitErr  error
	showErrs   map[string]error
	showErrRev Revision
}

// NewFakeGateway creates an empty FakeGateway rooted at a fake path.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		root:      "/fake/repo",
		revisions: map[Revision]map[string][]byte{},
		working:   map[string][]byte{},
		stageErr:  map[string]error{},
		showErrs:  map[string]error{},
	}
}

// SetConflicted sets the paths reported as unmerged.
func (f *FakeGateway) SetConflicted(paths ...string) {
	f.conflicted = append([]string(nil), paths...)
}

// SetFileAt sets a file's content at a revision.
func (f *FakeGateway) SetFileAt(rev Revision, path, content string) {
	if f.revisions[rev] == nil {
		f.revisions[rev] = map[string][]byte{}
	}
	f.revisions[rev][path] = []byte(content)
}

// SetListError makes ListConflicted fail.
func (f *FakeGateway) SetListError(err error) { f.listErr = err }

// SetStageError makes Stage fail for the given path.
func (f *FakeGateway) SetStageError(path string, err error) { f.stageErr[path] = err }

// SetCommitError makes Commit fail.
func (f *FakeGateway) SetCommitError(err error) { f.commitErr = err }

// SetShowError makes Show fail with a non-exit error for the given rev and path.
func (f *FakeGateway) SetShowError(rev Revision, path string, err error) {
	f.showErrRev = rev
	f.showErrs[path] = err
}

// WorkingFile returns the content written to the working tree for path.
func (f *FakeGateway) WorkingFile(path string) (string, bool) {
	content, ok := f.working[path]
	return string(content), ok
}

// Staged returns the staged paths in staging order.
func (f *FakeGateway) Staged() []string { return append([]string(nil), f.staged...) }

// Commits returns the recorded commit messages.
func (f *FakeGateway) Commits() []string { return append([]string(nil), f.commits...) }

// Root returns the fake repository root.
func (f *FakeGateway) Root() string { return f.root }

// ListConflicted returns the configured conflicted paths.
func (f *FakeGateway) ListConflicted(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]string(nil), f.conflicted...), nil
}

// Show returns the configured content at rev:path.
func (f *FakeGateway) Show(ctx context.Context, rev Revision, path string) ([]byte, bool, error) {
	if err, ok := f.showErrs[path]; ok && rev == f.showErrRev {
		return nil, false, err
	}
	files, ok := f.revisions[rev]
	if !ok {
		return nil, false, nil
	}
	content, ok := files[path]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), content...), true, nil
}

// WriteWorkingFile records the written content.
func (f *FakeGateway) WriteWorkingFile(path string, content []byte) error {
	if err := fsops.ValidateRelPath(path); err != nil {
		return err
	}
	f.working[path] = append([]byte(nil), content...)
	return nil
}

// Stage records the path as staged.
func (f *FakeGateway) Stage(ctx context.Context, path string) error {
	if err := f.stageErr[path]; err != nil {
		return err
	}
	for _, p := range f.staged {
		if p == path {
			return nil
		}
	}
	f.staged = append(f.staged, path)

	// Staging resolves the conflict: drop the path from the unmerged set.
	remaining := f.conflicted[:0]
	for _, p := range f.conflicted {
		if p != path {
			remaining = append(remaining, p)
		}
	}
	f.conflicted = remaining
	return nil
}

// StagedPaths returns the staged paths.
func (f *FakeGateway) StagedPaths(ctx context.Context) ([]string, error) {
	return append([]string(nil), f.staged...), nil
}

// Commit records the message and clears the index.
func (f *FakeGateway) Commit(ctx context.Context, message string) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.commits = append(f.commits, message)
	f.staged = nil
	return nil
}

var (
	_ Gateway = (*RealGateway)(nil)
	_ Gateway = (*FakeGateway)(nil)
)
