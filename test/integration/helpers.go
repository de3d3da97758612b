package integration

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jordanhk/resolvo/internal/clock"
	"github.com/jordanhk/resolvo/internal/config"
	"github.com/jordanhk/resolvo/internal/engine"
	"github.com/jordanhk/resolvo/internal/fsops"
	"github.com/jordanhk/resolvo/internal/gitx"
	"github.com/jordanhk/resolvo/internal/strategy"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
	return string(out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	full := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", name, err)
	}
	return string(content)
}

const (
	basePackageJSON = `{
  "name": "svc",
  "version": "1.0.0",
  "dependencies": {
    "express": "^4.18.0"
  }
}
`
	mainPackageJSON = `{
  "name": "svc",
  "version": "1.0.1",
  "dependencies": {
    "express": "^4.18.0",
    "cors": "^2.8.5"
  },
  "engines": {
    "node": ">=16"
  }
}
`
	featurePackageJSON = `{
  "name": "svc",
  "version": "1.1.0",
  "dependencies": {
    "express": "^4.18.0"
  },
  "scripts": {
    "start": "node server.js"
  }
}
`
	baseConfigJSON = `{
  "app": {
    "name": "svc",
    "port": 3000
  },
  "database": {
    "host": "localhost",
    "port": 5432
  }
}
`
	mainConfigJSON = `{
  "app": {
    "name": "svc",
    "port": 8080
  },
  "database": {
    "host": "db.prod",
    "port": 5432,
    "ssl": true
  }
}
`
	featureConfigJSON = `{
  "app": {
    "name": "svc",
    "port": 3000,
    "debug": true
  },
  "database": {
    "host": "localhost",
    "port": 5432
  },
  "features": {
    "logging": true
  }
}
`
)

// setupConflictedRepo builds a repository mid-merge: main (current) and
// feature (incoming) diverged on documentation, two structured config
// files, and a plain source file.
func setupConflictedRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)
	dir := t.TempDir()

	runGit(t, dir, "init")
	runGit(t, dir, "checkout", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")

	writeFile(t, dir, "README.md", "# svc\n\nBase docs.\n")
	writeFile(t, dir, "package.json", basePackageJSON)
	writeFile(t, dir, "config.json", baseConfigJSON)
	writeFile(t, dir, "server.js", "const mode = 'dev';\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "initial")

	runGit(t, dir, "checkout", "-b", "feature")
	writeFile(t, dir, "README.md", "# svc\n\nFeature docs - must be preserved.\n")
	writeFile(t, dir, "package.json", featurePackageJSON)
	writeFile(t, dir, "config.json", featureConfigJSON)
	writeFile(t, dir, "server.js", "const mode = 'feature';\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "feature work")

	runGit(t, dir, "checkout", "main")
	writeFile(t, dir, "README.md", "# svc\n\nMain docs - must not survive.\n")
	writeFile(t, dir, "package.json", mainPackageJSON)
	writeFile(t, dir, "config.json", mainConfigJSON)
	writeFile(t, dir, "server.js", "const mode = 'production';\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "main work")

	cmd := exec.Command("git", "merge", "feature")
	cmd.Dir = dir
	if err := cmd.Run(); err == nil {
		t.Fatal("expected merge to conflict")
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "MERGE_HEAD")); err != nil {
		t.Fatalf("MERGE_HEAD not present after conflicted merge: %v", err)
	}
	return dir
}

// newEngine wires an engine to the repository at dir using real
// implementations throughout.
func newEngine(t *testing.T, dir string) *engine.Engine {
	t.Helper()
	policy := config.Default()
	gateway, err := gitx.Discover(context.Background(), dir, fsops.NewRealFS(), policy.CommandTimeout)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	return engine.New(gateway, strategy.NewClassifier(policy), &clock.RealClock{}, policy)
}

func lastCommitSubject(t *testing.T, dir string) string {
	t.Helper()
	return strings.TrimSpace(runGit(t, dir, "log", "-1", "--pretty=%s"))
}
