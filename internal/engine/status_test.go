package engine

import (
	"context"
	"testing"

	"github.com/jordanhk/resolvo/internal/gitx"
	"github.com/jordanhk/resolvo/internal/strategy"
)

func newStatusFake(t *testing.T) *gitx.FakeGateway {
	t.Helper()
	gw := gitx.NewFakeGateway()
	stageFile(t, gw, "done.js", "resolved\n")
	gw.SetConflicted("README.md", "package.json", "server.js")
	return gw
}

func TestStatus(t *testing.T) {
	gw := newStatusFake(t)
	eng := newTestEngine(gw)

	result, err := eng.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}

	if result.Root != gw.Root() {
		t.Errorf("Root = %q, want %q", result.Root, gw.Root())
	}
	if len(result.Conflicted) != 3 {
		t.Fatalf("Conflicted = %v, want 3 entries", result.Conflicted)
	}

	want := map[string]strategy.Strategy{
		"README.md":    strategy.PreserveIncoming,
		"package.json": strategy.StructuredMerge,
		"server.js":    strategy.PreferCurrent,
	}
	for _, c := range result.Conflicted {
		if want[c.Path] != c.Strategy {
			t.Errorf("%s planned as %v, want %v", c.Path, c.Strategy, want[c.Path])
		}
	}
	if len(result.Staged) != 1 || result.Staged[0] != "done.js" {
		t.Errorf("Staged = %v, want [done.js]", result.Staged)
	}
}
