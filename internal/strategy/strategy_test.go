package strategy

import (
	"testing"

	"github.com/jordanhk/resolvo/internal/config"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(config.Default())

	tests := []struct {
		name string
		path string
		want Strategy
	}{
		{"readme at root", "README.md", PreserveIncoming},
		{"readme lowercase", "readme.md", PreserveIncoming},
		{"readme mixed case", "ReadMe.MD", PreserveIncoming},
		{"readme in subdirectory", "app/readme.md", PreserveIncoming},
		{"readme deep", "docs/guides/README.md", PreserveIncoming},
		{"json extension", "config.json", StructuredMerge},
		{"json in subdirectory", "services/auth/package.json", StructuredMerge},
		{"config substring", "settings-config.yaml", StructuredMerge},
		{"config substring uppercase", "app/CONFIG/server.yml", StructuredMerge},
		{"config as directory", "config/database.yml", StructuredMerge},
		{"plain source file", "server.js", PreferCurrent},
		{"go source file", "internal/app/main.go", PreferCurrent},
		{"markdown that is not readme", "docs/CHANGELOG.md", PreferCurrent},
		{"readme-like prefix is not readme", "README.md.bak", PreferCurrent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// Documentation wins over the config substring: the rules are ordered and
// the first match is final.
func TestClassify_DocumentationBeatsConfig(t *testing.T) {
	c := NewClassifier(config.Default())

	for _, path := range []string{
		"config/README.md",
		"app-config/readme.md",
		"configurations/docs/README.md",
	} {
		if got := c.Classify(path); got != PreserveIncoming {
			t.Errorf("Classify(%q) = %v, want PreserveIncoming", path, got)
		}
	}
}

func TestClassify_CustomPolicy(t *testing.T) {
	p := config.Policy{
		DocFilenames:         []string{"notes.txt"},
		StructuredExtensions: []string{".toml"},
		StructuredToken:      "settings",
	}
	c := NewClassifier(p)

	if got := c.Classify("NOTES.TXT"); got != PreserveIncoming {
		t.Errorf("Classify(NOTES.TXT) = %v, want PreserveIncoming", got)
	}
	if got := c.Classify("app.toml"); got != StructuredMerge {
		t.Errorf("Classify(app.toml) = %v, want StructuredMerge", got)
	}
	if got := c.Classify("user-Settings.yml"); got != StructuredMerge {
		t.Errorf("Classify(user-Settings.yml) = %v, want StructuredMerge", got)
	}
	if got := c.Classify("config.json"); got != PreferCurrent {
		t.Errorf("Classify(config.json) = %v, want PreferCurrent with custom policy", got)
	}
}

func TestStrategy_String(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     string
	}{
		{PreferCurrent, "prefer-current"},
		{PreserveIncoming, "preserve-incoming"},
		{StructuredMerge, "structured-merge"},
	}
	for _, tt := range tests {
		if got := tt.strategy.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
