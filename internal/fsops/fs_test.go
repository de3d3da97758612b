package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := fs.AtomicWrite(path, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(content) != "first\n" {
		t.Errorf("content = %q, want first", content)
	}

	// Overwrites in place.
	if err := fs.AtomicWrite(path, []byte("second\n"), 0o644); err != nil {
		t.Fatalf("AtomicWrite() overwrite error = %v", err)
	}
	content, _ = os.ReadFile(path)
	if string(content) != "second\n" {
		t.Errorf("content after overwrite = %q, want second", content)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	ok, err := fs.Exists(filepath.Join(dir, "missing"))
	if err != nil || ok {
		t.Errorf("Exists(missing) = %v, %v", ok, err)
	}

	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ok, err = fs.Exists(path)
	if err != nil || !ok {
		t.Errorf("Exists(present) = %v, %v", ok, err)
	}
}

func TestValidateRelPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"file.txt", false},
		{"a/b/c.json", false},
		{"./a/b.txt", false},
		{"", true},
		{"/etc/passwd", true},
		{"../escape.txt", true},
		{"a/../../escape.txt", true},
	}
	for _, tt := range tests {
		err := ValidateRelPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRelPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}
