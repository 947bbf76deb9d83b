package ignore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chatter/keybind/internal/ignore"
)

func TestVCSDirs(t *testing.T) {
	root := t.TempDir()

	m := ignore.NewMatcher(root)

	for _, name := range []string{".git", ".jj", ".svn", ".hg"} {
		if !m.Match(filepath.Join(root, name), true) {
			t.Errorf("expected %s to be ignored", name)
		}
	}
}

func TestVCSDirs_NotAppliedToFiles(t *testing.T) {
	root := t.TempDir()

	m := ignore.NewMatcher(root)

	if m.Match(filepath.Join(root, ".git"), false) {
		t.Error("VCS names should only be ignored as directories")
	}
}

func TestScratchPatterns(t *testing.T) {
	root := t.TempDir()

	m := ignore.NewMatcher(root)

	tests := []struct {
		name string
		want bool
	}{
		{"bindings.yaml", false},
		{"other.yml", false},
		{".gitignore", false},
		{".bindings.yaml.swp", true},
		{".bindings.yaml.swx", true},
		{"4913", true},
		{"bindings.yaml~", true},
		{".#bindings.yaml", true},
		{"#bindings.yaml#", true},
		{"bindings.yaml2873465", true},
		{"profile.yml01", true},
		{"write.tmp", true},
		{".DS_Store", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(filepath.Join(root, tt.name), false); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestExtraPatterns(t *testing.T) {
	root := t.TempDir()

	m := ignore.NewMatcher(root, "*.bak", "drafts/")

	if !m.Match(filepath.Join(root, "bindings.bak"), false) {
		t.Error("extra *.bak should match")
	}
	if !m.Match(filepath.Join(root, "drafts"), true) {
		t.Error("extra drafts/ should match the directory")
	}
	if m.Match(filepath.Join(root, "bindings.yaml"), false) {
		t.Error("bindings.yaml should not be ignored")
	}
}

func TestGitignoreCanReinclude(t *testing.T) {
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("!keep.tmp\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	if m.Match(filepath.Join(root, "keep.tmp"), false) {
		t.Error(".gitignore negation should override the built-in *.tmp")
	}
	if !m.Match(filepath.Join(root, "other.tmp"), false) {
		t.Error("other.tmp should still be ignored")
	}
}

func TestGitignorePatterns(t *testing.T) {
	root := t.TempDir()

	gitignore := "*.log\nbuild/\n"
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	tests := []struct {
		path  string
		isDir bool
		want  bool
		desc  string
	}{
		{filepath.Join(root, "app.log"), false, true, "*.log should match files"},
		{filepath.Join(root, "main.go"), false, false, "main.go should not be ignored"},
		{filepath.Join(root, "build"), true, true, "build/ pattern should match directories"},
		{filepath.Join(root, "build"), false, false, "build/ pattern should NOT match files"},
		{filepath.Join(root, "src"), true, false, "src/ should not be ignored"},
	}

	for _, tt := range tests {
		got := m.Match(tt.path, tt.isDir)
		if got != tt.want {
			t.Errorf("%s: Match(%q, isDir=%v) = %v, want %v", tt.desc, tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestHierarchicalGitignore(t *testing.T) {
	root := t.TempDir()

	// Root .gitignore ignores *.bak
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.bak\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Create subdir with its own .gitignore that ignores *.dat
	subdir := filepath.Join(root, "sub")
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(subdir, ".gitignore"), []byte("*.dat\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	tests := []struct {
		path  string
		isDir bool
		want  bool
		desc  string
	}{
		// Root pattern applies everywhere
		{filepath.Join(root, "foo.bak"), false, true, "root *.bak matches in root"},
		{filepath.Join(subdir, "bar.bak"), false, true, "root *.bak matches in subdir"},

		// Subdir pattern applies only in subdir
		{filepath.Join(subdir, "data.dat"), false, true, "sub *.dat matches in subdir"},
		{filepath.Join(root, "data.dat"), false, false, "sub *.dat should NOT match in root"},

		// Unignored files
		{filepath.Join(subdir, "code.go"), false, false, ".go not ignored anywhere"},
	}

	for _, tt := range tests {
		got := m.Match(tt.path, tt.isDir)
		if got != tt.want {
			t.Errorf("%s: Match(%q, isDir=%v) = %v, want %v", tt.desc, tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestRootPathNeverIgnored(t *testing.T) {
	root := t.TempDir()

	// Even with a wildcard gitignore, the root itself should not be ignored.
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	if m.Match(root, true) {
		t.Error("root path should never be ignored")
	}
}

func TestNegationPattern(t *testing.T) {
	root := t.TempDir()

	// Ignore all .log files except important.log
	gitignore := "*.log\n!important.log\n"
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		t.Fatal(err)
	}

	m := ignore.NewMatcher(root)

	if !m.Match(filepath.Join(root, "debug.log"), false) {
		t.Error("debug.log should be ignored")
	}

	if m.Match(filepath.Join(root, "important.log"), false) {
		t.Error("important.log should NOT be ignored (negation pattern)")
	}
}

func TestNoGitignore(t *testing.T) {
	root := t.TempDir()

	m := ignore.NewMatcher(root)

	// Without a .gitignore, regular files/dirs should not be ignored.
	if m.Match(filepath.Join(root, "file.txt"), false) {
		t.Error("file.txt should not be ignored when no .gitignore exists")
	}

	if m.Match(filepath.Join(root, "src"), true) {
		t.Error("src/ should not be ignored when no .gitignore exists")
	}

	// Scratch files are ignored regardless.
	if !m.Match(filepath.Join(root, "file.txt~"), false) {
		t.Error("file.txt~ should always be ignored")
	}
}
