// Package ignore decides which files under a watched directory are scratch
// files that should never trigger a reload.
//
// Rules are gitignore patterns, matched with go-git's glob implementation:
// a fixed set of editor and atomic-write leftovers, plus any .gitignore files
// found between the root and the path. Parsed .gitignore files are cached per
// directory.
package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ScratchPatterns match files that editors and atomic writers create next to
// the file being edited.
var ScratchPatterns = []string{
	// vim
	"*.swp",
	"*.swx",
	"*.swo",
	"4913",
	// emacs
	"*~",
	".#*",
	`\#*#`,
	// atomic writes: a temp file named after the target plus random digits
	"*.yaml[0-9]*",
	"*.yml[0-9]*",
	"*.tmp",
	// OS generated
	".DS_Store",
}

// Matcher checks paths under a root against scratch and .gitignore rules.
type Matcher struct {
	rootPath    string
	builtin     []gitignore.Pattern
	vcsDirs     map[string]bool
	dirPatterns sync.Map // dir (string) -> []gitignore.Pattern
}

// NewMatcher creates a Matcher rooted at rootPath. extra patterns are applied
// at the root in addition to ScratchPatterns.
func NewMatcher(rootPath string, extra ...string) *Matcher {
	lines := append(append([]string(nil), ScratchPatterns...), extra...)

	return &Matcher{
		rootPath: rootPath,
		builtin:  parsePatterns(lines, nil),
		vcsDirs: map[string]bool{
			".git": true,
			".jj":  true,
			".svn": true,
			".hg":  true,
		},
	}
}

// Match reports whether path should be ignored. isDir must be true when path
// refers to a directory so that directory-only patterns apply correctly.
func (m *Matcher) Match(path string, isDir bool) bool {
	if isDir && m.vcsDirs[filepath.Base(path)] {
		return true
	}

	if path == m.rootPath {
		return false
	}

	relPath, err := filepath.Rel(m.rootPath, path)
	if err != nil {
		relPath = path
	}

	components := pathToComponents(relPath)
	if len(components) == 0 {
		return false
	}

	return m.matcherFor(filepath.Dir(path)).Match(components, isDir)
}

// pathToComponents splits a slash-separated path into its individual parts.
func pathToComponents(path string) []string {
	path = filepath.ToSlash(path)
	if path == "" || path == "." {
		return nil
	}

	return strings.Split(path, "/")
}

// parsePatterns converts gitignore lines into Pattern objects.
// domain is the path components where the patterns are defined (nil for root).
func parsePatterns(lines []string, domain []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}

	return patterns
}

// gitignorePatterns returns the parsed .gitignore of dir. Results are cached.
func (m *Matcher) gitignorePatterns(dir string) []gitignore.Pattern {
	if v, ok := m.dirPatterns.Load(dir); ok {
		patterns, _ := v.([]gitignore.Pattern)
		return patterns
	}

	var domain []string

	relPath, _ := filepath.Rel(m.rootPath, dir)
	if relPath != "" && relPath != "." {
		domain = pathToComponents(relPath)
	}

	var patterns []gitignore.Pattern

	if content, err := os.ReadFile(filepath.Join(dir, ".gitignore")); err == nil {
		patterns = parsePatterns(strings.Split(string(content), "\n"), domain)
	}

	m.dirPatterns.Store(dir, patterns)

	return patterns
}

// matcherFor combines the built-in patterns with every .gitignore from the
// root down to dir. Later patterns take precedence, so a .gitignore may
// re-include a scratch name with "!".
func (m *Matcher) matcherFor(dir string) gitignore.Matcher {
	patterns := append([]gitignore.Pattern(nil), m.builtin...)

	relDir, _ := filepath.Rel(m.rootPath, dir)

	var parts []string
	if relDir != "" && relDir != "." && !strings.HasPrefix(relDir, "..") {
		parts = pathToComponents(relDir)
	}

	current := m.rootPath
	patterns = append(patterns, m.gitignorePatterns(current)...)

	for _, part := range parts {
		current = filepath.Join(current, part)
		patterns = append(patterns, m.gitignorePatterns(current)...)
	}

	return gitignore.NewMatcher(patterns)
}
