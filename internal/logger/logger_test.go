package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// records returns the non-empty lines of the session file.
func records(t *testing.T, l *Logger) []string {
	t.Helper()

	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)

	return strings.FieldsFunc(string(data), func(r rune) bool { return r == '\n' })
}

// recordFor returns the first record containing msg.
func recordFor(t *testing.T, lines []string, msg string) string {
	t.Helper()

	for _, line := range lines {
		if strings.Contains(line, "msg="+msg) || strings.Contains(line, `msg="`+msg+`"`) {
			return line
		}
	}
	t.Fatalf("no record for %q in:\n%s", msg, strings.Join(lines, "\n"))
	return ""
}

func TestOpen_SessionFileNamedByPID(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "state", "keybind")

	l, err := Open(dir, "info")
	require.NoError(t, err)
	defer l.Close()

	want := filepath.Join(dir, fmt.Sprintf("keybind-%d.log", os.Getpid()))
	assert.Equal(t, want, l.Path())

	start := recordFor(t, records(t, l), "keybind started")
	assert.Contains(t, start, "level=INFO")
	assert.Contains(t, start, "log_path="+want)
}

func TestOpen_LevelNamesAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "Info", "WARN", "eRRor"} {
		l, err := Open(t.TempDir(), level)
		require.NoError(t, err, level)
		l.Close()
	}
}

func TestOpen_InvalidLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"trace", "warning", "fatal", "off", "123"} {
		dir := filepath.Join(t.TempDir(), "logs")

		_, err := Open(dir, level)
		require.ErrorIs(t, err, ErrInvalidLogLevel, level)

		_, statErr := os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr), "no directory for rejected level %q", level)
	}
}

func TestOpen_InvalidLevel_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.StringMatching(`[a-zA-Z]{1,10}`).Draw(rt, "level")
		if _, known := levels[strings.ToLower(level)]; known {
			rt.Skip("drew a real level")
		}

		if _, err := parseLevel(level); err == nil {
			rt.Fatalf("parseLevel(%q) accepted an unknown level", level)
		}
	})
}

func TestOpen_TruncatesPreviousSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	first, err := Open(dir, "info")
	require.NoError(t, err)
	first.Info("profile saved", "path", "old.yaml")
	first.Close()

	second, err := Open(dir, "info")
	require.NoError(t, err)
	second.Info("profile loaded", "path", "new.yaml")
	second.Close()

	lines := records(t, second)
	for _, line := range lines {
		assert.NotContains(t, line, "old.yaml")
	}
	recordFor(t, lines, "profile loaded")
}

func TestOpen_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  []string
		drop  []string
	}{
		{"debug", []string{"bind set", "profile loaded", "hot reload disabled", "operation failed"}, nil},
		{"info", []string{"profile loaded", "hot reload disabled", "operation failed"}, []string{"bind set"}},
		{"warn", []string{"hot reload disabled", "operation failed"}, []string{"bind set", "profile loaded"}},
		{"error", []string{"operation failed"}, []string{"bind set", "profile loaded", "hot reload disabled"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			l, err := Open(t.TempDir(), tt.level)
			require.NoError(t, err)

			l.Debug("bind set", "key", "Space")
			l.Info("profile loaded")
			l.Warn("hot reload disabled")
			l.Error("operation failed")
			l.Close()

			data, err := os.ReadFile(l.Path())
			require.NoError(t, err)
			content := string(data)

			for _, msg := range tt.want {
				assert.Contains(t, content, msg)
			}
			for _, msg := range tt.drop {
				assert.NotContains(t, content, msg)
			}
		})
	}
}

func TestComponent_TagsRecords(t *testing.T) {
	t.Parallel()

	l, err := Open(t.TempDir(), "debug")
	require.NoError(t, err)

	l.Component("imui").Debug("popup dismissed", "id", 42)
	l.Component("watcher").Info("profile watcher started", "dir", "/tmp/keybind")
	l.Info("binding changed", "action", "jump", "bind", "SPACE")
	l.Close()

	lines := records(t, l)

	popup := recordFor(t, lines, "popup dismissed")
	assert.Contains(t, popup, "component=imui")
	assert.Contains(t, popup, "id=42")

	watcher := recordFor(t, lines, "profile watcher started")
	assert.Contains(t, watcher, "component=watcher")
	assert.NotContains(t, watcher, "component=imui")

	changed := recordFor(t, lines, "binding changed")
	assert.NotContains(t, changed, "component=")
	assert.Contains(t, changed, "action=jump")
	assert.Contains(t, changed, "bind=SPACE")
}

func TestWith_StacksOnComponent(t *testing.T) {
	t.Parallel()

	l, err := Open(t.TempDir(), "debug")
	require.NoError(t, err)

	widget := l.Component("imui").With("widget", "sprint")
	widget.Debug("bind cleared")
	assert.Equal(t, "", widget.Path(), "derived loggers do not own the file")
	widget.Close()

	l.Info("still open")
	l.Close()

	lines := records(t, l)
	cleared := recordFor(t, lines, "bind cleared")
	assert.Contains(t, cleared, "component=imui")
	assert.Contains(t, cleared, "widget=sprint")
	recordFor(t, lines, "still open")
}

func TestNew_EmptyLevelDisablesLogging(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	l, err := New("")
	require.NoError(t, err)
	defer l.Close()

	l.Component("imui").Error("dropped")
	assert.Equal(t, "", l.Path())

	_, statErr := os.Stat(filepath.Join(stateHome, "keybind"))
	assert.True(t, os.IsNotExist(statErr), "disabled logging must not create the state directory")
}

func TestNew_WritesUnderXDGStateHome(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	l, err := New("warn")
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, filepath.Join(stateHome, "keybind"), filepath.Dir(l.Path()))
}

func TestStateDir_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", home)

	dir, err := StateDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "state", "keybind"), dir)
}

func TestDiscard_DropsEverything(t *testing.T) {
	t.Parallel()

	l := Discard()
	l.Component("watcher").Warn("watcher error", "err", "boom")
	l.Close()

	assert.Equal(t, "", l.Path())
}
