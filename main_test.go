package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/chatter/keybind/internal/app"
)

func TestWriteBindings_AlignsLabels(t *testing.T) {
	var buf bytes.Buffer

	rows := []app.Row{
		{Name: "jump", Label: "Jump", Bind: "SPACE"},
		{Name: "inventory", Label: "Inventory", Bind: "^I"},
	}
	if err := writeBindings(&buf, rows); err != nil {
		t.Fatalf("writeBindings failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(ansi.Strip(buf.String()), "\n"), "\n")
	want := []string{
		"Jump       SPACE",
		"Inventory  ^I",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestListCommand_ReadsConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := os.WriteFile(path, []byte("bindings:\n  menu: F10\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--config", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	text := ansi.Strip(out.String())
	if !strings.Contains(text, "Menu") || !strings.Contains(text, "F10") {
		t.Errorf("list output missing menu binding: %q", text)
	}
}

func TestListCommand_MissingProfileShowsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if text := ansi.Strip(out.String()); !strings.Contains(text, "ESC") {
		t.Errorf("expected default menu binding ESC: %q", text)
	}
}

func TestListCommand_BadProfileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := os.WriteFile(path, []byte("version: v9\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--config", path})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for positional argument")
	}
}
