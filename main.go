package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/chatter/keybind/internal/app"
	"github.com/chatter/keybind/internal/config"
	"github.com/chatter/keybind/internal/logger"
)

// version is set from build info or falls back to "dev"
var version = "dev"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	logLevel   string
}

// profilePath returns --config or the XDG default.
func (f *rootFlags) profilePath() (string, error) {
	if f.configPath != "" {
		return f.configPath, nil
	}
	return config.DefaultPath()
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "keybind",
		Short:         "Edit key and mouse bindings",
		Long:          "keybind shows every action with its binding. Click a binding, then press the key or mouse button to assign.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), &flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "bindings file (default $XDG_CONFIG_HOME/keybind/bindings.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", os.Getenv("KEYBIND_LOG_LEVEL"), "log level: debug, info, warn or error (empty disables logging)")

	cmd.AddCommand(newListCmd(&flags))

	return cmd
}

func runTUI(ctx context.Context, flags *rootFlags) error {
	path, err := flags.profilePath()
	if err != nil {
		return err
	}

	log, err := logger.New(flags.logLevel)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer log.Close()

	log.Info("opening profile", "path", path, "version", version)

	p := tea.NewProgram(app.New(path, version, log), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", "err", err)
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the current bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := flags.profilePath()
			if err != nil {
				return err
			}

			profile, err := config.Load(path)
			if err != nil {
				return err
			}

			// Downsample colors to what the output supports; pipes get plain text.
			w := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
			return writeBindings(w, app.Rows(profile))
		},
	}
}

var (
	listLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	listBindStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

// writeBindings prints one aligned "label  bind" line per row.
func writeBindings(w io.Writer, rows []app.Row) error {
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.Label))
	}

	for _, row := range rows {
		label := fmt.Sprintf("%-*s", width, row.Label)
		if _, err := fmt.Fprintf(w, "%s  %s\n", listLabelStyle.Render(label), listBindStyle.Render(row.Bind)); err != nil {
			return fmt.Errorf("writing bindings: %w", err)
		}
	}

	return nil
}
