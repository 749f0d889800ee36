package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xonecas/astex/internal/config"
	"github.com/xonecas/astex/internal/explore"
	"github.com/xonecas/astex/internal/tui"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "astex <file>",
		Short: "Interactive parse-tree explorer",
		Long: "astex parses a source file with tree-sitter and opens a TUI: the syntax\n" +
			"tree on the left, the highlighted source on the right, and a snippet\n" +
			"prompt for poking at nodes (current_node, select(), reparse(), _0...).",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "astex: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	cleanup, err := setupLogging(cfg.Log.LevelOrDefault())
	if err != nil {
		return err
	}
	defer cleanup()

	exp, err := explore.New(path)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Str("language", exp.Language).Int("nodes", exp.NodeCount()).Msg("file loaded")

	p := tea.NewProgram(
		tui.New(exp, cfg.UI.SyntaxThemeOrDefault()),
		tea.WithFilter(tui.MouseEventFilter),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// setupLogging sends zerolog output to ~/.config/astex/astex.log; stderr is
// owned by the TUI.
func setupLogging(level string) (func(), error) {
	dir, err := config.EnsureDataDir()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "astex.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(lvl)
	return func() { f.Close() }, nil
}
