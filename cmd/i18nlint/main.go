package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/lifei6671/i18nproject/internal/config"
	"github.com/lifei6671/i18nproject/internal/workspace"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "i18nlint",
	Short: "Check and inspect translation projects",
	Long: `i18nlint loads the translation projects of a project file, resolves
inheritance between them and reports problems.

Examples:
  i18nlint check -c project.toml --fail
  i18nlint keys -c project.toml -p app --prefix user.
  i18nlint genkey "Save changes"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "project.toml", "project file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openWorkspace loads the project file and builds all its projects.
func openWorkspace(ctx context.Context) (*workspace.Workspace, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	return workspace.Open(ctx, cfg, newLogger(), nil)
}
