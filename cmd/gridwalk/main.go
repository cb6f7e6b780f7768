// gridwalk solves and visualizes text-grid puzzles from the terminal.
//
// Usage:
//
//	gridwalk list                              - List registered puzzle solvers
//	gridwalk solve <year> <day> <part> <file>  - Run a registered solver
//	gridwalk regions <file>                    - Region counts and fence prices
//	gridwalk path <file>                       - Shortest path between markers
//	gridwalk maze <file>                       - Turn-aware shortest paths
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.gridwalk, ./configs)
//	--log-level <lvl>   - debug, info, warn, error (overrides config)
//	--color <mode>      - auto, on, off (overrides config)
//
// A file argument of "-" reads standard input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/gridwalk/internal/config"
	// Import puzzles to register them
	_ "github.com/katalvlaran/gridwalk/internal/puzzles/y2024"
	_ "github.com/katalvlaran/gridwalk/internal/puzzles/y2025"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagColor    string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridwalk",
	Short: "gridwalk - grid cursor and shortest-path toolkit",
	Long: `gridwalk parses text grids and runs region and shortest-path
searches over them.

Available commands:
  list     - Show registered puzzle solvers
  solve    - Run a registered solver on an input file
  regions  - Summarize the 4-connected regions of a grid
  path     - Draw the shortest path between start and end markers
  maze     - Draw every cheapest path when turns cost extra

Examples:
  gridwalk list
  gridwalk solve 2024 16 1 input.txt
  gridwalk regions garden.txt
  gridwalk path --frontier linear maze.txt
  gridwalk maze --turn-penalty 1000 maze.txt`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Color mode: auto, on, off")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(mazeCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if flagColor != "" {
		loaded.Render.Color = flagColor
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "gridwalk",
		Level:           cfg.Log.LogLevel(),
	})
	logger.Debug("config loaded", "path", flagConfig, "frontier", cfg.Search.Frontier)
	return nil
}

// useColor resolves the color mode against the command's output.
func useColor(w io.Writer) bool {
	switch cfg.Render.Color {
	case "on":
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readInput reads the named file, or standard input for "-".
func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", name, err)
	}
	return string(data), nil
}
