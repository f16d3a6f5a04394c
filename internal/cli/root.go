package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectn/internal/factory"
)

var (
	cfg *Config
	app *factory.App
	out *Output
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	app = nil
	out = nil

	rootCmd := &cobra.Command{
		Use:   "connectn",
		Short: "Gravity-drop N-in-a-row game for any number of teams",
		Long: `connectn is a generalised Connect Four played in the terminal.

Teams take turns dropping tokens into the columns of a grid; each token falls to
the lowest empty cell. The first team to line up the required number of tokens
vertically, horizontally or diagonally wins.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(cmd.Flags()); err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			app = factory.New(factory.Config{Logger: logger})
			renderer := NewRenderer(cmd.OutOrStdout(), cfg.NoColor)
			out = NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr(), renderer)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: CONNECTN_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log every move to stderr")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable coloured team markers")
	rootCmd.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Optional .env file with CONNECTN_* settings (env: CONNECTN_ENV_FILE)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newMovesCmd())

	return rootCmd
}

// Run executes the CLI with the given arguments and streams, returning the exit code
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if out != nil {
			out.PrintError(err)
		} else {
			fmt.Fprintf(stderr, "Error: %s\n", err)
		}
		return 1
	}
	return 0
}

// Execute runs the root command against the process streams
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
