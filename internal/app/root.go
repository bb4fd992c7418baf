package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/storefront/internal/config"
	"github.com/blackwell-systems/storefront/internal/theme"
	"github.com/blackwell-systems/storefront/internal/util"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *log.Logger

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagDebug         bool
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "A themed terminal storefront for a remote product catalog",
	Long: `storefront renders a small product catalog under one of three visual
themes that change layout structure, not just colors.

Run 'storefront' with no arguments in a terminal to open the interactive
shop. Subcommands provide a plain, scriptable surface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if util.ShouldUseTUI(cmd) {
			return runStorefront()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/storefront/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		if flagConfig != "" {
			os.Setenv("STOREFRONT_CONFIG", config.ExpandHome(flagConfig))
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logger = newLogger(flagDebug)
		return nil
	}

	rootCmd.AddCommand(
		newBrowseCmd(),
		newProductsCmd(),
		newThemeCmd(),
		newVersionCmd(),
	)
}

// newLogger builds the application logger. The TUI owns the terminal, so
// debug output goes to a file under the user cache dir; without --debug
// logging is discarded entirely.
func newLogger(debug bool) *log.Logger {
	if !debug {
		return log.New(io.Discard)
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return log.New(io.Discard)
	}
	path := filepath.Join(dir, "storefront", "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	l := log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	l.SetLevel(log.DebugLevel)
	return l
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// openStore constructs the one theme store for this process, seeded from the
// configured default when no preference file exists yet.
func openStore() *theme.Store {
	store := theme.Open(cfg.UI.PrefsPath)
	if _, err := os.Stat(cfg.UI.PrefsPath); err != nil && store.Current() == theme.Default {
		if seed := theme.Parse(cfg.UI.DefaultTheme); seed != theme.Default {
			if err := store.Set(seed); err != nil {
				logger.Warn("seeding theme preference", "err", err)
			}
		}
	}
	return store
}
