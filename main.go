package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"viewport-watch/app"
	"viewport-watch/config"
	"viewport-watch/log"
	"viewport-watch/ui"
	"viewport-watch/viewport"

	"github.com/spf13/cobra"
)

var (
	version         = "0.3.0"
	breakpointFlag  int
	noAltScreenFlag bool
	rootCmd         = &cobra.Command{
		Use:   "viewport-watch",
		Short: "viewport-watch - Show whether the terminal is narrower than a breakpoint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := loadConfig(cmd)
			if noAltScreenFlag {
				cfg.AltScreen = false
			}

			return app.Run(cmd.Context(), cfg)
		},
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Print a line every time the terminal crosses the breakpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(true)
			defer log.Close()

			cfg := loadConfig(cmd)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			term := viewport.NewTerminal(os.Stdout, viewport.WithPollInterval(cfg.PollInterval()))
			defer term.Close()

			watcher := viewport.New(term, viewport.WithBreakpoint(cfg.Breakpoint))
			fmt.Println(ui.RenderLine(term.Width(), watcher.Breakpoint(), watcher.IsNarrow()))

			unobserve := watcher.OnChange(func(narrow bool) {
				fmt.Println(ui.RenderLine(term.Width(), watcher.Breakpoint(), narrow))
			})
			defer unobserve()

			watcher.Run(ctx)
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := loadConfig(cmd)

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Terminal width: %d\n", viewport.InitialWidth(os.Stdout))

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of viewport-watch",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("viewport-watch version %s\n", version)
		},
	}
)

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.LoadConfig()
	// Breakpoint flag overrides config
	if cmd.Flags().Changed("breakpoint") {
		cfg.Breakpoint = breakpointFlag
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&breakpointFlag, "breakpoint", "b", viewport.DefaultBreakpoint,
		"Width in columns at or below which the terminal counts as narrow (overrides config)")
	rootCmd.Flags().BoolVar(&noAltScreenFlag, "no-alt-screen", false,
		"Render inline instead of in the alternate screen buffer")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
