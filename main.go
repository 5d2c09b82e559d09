package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/qyinm/staffdir/config"
	"github.com/qyinm/staffdir/directory"
	"github.com/qyinm/staffdir/fetcher"
	"github.com/qyinm/staffdir/logging"
	"github.com/qyinm/staffdir/ui"
)

var (
	version = "dev"
	commit  = "unknown"
)

// rootFlags override values loaded from the config file and environment.
// Only flags set on the command line are applied.
type rootFlags struct {
	configPath  string
	primaryURL  string
	fallback    string
	assetDir    string
	narrowWidth int
	logFile     string
	logLevel    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "staffdir",
		Short: "Browse the employee directory in the terminal",
		Long: `staffdir loads the employee directory from a primary endpoint, falling
back to a static resource, and shows it as a searchable table or, on
narrow terminals, as expandable cards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", os.Getenv("STAFFDIR_CONFIG"), "YAML config file")
	pf.StringVar(&flags.primaryURL, "primary-url", "", "Primary employees endpoint")
	pf.StringVar(&flags.fallback, "fallback", "", "Fallback file path or http(s) URL")
	pf.StringVar(&flags.assetDir, "asset-dir", "", "Directory for bare image names")
	pf.IntVar(&flags.narrowWidth, "narrow-width", 0, "Terminal width at or below which cards are shown")
	pf.StringVar(&flags.logFile, "log-file", "", "Log file (default ~/.staffdir/logs)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug|info|warn|error")

	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func loadConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("primary-url") {
		cfg.PrimaryURL = flags.primaryURL
	}
	if changed("fallback") {
		cfg.Fallback = flags.fallback
	}
	if changed("asset-dir") {
		cfg.AssetDir = flags.assetDir
	}
	if changed("narrow-width") {
		cfg.NarrowWidth = flags.narrowWidth
	}
	if changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runTUI(cfg config.Config) error {
	logPath := cfg.LogFile
	if logPath == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			return err
		}
		logPath = p
	}
	if err := logging.Init(logPath, cfg.LogLevel); err != nil {
		return err
	}
	defer logging.Close()

	logging.Info("starting", "version", version, "primary", cfg.PrimaryURL, "fallback", cfg.Fallback)

	source := fetcher.New(cfg.FetcherOptions())
	model := ui.NewModel(source, directory.Options{
		NarrowWidth: cfg.NarrowWidth,
		AssetDir:    cfg.AssetDir,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("program exited", "err", err)
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "staffdir version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
		},
	}
}
