package cli

import (
	"fmt"
	"os"

	"github.com/layoutlab/nodekit/internal/branding"
	"github.com/layoutlab/nodekit/internal/config"
	"github.com/layoutlab/nodekit/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  string
	buildDate    string
)

var (
	configPath string
	logLevel   string
	pluginsDir string
)

// app is the session built for the running command.
var app *session

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` lists the node kinds a memory-layout editor offers, loads kinds
contributed by plugins, and checks how wrapper kinds compose.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		path := configPath
		if path == "" {
			path = config.FilePath()
		}
		settings, err := config.Open(path)
		if err != nil {
			return err
		}

		logCfg := settings.Logging()
		if logLevel != "" {
			logCfg.Level = logLevel
		}
		if err := logger.Init(logCfg); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		s, err := newSession(settings, pluginsDir)
		if err != nil {
			return err
		}
		app = s
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&pluginsDir, "plugins-dir", "", "Directory scanned for plugins")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
