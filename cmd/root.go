package cmd

import (
	"github.com/spf13/cobra"

	"github.com/keywire/keywire/internal/config"
	"github.com/keywire/keywire/internal/logger"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath string

	rootCmd = &cobra.Command{
		Use:   "keywire",
		Short: "keywire - virtual keyboard injection and monitoring",
		Long: `keywire synthesizes keyboard input at the OS level through a virtual
input device and can monitor global keyboard activity. On Linux it uses the
uinput kernel module, so access to /dev/uinput (udev rules or root) is
required for injection.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			if err := config.Init(); err != nil {
				return err
			}
			if level := config.Get().Logging.LogLevel; level != "" {
				logger.SetLevel(level)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
}
