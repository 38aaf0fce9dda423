package cmd

import (
	"github.com/spf13/cobra"

	"github.com/keywire/keywire/internal/config"
	"github.com/keywire/keywire/internal/keymap"
	"github.com/keywire/keywire/internal/layout"
	"github.com/keywire/keywire/internal/logger"
	"github.com/keywire/keywire/internal/xkb"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the discovered keyboard layout and key table coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := layout.Resolve(config.Get().Layout.RuleNames())
		logger.Infof("rules=%q model=%q layout=%q variant=%q options=%q",
			names.Rules, names.Model, names.Layout, names.Variant, names.Options)

		entries := xkb.Compile(names)
		table := keymap.Build(entries)
		logger.Infof("compiled symbols: %d", len(entries))
		logger.Infof("mapped logical keys: %d", table.Len())
		if len(entries) == 0 {
			logger.Warn("layout compilation unavailable, using static fallback table only")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
