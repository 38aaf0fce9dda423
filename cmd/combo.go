package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keywire/keywire/keys"
	"github.com/keywire/keywire/sender"
)

var comboCmd = &cobra.Command{
	Use:   "combo <modifiers> <key>",
	Short: "Send a modifier combo, e.g. 'combo ctrl+shift t'",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mods := keys.ParseModifier(args[0])
		if mods == keys.None {
			return fmt.Errorf("no valid modifiers in %q", args[0])
		}
		key := keys.Parse(args[1])
		if key == keys.KeyUnknown {
			return fmt.Errorf("unknown key %q", args[1])
		}

		s := sender.New()
		defer s.Close()
		if !s.IsReady() {
			return fmt.Errorf("virtual device not available (check /dev/uinput permissions)")
		}

		if err := s.Combo(mods, key); err != nil {
			return fmt.Errorf("combo %s+%s: %w", mods, key, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(comboCmd)
}
