package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keywire/keywire/internal/logger"
	"github.com/keywire/keywire/keys"
	"github.com/keywire/keywire/sender"
)

var sendHold time.Duration

var sendCmd = &cobra.Command{
	Use:   "send <key>",
	Short: "Tap a single key on the virtual keyboard",
	Long: `Press and release one logical key, e.g. "keywire send enter" or
"keywire send f5". Key names follow the logical key model; X11 keysym
spellings like Page_Up are accepted too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := keys.Parse(args[0])
		if key == keys.KeyUnknown {
			return fmt.Errorf("unknown key %q", args[0])
		}

		s := sender.New()
		defer s.Close()
		if !s.IsReady() {
			return fmt.Errorf("virtual device not available (check /dev/uinput permissions)")
		}

		if sendHold > 0 {
			s.SetKeyDelay(sendHold)
		}
		if err := s.Tap(key); err != nil {
			return fmt.Errorf("tap %s: %w", key, err)
		}
		logger.Debugf("tapped %s", key)
		return nil
	},
}

func init() {
	sendCmd.Flags().DurationVar(&sendHold, "hold", 0, "time to hold the key down (default from config)")
	rootCmd.AddCommand(sendCmd)
}
