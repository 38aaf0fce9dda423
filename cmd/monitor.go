package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/keywire/keywire/internal/logger"
	"github.com/keywire/keywire/keys"
	"github.com/keywire/keywire/listener"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print global keyboard activity until interrupted",
	Long: `Observe key events system-wide and print the resolved logical key,
codepoint and modifier state for each. Needs read access to the
/dev/input/event* device of the keyboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		l := listener.New()
		err := l.Start(ctx, func(cp rune, key keys.Key, mods keys.Modifier, pressed bool) {
			state := "release"
			if pressed {
				state = "press"
			}
			if cp != 0 {
				logger.Infof("%-7s key=%s mods=%s cp=%q", state, key, mods, cp)
			} else {
				logger.Infof("%-7s key=%s mods=%s", state, key, mods)
			}
		})
		if err != nil {
			return err
		}
		defer l.Stop()

		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}
