package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keywire/keywire/sender"
)

var typeCmd = &cobra.Command{
	Use:   "type <text>",
	Short: "Inject Unicode text (where the backend supports it)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sender.New()
		defer s.Close()

		if !s.Capabilities().CanInjectText {
			return fmt.Errorf("backend %q cannot inject text directly", s.Type())
		}
		return s.TypeText(args[0])
	},
}

func init() {
	rootCmd.AddCommand(typeCmd)
}
