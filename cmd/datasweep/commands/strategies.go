package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datasweep/datasweep/pkg/cleaning"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List available cleaning strategies and their options",
	RunE:  runStrategies,
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

func runStrategies(cmd *cobra.Command, args []string) error {
	for _, name := range cleaning.Available() {
		s, err := cleaning.NewStrategy(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, cleaning.Info(s))
	}
	return nil
}
