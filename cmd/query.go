package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fran-roca/aml-intelligence/internal"
	"github.com/spf13/cobra"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Run a single analysis query",
	Long: `Run one query through the full pipeline (filter, analysis narrative,
insight lookup) and print the result. The simulated think delay is skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		store := internal.NewStore(internal.MockNotifications())
		assistant := internal.NewAssistantWithDelays(store, 0, 0)
		defer assistant.Stop()

		msg, ok := <-assistant.Submit(query)
		if !ok {
			return fmt.Errorf("empty query")
		}

		renderMessage(os.Stdout, msg)
		fmt.Println()
		renderStats(os.Stdout, internal.Stats(store.Notifications(), store.Filtered()))
		fmt.Println()
		renderClientTable(os.Stdout, store.Filtered())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
