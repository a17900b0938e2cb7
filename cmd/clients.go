package cmd

import (
	"fmt"
	"os"

	"github.com/fran-roca/aml-intelligence/internal"
	"github.com/spf13/cobra"
)

var clientsFilter string

// clientsCmd represents the clients command
var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Show the client notification queue",
	Long: `Display the mock client notification queue, optionally narrowed by a
free-text filter query (the same keyword rules the chat uses).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notifications := internal.MockNotifications()

		filtered := notifications
		if clientsFilter != "" {
			internal.LogDebug("applying filter query: %s", clientsFilter)
			filtered = internal.ApplyFilter(clientsFilter, notifications)
		}

		renderStats(os.Stdout, internal.Stats(notifications, filtered))
		fmt.Println()
		renderClientTable(os.Stdout, filtered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clientsCmd)
	clientsCmd.Flags().StringVarP(&clientsFilter, "filter", "f", "", "Filter query (e.g. \"high-risk sort by amount descending\")")
}
