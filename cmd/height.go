package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var heightCmd = &cobra.Command{
	Use:   "height",
	Short: "Print the current blockchain height",
	RunE: func(cmd *cobra.Command, args []string) error {
		nodeClient, _, err := createClient(rootConfig)
		if err != nil {
			return err
		}
		height, err := nodeClient.Height(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), height)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(heightCmd)
}
