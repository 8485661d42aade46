package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file>",
	Short: "Write a backup of the seeded content store",
	Long: `Seeds a content store from the configured content and writes a badger
backup to <file>. Point store.snapshot at the file to start from it instead
of the content sources.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.WriteSnapshot(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Snapshot written to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
