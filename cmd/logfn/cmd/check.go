package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Checks that generated files are up to date",
	Long: `Transforms the given sources like generate does, but compares the result with
the files on disk instead of writing it. Fails when any output is missing or
out of date.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	return run(cmd, args, true)
}
