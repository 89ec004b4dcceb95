package cmd

import (
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [files...]",
	Short: "Generates the output files of annotated sources",
	Long: `Generates <name>_logfn.go for every source file given, or for $GOFILE when
run through go:generate. Outputs are only written when every source transformed
without error, and only when their content changed.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return run(cmd, args, false)
}

func run(cmd *cobra.Command, args []string, check bool) error {
	paths, err := sources(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g, err := newGenerator(cmd, cfg, check)
	if err != nil {
		return err
	}

	_, err = g.Run(cmd.Context(), paths)

	return err
}
