package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-logfn/config"
	"github.com/arloliu/go-logfn/generator"
	"github.com/arloliu/go-logfn/logger"
)

var (
	cfgFile string
	mode    string
	suffix  string
	tag     string
	verbose bool
)

var errNoInput = errors.New("no input files: pass source files or run through go:generate")

var rootCmd = &cobra.Command{
	Use:   "logfn",
	Short: "Generates logging wrappers for annotated Go functions",
	Long: `logfn rewrites Go source files whose functions carry logging directives.

A source file is excluded from normal builds by a build constraint on the source
tag and annotates functions in their doc comments:

  //logfn:output Info, err = error, log_ts = true
  //logfn:inputs Debug

For every source file logfn writes <name>_logfn.go next to it, with the body of
each annotated function wrapped by the requested log calls.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(err)
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .logfn.yaml, .logfn.yml or .logfn.toml)")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "wrapping mode, direct or suspending")
	rootCmd.PersistentFlags().StringVar(&suffix, "suffix", "", "output file name suffix")
	rootCmd.PersistentFlags().StringVar(&tag, "tag", "", "build tag of annotated sources")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the config file and applies the flags set on cmd over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadDefault(".")
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("suffix") {
		cfg.OutputSuffix = suffix
	}
	if flags.Changed("tag") {
		cfg.SourceTag = tag
	}
	if verbose {
		cfg.LogLevel = logger.DebugLevel.String()
	}

	return cfg, cfg.Validate()
}

// newGenerator builds a generator from the config, logging to the error output of cmd.
func newGenerator(cmd *cobra.Command, cfg *config.Config, check bool) (*generator.Generator, error) {
	log := logger.NewSlogWriter(cmd.ErrOrStderr(), cfg.Level(), false)
	if cfg.Path() != "" {
		log.Debug("loaded config", "path", cfg.Path())
	}

	opts := append(cfg.Options(), generator.WithCheck(check), generator.WithLogger(log))

	return generator.New(opts...)
}

// sources returns the files named by args, or the file go:generate runs for.
func sources(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if file := os.Getenv("GOFILE"); file != "" {
		return []string{file}, nil
	}

	return nil, errNoInput
}

func printError(err error) {
	fmt.Fprintf(rootCmd.ErrOrStderr(), "logfn: %v\n", err)
}
