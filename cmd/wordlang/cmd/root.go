package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/wordlang/core/config"
	wlerror "github.com/msto63/wordlang/core/error"
	wllog "github.com/msto63/wordlang/core/log"
	"github.com/msto63/wordlang/utils/filex"
)

const defaultConfigFile = "configs/wordlang.toml"

var (
	cfgFile   string
	verbose   bool
	logFormat string
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wordlang [script]",
	Short: "wordlang - a tiny language for word set manipulation",
	Long: `wordlang runs scripts that build, combine, and filter sets of words.

A script declares List variables, combines them with + and -, narrows
them with | filter(...) and | filter_out(...), reads word files with
load(...), and prints results with print(...).

Passing a script file directly is shorthand for 'wordlang run':

  wordlang examples/pets.wl`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return wlerror.New("a script file is required")
		}
		return runScriptFile(cmd, args[0])
	},
}

// Execute runs the CLI. Diagnostics have already been printed when it
// returns an error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, wlerror.Diagnostic(err))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: "+defaultConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text or json")
}

// initConfig loads the optional config file and configures the default
// logger from it and the global flags. Flags win over the file.
func initConfig() {
	path := cfgFile
	if path == "" && filex.IsFile(defaultConfigFile) {
		path = defaultConfigFile
	}
	if path != "" {
		loaded, err := config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "WORDLANG",
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, wlerror.Diagnostic(err))
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = config.NewDefault()
	}

	logger := wllog.GetDefault()

	level := cfg.GetString("log.level", "info")
	if verbose {
		level = "debug"
	}
	if parsed, err := wllog.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}

	format := cfg.GetString("log.format", "text")
	if logFormat != "" {
		format = logFormat
	}
	if parsed, err := wllog.ParseFormat(format); err == nil {
		logger.SetFormatter(wllog.GetFormatter(parsed))
	}
}
