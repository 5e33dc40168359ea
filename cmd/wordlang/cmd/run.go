package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/wordlang/lang"

	wllog "github.com/msto63/wordlang/core/log"
)

var (
	runWarnMissingFiles bool
	runMaxSourceSize    int64
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Runs a wordlang script",
	Long: `Runs a wordlang script file. Print output goes to stdout;
diagnostics go to stderr and set a non-zero exit code.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScriptFile(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runWarnMissingFiles, "warn-missing-files", false,
		"warn about word list files that load skips")
	runCmd.Flags().Int64Var(&runMaxSourceSize, "max-source-size", 0,
		"script size limit in bytes (0 = default, negative = unlimited)")
}

// runScriptFile executes path through a fresh engine built from config
// and flags. Shared by 'wordlang run' and the bare 'wordlang <script>'
// form, which uses the config file values only.
func runScriptFile(cmd *cobra.Command, path string) error {
	warn := cfg.GetBool("run.warn_missing_files", false)
	if cmd.Flags().Changed("warn-missing-files") {
		warn = runWarnMissingFiles
	}
	maxSize := int64(cfg.GetInt("run.max_source_size", 0))
	if cmd.Flags().Changed("max-source-size") {
		maxSize = runMaxSourceSize
	}

	engine := lang.New(lang.Options{
		Logger:           wllog.GetDefault(),
		Output:           cmd.OutOrStdout(),
		WarnMissingFiles: warn,
		MaxSourceSize:    maxSize,
	})
	return engine.RunFile(cmd.Context(), path)
}
