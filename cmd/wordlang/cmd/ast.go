package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/wordlang/lang"
	"github.com/msto63/wordlang/lang/ast"
	"github.com/msto63/wordlang/utils/filex"
)

var astNoColor bool

var (
	astStatementStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	astOperatorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	astLeafStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

var astCmd = &cobra.Command{
	Use:   "ast <script>",
	Short: "Dumps the syntax tree of a script",
	Long: `Compiles a script and dumps its syntax tree, one node per line,
indented by nesting depth. Variable references show their resolved slot
numbers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := filex.ReadString(args[0])
		if err != nil {
			return err
		}

		program, err := lang.New(lang.Options{}).Compile(source)
		if err != nil {
			return err
		}

		opts := ast.DumpOptions{}
		if !astNoColor {
			opts.DecorateKind = colorizeKind
		}
		return ast.DumpTree(cmd.OutOrStdout(), program, opts)
	},
}

// colorizeKind styles a node kind label by its role in the tree.
func colorizeKind(kind string) string {
	switch {
	case strings.HasPrefix(kind, "STATEMENT_BLOCK"), strings.HasPrefix(kind, "PRINT"):
		return astStatementStyle.Render(kind)
	case strings.HasPrefix(kind, "ASSIGN"), strings.HasPrefix(kind, "SET_OP"),
		strings.HasPrefix(kind, "FILTER"), strings.HasPrefix(kind, "LOAD"):
		return astOperatorStyle.Render(kind)
	default:
		return astLeafStyle.Render(kind)
	}
}

func init() {
	rootCmd.AddCommand(astCmd)

	astCmd.Flags().BoolVar(&astNoColor, "no-color", false,
		"disable colored output")
}
