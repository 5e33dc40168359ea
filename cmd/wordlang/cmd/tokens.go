package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/wordlang/lang/parser"
	"github.com/msto63/wordlang/utils/filex"
)

var tokensKeepTrivia bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <script>",
	Short: "Dumps the token stream of a script",
	Long: `Dumps the token stream the parser would see, one token per line
with its type, lexeme, and source line. Useful for debugging lexical
surprises such as keywords inside identifiers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := filex.ReadString(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		lexer := parser.NewLexer(source)
		if tokensKeepTrivia {
			for {
				tok := lexer.NextToken()
				fmt.Fprintln(out, tok)
				if tok.Type == parser.TokenEOF {
					return nil
				}
			}
		}
		for _, tok := range lexer.Tokenize() {
			fmt.Fprintln(out, tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&tokensKeepTrivia, "keep-trivia", false,
		"include comment and whitespace tokens")
}
