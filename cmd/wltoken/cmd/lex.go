package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wl-lang/scanner/internal/cdb"
	"github.com/wl-lang/scanner/internal/codetokenize"
	"github.com/wl-lang/scanner/internal/feed"
	"github.com/wl-lang/scanner/internal/scanner"
	"github.com/wl-lang/scanner/pkg/token"
)

var (
	evalExpr     string
	showPos      bool
	showType     bool
	codeTokenize bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Wolfram Language file or expression",
	Long: `Tokenize (lex) Wolfram Language source and print the resulting tokens.

This command is useful for inspecting how the scanner breaks source text
into tokens, and for diagnosing syntax errors it reports along the way.

Examples:
  # Tokenize a file
  wltoken lex script.wl

  # Tokenize inline source
  wltoken lex -e "f[x_] := x^2 + 1"

  # Show token tags and offsets
  wltoken lex --show-type --show-pos script.wl

  # Print the CodeTokenize rendering instead
  wltoken lex --code-tokenize script.wl`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexSource,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token byte offsets")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token tag names")
	lexCmd.Flags().BoolVar(&codeTokenize, "code-tokenize", false, "print the CodeTokenize rendering instead")
}

func lexSource(cmd *cobra.Command, args []string) error {
	c, err := cdb.Load()
	if err != nil {
		return fmt.Errorf("loading character database: %w", err)
	}

	var feeder feed.Feeder
	switch {
	case evalExpr != "":
		feeder = feed.NewSingleLineFeeder(evalExpr, "<eval>")
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open file %s: %w", args[0], err)
		}
		defer f.Close()
		feeder = feed.NewFileFeeder(f, args[0])
	default:
		return fmt.Errorf("either provide a file path or use -e for inline source")
	}

	tk, err := scanner.New(feeder, c)
	if err != nil {
		return fmt.Errorf("creating tokenizer: %w", err)
	}

	errorCount := 0
	for {
		tok, err := tk.Next()
		if err != nil {
			errorCount++
			fmt.Fprintln(os.Stderr, err)
			break
		}

		printToken(tok)

		if tok.Tag == token.End {
			break
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("tokenization failed with %d error(s)", errorCount)
	}
	return nil
}

func printToken(tok token.Token) {
	if codeTokenize {
		fmt.Println(codetokenize.Render(tok))
		return
	}

	var output string
	if showType {
		output = fmt.Sprintf("[%-20s]", tok.Tag)
	}
	output += fmt.Sprintf(" %q", tok.Text)
	if showPos {
		output += fmt.Sprintf(" @%d", tok.Offset)
	}
	fmt.Println(output)
}
