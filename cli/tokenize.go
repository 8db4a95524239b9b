package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Drolfothesgnir/tagmark/tagmark"
)

func newTokenizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [message...]",
		Short: "Print the tokens of a message",
		Long:  "Print the tokens of a message as the lexer sees them, placeholders are not expanded.",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}

			for _, tok := range a.parser.Tokenize(msg) {
				writeToken(cmd.OutOrStdout(), msg, tok, 0)
			}

			return nil
		},
	}
}

func writeToken(w io.Writer, input string, tok tagmark.Token, indent int) {
	fmt.Fprintf(w, "%s%-8s %d:%d %q\n", strings.Repeat("  ", indent), tok.Type, tok.Span.Start, tok.Span.End, tok.Raw(input))

	for _, v := range tok.Values {
		writeToken(w, input, v, indent+1)
	}
}
