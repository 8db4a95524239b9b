package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Drolfothesgnir/tagmark/tagmark"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		asJSON       bool
		showWarnings bool
	)

	cmd := &cobra.Command{
		Use:   "parse [message...]",
		Short: "Parse a message and print it styled",
		Example: `  tagmark parse "<red>Hello <bold>world</bold>"
  echo "<rainbow>colors" | tagmark parse --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}

			warns, err := tagmark.NewWarnings(tagmark.WarnOverflowTrunc, a.parser.Limits().MaxWarnings)
			if err != nil {
				return err
			}

			tree, err := a.parser.ParseTree(msg, a.placeholders, &warns)
			if err != nil {
				return err
			}

			c, err := tagmark.Render(tree)
			if err != nil {
				return err
			}

			if showWarnings {
				printWarnings(cmd.ErrOrStderr(), &warns)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(c)
			}

			_, err = fmt.Fprintln(out, a.renderer.Render(c))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the component as JSON")
	cmd.Flags().BoolVarP(&showWarnings, "warnings", "w", false, "print the recovered problems to stderr")

	return cmd
}
