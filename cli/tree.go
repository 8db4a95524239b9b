package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"github.com/Drolfothesgnir/tagmark/tagmark"
)

func newTreeCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tree [message...]",
		Short: "Print the element tree of a message",
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

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(tree.Serialize(&warns))
			}

			s, err := renderTree(tree)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(out, s)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the tree and the warnings as JSON")

	return cmd
}

// renderTree draws the element tree with pterm, the root node being the tree's root.
func renderTree(tree *tagmark.Tree) (string, error) {
	var list pterm.LeveledList
	appendLeveled(&list, tree, 0)

	root := putils.TreeFromLeveledList(list)
	root.Text = tree.Root().Label()

	return pterm.DefaultTree.WithRoot(root).Srender()
}

func appendLeveled(list *pterm.LeveledList, tree *tagmark.Tree, idx int) {
	for _, c := range tree.Children(idx) {
		n := tree.Node(c)
		*list = append(*list, pterm.LeveledListItem{Level: n.Depth - 1, Text: n.Label()})
		appendLeveled(list, tree, c)
	}
}
