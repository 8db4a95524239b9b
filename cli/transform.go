package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "resolve [message...]",
		Short: "Expand the string placeholders of a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}

			if once {
				msg = a.parser.ResolveStringPlaceholders(msg, a.placeholders)
			} else {
				msg = a.parser.ResolvePlaceholders(msg, a.placeholders)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "substitute argument-less placeholders in a single pass")

	return cmd
}

func newEscapeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "escape [message...]",
		Short: "Escape every known tag so the message parses as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.parser.Escape(msg))
			return err
		},
	}
}

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [message...]",
		Short: "Remove every known tag from a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.parser.Strip(msg))
			return err
		},
	}
}
