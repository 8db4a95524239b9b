// Package cli is the command line front end of the markup parser.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Drolfothesgnir/tagmark/render"
	"github.com/Drolfothesgnir/tagmark/tagmark"
	"github.com/Drolfothesgnir/tagmark/tags"
	"github.com/Drolfothesgnir/tagmark/util"
)

// app holds what every command needs, built once the flags are parsed.
type app struct {
	config util.Config

	strict           bool
	placeholdersFile string
	colorProfile     string

	parser       *tagmark.Parser
	placeholders tagmark.Placeholders
	renderer     *render.Renderer
}

// NewRootCmd creates the command tree. Flags default to the values of config.
func NewRootCmd(config util.Config) *cobra.Command {
	a := &app{config: config}

	root := &cobra.Command{
		Use:           "tagmark",
		Short:         "Parse tag markup into styled text",
		Long:          "tagmark parses messages such as \"<red>Hello <bold>world</bold>\" into styled text and prints them on the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("command", cmd.Name()).Msg("command started")
			return a.setup(cmd.OutOrStdout())
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&a.strict, "strict", config.StrictMode, "fail on malformed markup instead of keeping it as text")
	flags.StringVar(&a.placeholdersFile, "placeholders", config.PlaceholdersFile, "YAML file with string and component placeholders")
	flags.StringVar(&a.colorProfile, "color", config.ColorProfile, "color profile: ascii, ansi, ansi256 or truecolor (detected when empty)")

	root.AddCommand(
		newParseCmd(a),
		newTokenizeCmd(a),
		newTreeCmd(a),
		newResolveCmd(a),
		newEscapeCmd(a),
		newStripCmd(a),
		newBatchCmd(a),
	)

	return root
}

func (a *app) setup(out io.Writer) error {
	limits := a.config.Limits()

	p, err := tagmark.NewParser(
		tags.Standard(),
		tagmark.WithStrict(a.strict),
		tagmark.WithLimits(limits),
		tagmark.WithLogger(log.Logger),
	)
	if err != nil {
		return fmt.Errorf("cannot create parser: %w", err)
	}
	a.parser = p

	a.placeholders, err = util.LoadPlaceholderFile(a.placeholdersFile, p)
	if err != nil {
		return err
	}

	a.renderer = render.NewRenderer(out)

	profile, ok, err := render.ProfileByName(a.colorProfile)
	if err != nil {
		return err
	}
	if ok {
		a.renderer.SetProfile(profile)
	}

	return nil
}

// readMessage joins the arguments or, without any, reads the whole standard input.
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("cannot read message: %w", err)
	}

	return strings.TrimSuffix(string(data), "\n"), nil
}

func printWarnings(w io.Writer, warns *tagmark.Warnings) {
	for _, warn := range warns.List() {
		fmt.Fprintf(w, "warning: %s at %d:%d: %s\n", warn.Issue, warn.Span.Start, warn.Span.End, warn.Description)
	}
}
