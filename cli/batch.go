package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Drolfothesgnir/tagmark/styled"
)

type batchResult struct {
	comp *styled.Component
	err  error
}

func newBatchCmd(a *app) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Parse every line of a file concurrently",
		Long:  "Parse every line of a file, or of the standard input, as a separate message. Output keeps the input order.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("cannot open batch file: %w", err)
				}
				defer f.Close()
				in = f
			}

			lines, err := readLines(in)
			if err != nil {
				return err
			}

			results := make([]batchResult, len(lines))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(1, jobs))

			for i, line := range lines {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}

					c, err := a.parser.Parse(line, a.placeholders)
					results[i] = batchResult{comp: c, err: err}
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			failed := 0
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			for i, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(errOut, "line %d: %v\n", i+1, r.err)
					fmt.Fprintln(out)
					continue
				}
				fmt.Fprintln(out, a.renderer.Render(r.comp))
			}

			log.Debug().Int("messages", len(lines)).Int("failed", failed).Msg("batch finished")

			if failed > 0 {
				return fmt.Errorf("%d of %d messages failed", failed, len(lines))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of messages parsed at the same time")

	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cannot read batch input: %w", err)
	}

	return lines, nil
}
