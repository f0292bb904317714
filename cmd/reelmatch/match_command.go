package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reelmatch/internal/logging"
	"reelmatch/internal/reconcile"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var year int
	var director string
	var country string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "match <title>",
		Short: "Reconcile a movie title against the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			client, err := newCatalogClient(cfg)
			if err != nil {
				return err
			}
			resolver := newResolver(cfg, client, logging.NewNop())

			query := reconcile.Query{
				Text:     strings.TrimSpace(args[0]),
				Year:     year,
				Director: strings.TrimSpace(director),
				Country:  strings.TrimSpace(country),
			}
			if query.Text == "" {
				return fmt.Errorf("title must not be empty")
			}

			candidates := resolver.Resolve(cmd.Context(), query)
			if jsonOutput {
				return writeJSON(cmd, candidates)
			}

			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintf(out, "No candidates for %q\n", query.Text)
				return nil
			}
			fmt.Fprintln(out, renderCandidates(candidates, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Release year hint")
	cmd.Flags().StringVar(&director, "director", "", "Director name hint")
	cmd.Flags().StringVar(&country, "country", "", "Production country hint")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit candidates as JSON")
	return cmd
}

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
)

func renderCandidates(candidates []reconcile.Candidate, colorize bool) string {
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		match := "no"
		if c.Match {
			match = "yes"
			if colorize {
				match = ansiGreen + match + ansiReset
			}
		}
		rows = append(rows, []string{
			c.ID,
			c.Name,
			strconv.Itoa(c.Score),
			match,
		})
	}
	return renderTable(candidateColumns, rows)
}
