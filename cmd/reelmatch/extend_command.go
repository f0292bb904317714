package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"reelmatch/internal/extension"
	"reelmatch/internal/logging"
)

func newExtendCommand(ctx *commandContext) *cobra.Command {
	var propertyIDs []string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "extend <movie-id> [movie-id...]",
		Short: "Fetch extension properties for catalog movie ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(propertyIDs) == 0 {
				return fmt.Errorf("at least one --property is required (see `reelmatch properties`)")
			}

			client, err := newCatalogClient(cfg)
			if err != nil {
				return err
			}
			extender := newExtender(cfg, client, logging.NewNop())

			result := extender.Extend(cmd.Context(), args, propertyIDs)
			if jsonOutput {
				return writeJSON(cmd, result)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderExtension(result))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&propertyIDs, "property", "p", nil, "Property id to fetch (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the extension result as JSON")
	return cmd
}

func renderExtension(result *extension.Result) string {
	ids := make([]string, 0, len(result.Rows))
	for id := range result.Rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([][]string, 0, len(ids)*len(result.Meta))
	for _, id := range ids {
		for _, meta := range result.Meta {
			rows = append(rows, []string{id, meta.Name, formatCells(result.Rows[id][meta.ID])})
		}
	}
	return renderTable(extensionColumns, rows)
}

// formatCells flattens a cell list into a display string. Entity cells show
// their name, scalar cells their value.
func formatCells(cells []extension.Cell) string {
	parts := make([]string, 0, len(cells))
	for _, cell := range cells {
		raw, err := json.Marshal(cell)
		if err != nil {
			continue
		}
		var scalar struct {
			Str   *string  `json:"str"`
			Int   *int64   `json:"int"`
			Float *float64 `json:"float"`
			Name  *string  `json:"name"`
		}
		if err := json.Unmarshal(raw, &scalar); err != nil {
			continue
		}
		switch {
		case scalar.Name != nil:
			parts = append(parts, *scalar.Name)
		case scalar.Str != nil:
			parts = append(parts, *scalar.Str)
		case scalar.Int != nil:
			parts = append(parts, fmt.Sprintf("%d", *scalar.Int))
		case scalar.Float != nil:
			parts = append(parts, fmt.Sprintf("%g", *scalar.Float))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
