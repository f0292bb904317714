package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelmatch/internal/extension"
)

func newPropertiesCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "properties [substring]",
		Short:       "List the extension property registry",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			props := extension.Properties()
			if len(args) == 1 {
				props = extension.Filter(args[0])
			}
			if jsonOutput {
				type propertyJSON struct {
					ID   string `json:"id"`
					Name string `json:"name"`
					Kind string `json:"kind"`
				}
				out := make([]propertyJSON, 0, len(props))
				for _, p := range props {
					out = append(out, propertyJSON{ID: p.ID, Name: p.Name, Kind: string(p.Kind)})
				}
				return writeJSON(cmd, out)
			}

			rows := make([][]string, 0, len(props))
			for _, p := range props {
				rows = append(rows, []string{p.ID, p.Name, string(p.Kind)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(registryColumns, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the registry as JSON")
	return cmd
}
