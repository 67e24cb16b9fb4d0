package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/terralens-cli/internal/model"
	"github.com/sells-group/terralens-cli/internal/planner"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List known imagery datasets and analysis types",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := planner.Catalog()
		keys := make([]string, 0, len(catalog))
		for k := range catalog {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Println("Datasets:")
		for _, k := range keys {
			d := catalog[k]
			fmt.Printf("  %-12s %s (%s, %s, bands: %s)\n",
				k, d.Name, d.CollectionID, d.SpatialResolution, strings.Join(d.Bands, ","))
		}

		fmt.Println()
		fmt.Println("Analysis types:")
		for _, at := range model.AnalysisTypes {
			status := "available"
			if !at.Implemented() {
				status = "declared, not implemented"
			}
			fmt.Printf("  %-26s %s\n", at, status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
