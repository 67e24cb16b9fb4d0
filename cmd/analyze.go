package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/terralens-cli/internal/analysis"
)

var (
	analyzeQuery    string
	analyzeLocation string
	analyzePeriod   string
	analyzeJSON     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a geospatial analysis for a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cfg)
		if err != nil {
			return err
		}

		result, err := engine.Run(cmd.Context(), analysis.Request{
			Query:      analyzeQuery,
			Location:   analyzeLocation,
			TimePeriod: analyzePeriod,
		})
		if err != nil {
			return err
		}

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		printResult(result)
		return nil
	},
}

func printResult(r *analysis.Result) {
	fmt.Printf("Analysis:  %s\n", r.Plan.AnalysisType)
	fmt.Printf("Run ID:    %s\n", r.ID)
	fmt.Printf("Region:    %s (tier: %s)\n", r.Resolution.Region, r.Resolution.Tier)
	fmt.Printf("Period:    %s\n", r.Plan.TimePeriod)
	fmt.Println()

	fmt.Println("Plan:")
	for _, s := range r.Plan.Steps {
		fmt.Printf("  %d. %s (%s)\n", s.Number, s.Description, s.Method)
	}
	fmt.Println()

	st := r.Stats
	fmt.Printf("Cells: %d\n", st.TotalCells)
	if len(st.Zones) > 0 {
		fmt.Println("Zones:")
		for _, z := range st.Zones {
			fmt.Printf("  %d (%s): %d cells (%.2f%%)\n", z.Zone, z.Label, z.Cells, z.Percent)
		}
		fmt.Printf("Score: min %.2f / mean %.2f / max %.2f\n", st.ScoreMin, st.ScoreMean, st.ScoreMax)
	}
	if st.DeforestedCells > 0 || st.ForestStartCells > 0 {
		fmt.Printf("Forest at start: %d cells\n", st.ForestStartCells)
		fmt.Printf("Forest at end:   %d cells\n", st.ForestEndCells)
		fmt.Printf("Deforested:      %d cells (%.2f%% of initial forest)\n", st.DeforestedCells, st.DeforestedPct)
	}
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeQuery, "query", "q", "", "free-text analysis query (required)")
	analyzeCmd.Flags().StringVarP(&analyzeLocation, "location", "l", "", "location of interest (required)")
	analyzeCmd.Flags().StringVarP(&analyzePeriod, "period", "p", "2020-2023", "time period as <startYear>-<endYear>")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit full result as JSON")
	_ = analyzeCmd.MarkFlagRequired("query")
	_ = analyzeCmd.MarkFlagRequired("location")
	rootCmd.AddCommand(analyzeCmd)
}
