package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/terralens-cli/internal/gazetteer"
)

var (
	gazImportShp       string
	gazImportXLSX      string
	gazImportNameField string
	gazImportOut       string
)

var gazetteerCmd = &cobra.Command{
	Use:   "gazetteer",
	Short: "Inspect and build gazetteer tables",
}

var gazetteerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured gazetteer entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		gaz, err := loadGazetteer(cfg)
		if err != nil {
			return err
		}
		for _, e := range gaz.Entries() {
			fmt.Printf("%-22s %s\n", e.Name, e.Region)
		}
		return nil
	},
}

var gazetteerImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Build a gazetteer YAML file from a shapefile or spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			entries []gazetteer.Entry
			err     error
		)

		switch {
		case gazImportShp != "":
			entries, err = gazetteer.ImportShapefile(gazImportShp, gazImportNameField)
		case gazImportXLSX != "":
			entries, err = gazetteer.ImportXLSX(gazImportXLSX)
		default:
			return eris.New("gazetteer import: provide --shp or --xlsx")
		}
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return eris.New("gazetteer import: no importable entries found")
		}

		g, err := gazetteer.New(entries, nil)
		if err != nil {
			return err
		}
		if err := gazetteer.WriteFile(gazImportOut, g); err != nil {
			return err
		}

		zap.L().Info("gazetteer written",
			zap.String("path", gazImportOut),
			zap.Int("entries", g.Len()),
		)
		return nil
	},
}

func init() {
	gazetteerImportCmd.Flags().StringVar(&gazImportShp, "shp", "", "shapefile to import")
	gazetteerImportCmd.Flags().StringVar(&gazImportXLSX, "xlsx", "", "spreadsheet to import (name,min_lon,min_lat,max_lon,max_lat)")
	gazetteerImportCmd.Flags().StringVar(&gazImportNameField, "name-field", "NAME", "shapefile attribute holding the location name")
	gazetteerImportCmd.Flags().StringVar(&gazImportOut, "out", "gazetteer.yaml", "output YAML path")

	gazetteerCmd.AddCommand(gazetteerListCmd)
	gazetteerCmd.AddCommand(gazetteerImportCmd)
	rootCmd.AddCommand(gazetteerCmd)
}
