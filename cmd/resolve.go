package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var resolvePoint string

var resolveCmd = &cobra.Command{
	Use:   "resolve [location]",
	Short: "Resolve a location string (or a lon,lat point) to a region",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gaz, err := loadGazetteer(cfg)
		if err != nil {
			return err
		}

		if resolvePoint != "" {
			lon, lat, err := parsePoint(resolvePoint)
			if err != nil {
				return err
			}
			entries := gaz.Locate(lon, lat)
			if len(entries) == 0 {
				fmt.Println("no gazetteer entries contain this point")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%-22s %s\n", e.Name, e.Region)
			}
			return nil
		}

		if len(args) == 0 {
			return eris.New("resolve: provide a location argument or --point")
		}

		res, err := buildResolver(cfg)
		if err != nil {
			return err
		}
		r := res.Resolve(cmd.Context(), args[0])
		fmt.Printf("region: %s\n", r.Region)
		fmt.Printf("tier:   %s\n", r.Tier)
		return nil
	},
}

// parsePoint parses "lon,lat".
func parsePoint(s string) (lon, lat float64, err error) {
	a, b, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, eris.Errorf("resolve: bad point %q, want lon,lat", s)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, eris.Errorf("resolve: bad longitude %q", a)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, eris.Errorf("resolve: bad latitude %q", b)
	}
	return lon, lat, nil
}

func init() {
	resolveCmd.Flags().StringVar(&resolvePoint, "point", "", "reverse lookup: lon,lat point to locate")
	rootCmd.AddCommand(resolveCmd)
}
