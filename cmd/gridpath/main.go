// Command gridpath searches a scenario once and reports the route.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/config"
	"github.com/pdrpinto/gridpath/internal/export"
	"github.com/pdrpinto/gridpath/internal/render"
	"github.com/pdrpinto/gridpath/internal/session"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("[ERROR] %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	scenarioPath := flags.String("scenario", "", "YAML scenario (default: built-in layout)")
	algorithm := flags.String("algorithm", "", "a_star, greedy, breadth_first or greedy_legacy (default: the scenario's)")
	pngPath := flags.String("png", "", "write a rendering of the result to this file")
	geojsonPath := flags.String("geojson", "", "write the result as GeoJSON to this file")
	dumpWalls := flags.Bool("dump-walls", false, "print the wall list")
	if err := flags.Parse(args); err != nil {
		return err
	}

	scenario := config.DefaultScenario()
	if *scenarioPath != "" {
		loaded, err := config.Load(*scenarioPath)
		if err != nil {
			return err
		}
		scenario = loaded
	}
	setup, err := scenario.Build()
	if err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}
	if *algorithm != "" {
		if setup.Algorithm, err = gridpath.ParseAlgorithm(*algorithm); err != nil {
			return err
		}
	}

	s, err := session.New(ctx, setup.Grid, setup.Start, setup.Goal, setup.Algorithm)
	if err != nil {
		return err
	}
	defer s.Close()
	view := s.View()

	fmt.Fprintf(stdout, "algorithm: %s\n", view.Algorithm)
	fmt.Fprintf(stdout, "expanded:  %d\n", view.Expanded)
	if view.Found {
		path := make([]string, 0, len(view.Route)+1)
		for _, step := range view.Route {
			path = append(path, step.Cell.String())
		}
		path = append(path, view.Goal.String())
		fmt.Fprintf(stdout, "cost:      %d\n", view.Cost)
		fmt.Fprintf(stdout, "path:      %s\n", strings.Join(path, " "))
	} else {
		fmt.Fprintln(stdout, "no path")
	}
	if *dumpWalls {
		fmt.Fprintf(stdout, "walls:     %v\n", view.Walls)
	}

	if *pngPath != "" {
		if err := render.SavePNG(*pngPath, view, scenario.Config); err != nil {
			return err
		}
		log.Printf("[INFO] wrote %s", *pngPath)
	}
	if *geojsonPath != "" {
		data, err := export.Marshal(view)
		if err != nil {
			return fmt.Errorf("encode geojson: %w", err)
		}
		if err := os.WriteFile(*geojsonPath, data, 0o644); err != nil {
			return fmt.Errorf("write geojson: %w", err)
		}
		log.Printf("[INFO] wrote %s", *geojsonPath)
	}
	return nil
}
