// Command hillclimb answers both hill-climbing queries for an elevation map:
// the fewest steps from S to E, and the fewest steps from any lowest cell to E.
//
// Usage:
//
//	hillclimb [-config hillclimb.yaml] [-input map.txt] [-json]
//	hillclimb -serve [-config hillclimb.yaml]
//
// Without -input (and without input in the config) the map is read from stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/server"
	"github.com/katalvlaran/hillclimb/solve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	inputPath := fs.String("input", "", "path to elevation map (overrides config input)")
	serve := fs.Bool("serve", false, "serve POST /api/climb instead of solving once")
	asJSON := fs.Bool("json", false, "print answers as JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := log.New(stderr, "", log.LstdFlags)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Printf("[ERROR] %v", err)
			return 1
		}
	}
	if *inputPath != "" {
		cfg.Input = *inputPath
	}
	if cfg.Logging.Quiet {
		logger.SetOutput(io.Discard)
	}

	if *serve {
		if !cfg.Logging.Quiet {
			cfg.Print()
		}
		if err := server.New(cfg).Run(); err != nil {
			logger.Printf("[ERROR] server: %v", err)
			return 1
		}
		return 0
	}

	g, err := loadGrid(cfg.Input, stdin)
	if err != nil {
		logger.Printf("[ERROR] %v", err)
		return 1
	}
	logger.Printf("[INFO] Loaded %dx%d map (%s cells)", g.Width(), g.Height(), humanize.Comma(int64(g.Cells())))

	a, err := solve.Run(g, cfg.Strategy(), cfg.LowestElevation())
	if err != nil {
		logger.Printf("[ERROR] search: %v", err)
		return 1
	}
	logger.Printf("[INFO] Settled %s cells using %s strategy", humanize.Comma(int64(a.NodesVisited)), cfg.Strategy())

	if *asJSON {
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(stdout)
		if err := enc.Encode(a); err != nil {
			logger.Printf("[ERROR] encode: %v", err)
			return 1
		}
		return 0
	}
	fmt.Fprintf(stdout, "part 1: %s\n", formatSteps(a.Steps, a.Reachable))
	fmt.Fprintf(stdout, "part 2: %s\n", formatSteps(a.BestSteps, a.BestReachable))
	return 0
}

// loadGrid reads the map from path, or from stdin when path is empty.
func loadGrid(path string, stdin io.Reader) (*heightmap.Grid, error) {
	if path == "" {
		return heightmap.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return heightmap.Parse(f)
}

func formatSteps(steps int, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%d", steps)
}
