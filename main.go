package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kwv/shapecheck/geom"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	configFile = flag.String("config", "", "Path to optional YAML configuration file")
	checkKind  = flag.String("check", "", "One-shot mode: validate points as this kind (triangle or quadrilateral) and exit")
	pointsSpec = flag.String("points", "", "Coordinate pairs for --check mode: \"x1,y1 x2,y2 ...\"")
	sketchFile = flag.String("sketch", "", "Write a sketch of the accepted shape to this file (--check mode)")
	precision  = flag.Int("precision", 0, "Decimal places for printed metrics (overrides config)")
	version    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("shapecheck version: %s\n", Version)
		return
	}

	cfg := &geom.Config{}
	if *configFile != "" {
		loaded, err := geom.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	if *precision > 0 {
		cfg.Precision = *precision
	}

	app := NewApp(cfg, os.Stdin, os.Stdout)

	if *checkKind != "" {
		if *pointsSpec == "" {
			log.Fatal("--check requires --points")
		}
		if err := app.RunCheck(*checkKind, *pointsSpec, *sketchFile); err != nil {
			fmt.Fprintf(os.Stderr, "rejected: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := app.Run(); err != nil {
		log.Fatalf("shell: %v", err)
	}
}
