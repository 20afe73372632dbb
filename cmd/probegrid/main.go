// Package main is a command line tool that builds a light probe octree from a config file and
// reports its shape or the leaves hit by query positions.
package main

import (
	"log"
	"os"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	// Flags.
	flagConfig   = "config"
	flagDebug    = "debug"
	flagPosition = "position"
	flagWorkers  = "workers"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	var logger golog.Logger

	return &cli.App{
		Name:  "probegrid",
		Usage: "build and query light probe octrees",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagConfig,
				Aliases:  []string{"c"},
				Usage:    "load probe layout from `FILE`",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("probegrid")
			} else {
				logger = zap.NewNop().Sugar()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "build the octree and print a summary of its shape",
				Action: func(c *cli.Context) error {
					return buildAction(c, logger)
				},
			},
			{
				Name:      "query",
				Usage:     "build the octree and print the leaf for every query position",
				UsageText: "probegrid --config FILE query [--position x,y,z]...",
				Flags: []cli.Flag{
					&cli.GenericFlag{
						Name:    flagPosition,
						Aliases: []string{"p"},
						Value:   &positionList{},
						Usage:   "position to query as `x,y,z`; defaults to the queries in the config",
					},
					&cli.IntFlag{
						Name:  flagWorkers,
						Usage: "number of goroutines used for queries; 0 uses GOMAXPROCS",
					},
				},
				Action: func(c *cli.Context) error {
					return queryAction(c, logger)
				},
			},
		},
	}
}
