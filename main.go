package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/seqhost/seqhost/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "seqhost",
		Usage:   `Expose native pull sequences to WebAssembly guests through a fixed handle-and-trampoline calling convention.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("SEQHOST_LOG_LEVEL"),
				Value:   "warn",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)
			ctrl.Logger = log.Logger

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "Pull a stock generator host-side and print its values",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "generator",
						Usage: "generator export to pull (prompts when omitted)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of values to pull",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Demo(ctx, commands.DemoOptions{
						Generator: c.String("generator"),
						Limit:     int(c.Int("limit")),
					})
				},
			},
			{
				Name:      "run",
				Usage:     "Drive a guest wasm module against the seqhost bridge",
				ArgsUsage: "<module.wasm>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "entry",
						Usage: "guest export that performs the pull loop",
					},
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "re-run the guest when its files change",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Run(ctx, commands.RunOptions{
						ModulePath: c.Args().First(),
						Entry:      c.String("entry"),
						Watch:      c.Bool("watch"),
					})
				},
			},
			{
				Name:  "generators",
				Usage: "List the constructor exports available to guests",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generators(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run seqhost")
	}
}
