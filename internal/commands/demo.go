package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/seqhost/seqhost/internal/handle"
)

type DemoOptions struct {
	Generator string
	Limit     int
	// For testing: if true, skip prompting and use the configured default
	NoPrompt bool
}

// Demo pulls a stock generator to exhaustion (or to the limit) host-side and
// prints each produced value. Stopping at the limit abandons the handle, so
// the live-handle count printed at the end makes the abandonment leak
// visible.
func (c *Controller) Demo(ctx context.Context, opts DemoOptions) error {
	cfg := c.loadConfig()

	if opts.Limit <= 0 {
		opts.Limit = cfg.Demo.Limit
	}

	pullers := demoPullers()

	if opts.Generator == "" {
		if opts.NoPrompt {
			opts.Generator = cfg.Demo.Generator
		} else {
			selected, err := promptGenerator(pullers)
			if err != nil {
				return err
			}
			opts.Generator = selected
		}
	}

	for _, puller := range pullers {
		if puller.name != opts.Generator {
			continue
		}

		count, exhausted := puller.pull(opts.Limit, func(line string) {
			fmt.Println(line)
		})

		if exhausted {
			fmt.Printf("%s: %d value(s), exhausted\n", puller.name, count)
		} else {
			fmt.Printf("%s: %d value(s), stopped at limit\n", puller.name, count)
		}
		fmt.Printf("live handles: %d\n", handle.Live())
		return nil
	}

	return fmt.Errorf("unknown generator: %s", opts.Generator)
}

func promptGenerator(pullers []demoPuller) (string, error) {
	options := make([]huh.Option[string], 0, len(pullers))
	for _, puller := range pullers {
		options = append(options, huh.NewOption(puller.name, puller.name))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Generator").
				Description("Which sequence should the demo pull?").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("generator selection failed: %w", err)
	}

	return selected, nil
}
