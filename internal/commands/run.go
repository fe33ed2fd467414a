package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/seqhost/seqhost/internal/guest"
)

type RunOptions struct {
	ModulePath string
	Entry      string
	Watch      bool
}

// Run loads a guest wasm module, wires the seqhost bridge into its runtime,
// and drives its entry export. In watch mode the guest is re-run whenever a
// matching file under the module's directory changes.
func (c *Controller) Run(ctx context.Context, opts RunOptions) error {
	if opts.ModulePath == "" {
		return fmt.Errorf("module path is required")
	}

	cfg := c.loadConfig()
	if opts.Entry == "" {
		opts.Entry = cfg.Run.Entry
	}

	if !opts.Watch {
		return c.runOnce(ctx, opts)
	}

	// Watch mode: re-run on changes, but keep going on guest failures so a
	// broken build doesn't end the session.
	runs := make(chan struct{}, 1)
	runs <- struct{}{}

	watcher, err := newModuleWatcher(filepath.Dir(opts.ModulePath), cfg.Run.Watch, cfg.Run.Exclude, func(path string, op fsnotify.Op) {
		if op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		c.Logger.Info().Str("path", path).Msg("change detected, re-running guest")
		select {
		case runs <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	watchErr := make(chan error, 1)
	go func() { watchErr <- watcher.Start(ctx) }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watchErr:
			return err
		case <-runs:
			if err := c.runOnce(ctx, opts); err != nil {
				c.Logger.Error().Err(err).Msg("guest run failed")
			}
		}
	}
}

func (c *Controller) runOnce(ctx context.Context, opts RunOptions) error {
	wasmBytes, err := os.ReadFile(opts.ModulePath)
	if err != nil {
		return fmt.Errorf("failed to read guest module: %w", err)
	}

	bridge, err := BuiltinBridge(c.Logger)
	if err != nil {
		return err
	}

	module, err := guest.NewModule(ctx, wasmBytes, bridge)
	if err != nil {
		return err
	}
	defer module.Close(ctx)

	instance, err := module.Instantiate(ctx)
	if err != nil {
		return err
	}
	defer instance.Close(ctx)

	c.Logger.Info().
		Str("module", opts.ModulePath).
		Str("entry", opts.Entry).
		Msg("driving guest")

	return instance.Drive(ctx, opts.Entry)
}
