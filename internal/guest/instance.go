package guest

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// Instance is a single live guest. Drive invokes a nullary guest export that
// performs the pull loop; the guest decides how many times to call next and
// is free to abandon a handle mid-sequence.
type Instance interface {
	Drive(ctx context.Context, entry string) error
	Close(ctx context.Context) error
}

type guestInstance struct {
	module api.Module
}

func (g *guestInstance) Drive(ctx context.Context, entry string) error {
	fn := g.module.ExportedFunction(entry)
	if fn == nil {
		return fmt.Errorf("entry function %s not found in guest", entry)
	}

	if _, err := fn.Call(ctx); err != nil {
		return fmt.Errorf("failed to call %s: %w", entry, err)
	}

	return nil
}

func (g *guestInstance) Close(ctx context.Context) error {
	return g.module.Close(ctx)
}
