package commands

import (
	"context"
	"fmt"
)

// Generators lists the constructor exports guests can import from the
// seqhost module.
func (c *Controller) Generators(ctx context.Context) error {
	bridge, err := BuiltinBridge(c.Logger)
	if err != nil {
		return err
	}

	for _, name := range bridge.Generators() {
		fmt.Println(name)
	}
	return nil
}
