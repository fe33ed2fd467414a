// Package guest loads and drives foreign caller modules. A guest imports the
// seqhost host module, forms handles through the constructor exports, and
// pulls values through "next" at its own pace.
package guest

import (
	"context"
	"fmt"

	"github.com/seqhost/seqhost/internal/boundary"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// Module represents a compiled guest module that can create isolated
// instances. Each instance gets a fresh linear memory; handles formed by one
// instance are never visible to another.
type Module interface {
	// Instantiate creates a new isolated Instance.
	Instantiate(ctx context.Context) (Instance, error)

	// Close cleans up the runtime backing this module.
	Close(ctx context.Context) error
}

// NewModule compiles wasmBytes on a fresh runtime with WASI and the given
// bridge's host module wired in.
func NewModule(ctx context.Context, wasmBytes []byte, bridge *boundary.Bridge) (Module, error) {
	if len(wasmBytes) == 0 {
		return nil, fmt.Errorf("wasm bytes cannot be empty")
	}
	if bridge == nil {
		return nil, fmt.Errorf("bridge cannot be nil")
	}

	runtime := wazero.NewRuntime(ctx)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, runtime); err != nil {
		runtime.Close(ctx)
		return nil, fmt.Errorf("failed to instantiate WASI: %w", err)
	}

	if err := bridge.Instantiate(ctx, runtime); err != nil {
		runtime.Close(ctx)
		return nil, err
	}

	compiled, err := runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		runtime.Close(ctx)
		return nil, fmt.Errorf("failed to compile module: %w", err)
	}

	return &guestModule{
		runtime:  runtime,
		compiled: compiled,
	}, nil
}

type guestModule struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
}

func (m *guestModule) Instantiate(ctx context.Context) (Instance, error) {
	// Reactor-style module: don't call _start.
	config := wazero.NewModuleConfig().
		WithName("").
		WithStartFunctions()

	module, err := m.runtime.InstantiateModule(ctx, m.compiled, config)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	// Call _initialize if it exists
	if initialize := module.ExportedFunction("_initialize"); initialize != nil {
		if _, err := initialize.Call(ctx); err != nil {
			module.Close(ctx)
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	return &guestInstance{module: module}, nil
}

func (m *guestModule) Close(ctx context.Context) error {
	return m.runtime.Close(ctx)
}
