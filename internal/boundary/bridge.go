// Package boundary exposes formed handles to WebAssembly guests through a
// fixed calling convention: a 16-byte handle record, one shared "next" host
// function, and one constructor export per registered generator.
package boundary

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/seqhost/seqhost/internal/handle"
	"github.com/seqhost/seqhost/internal/seq"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// HostModuleName is the import namespace guests use for seqhost functions.
const HostModuleName = "seqhost"

// trampolineFunc advances the sequence behind tok by one step and lands the
// produced element in guest memory at dst. False means the guest must not
// call again with tok.
type trampolineFunc func(ctx context.Context, mod api.Module, tok handle.Token, dst uint32) bool

// generator is one registered constructor export.
type generator struct {
	export string
	form   func() (target uint64, tok handle.Token)
}

// Bridge collects generator registrations and instantiates them as the
// "seqhost" host module on a wazero runtime.
//
// Registration happens host-side before any guest is instantiated; after
// Instantiate the Bridge is read-only, so the trampoline dispatch path takes
// no locks.
type Bridge struct {
	logger      zerolog.Logger
	trampolines map[uint64]trampolineFunc
	targetIDs   map[any]uint64
	generators  []*generator
	nextTarget  uint64
}

// NewBridge creates an empty Bridge.
func NewBridge(logger zerolog.Logger) *Bridge {
	return &Bridge{
		logger:      logger,
		trampolines: make(map[uint64]trampolineFunc),
		targetIDs:   make(map[any]uint64),
	}
}

// Export registers a constructor export under name. Each guest call to the
// export runs newSeq, forms a handle over the result, and writes the handle
// record into guest memory. Elements are landed through codec; generators
// registered with the same codec value share one call-target id.
func Export[T any](b *Bridge, name string, codec Codec[T], newSeq func() seq.Sequence[T]) error {
	for _, g := range b.generators {
		if g.export == name {
			return fmt.Errorf("generator %s already registered", name)
		}
	}

	target, ok := b.targetIDs[codec]
	if !ok {
		b.nextTarget++
		target = b.nextTarget
		b.targetIDs[codec] = target
		b.trampolines[target] = func(ctx context.Context, mod api.Module, tok handle.Token, dst uint32) bool {
			var v T
			if !handle.Next(tok, &v) {
				return false
			}
			return codec.Encode(ctx, mod, dst, v)
		}
	}

	b.generators = append(b.generators, &generator{
		export: name,
		form: func() (uint64, handle.Token) {
			return target, handle.Form(newSeq()).Token
		},
	})

	b.logger.Debug().
		Str("export", name).
		Uint64("target", target).
		Uint32("slot_size", codec.SlotSize()).
		Msg("registered generator export")

	return nil
}

// Generators returns the registered constructor export names, in
// registration order.
func (b *Bridge) Generators() []string {
	names := make([]string, 0, len(b.generators))
	for _, g := range b.generators {
		names = append(names, g.export)
	}
	return names
}

// Instantiate builds the seqhost host module on runtime. It must be called
// before the guest module that imports it is instantiated.
func (b *Bridge) Instantiate(ctx context.Context, runtime wazero.Runtime) error {
	builder := runtime.NewHostModuleBuilder(HostModuleName)

	// The single sanctioned advancement entry point. The guest passes the
	// two words of its handle record plus a destination-slot pointer and
	// gets back 1 (value written, call again) or 0 (exhausted, handle is
	// inert).
	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(b.nextCall), []api.ValueType{
			api.ValueTypeI64, // call target
			api.ValueTypeI64, // token
			api.ValueTypeI32, // destination slot pointer
		}, []api.ValueType{
			api.ValueTypeI32, // has more
		}).
		Export("next")

	for _, g := range b.generators {
		g := g
		builder.NewFunctionBuilder().
			WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
				b.formCall(ctx, mod, g, stack)
			}), []api.ValueType{
				api.ValueTypeI32, // handle record pointer
			}, nil).
			Export(g.export)
	}

	_, err := builder.Instantiate(ctx)
	if err != nil {
		return fmt.Errorf("failed to instantiate %s host module: %w", HostModuleName, err)
	}

	b.logger.Debug().
		Int("generators", len(b.generators)).
		Msg("seqhost host module instantiated")

	return nil
}

func (b *Bridge) nextCall(ctx context.Context, mod api.Module, stack []uint64) {
	target := stack[0]
	tok := handle.Token(stack[1])
	dst := uint32(stack[2])

	trampoline, ok := b.trampolines[target]
	if !ok {
		// Unknown call target is out of contract; the guest sees
		// exhaustion rather than an error.
		stack[0] = 0
		return
	}

	if trampoline(ctx, mod, tok, dst) {
		stack[0] = 1
	} else {
		stack[0] = 0
	}
}

func (b *Bridge) formCall(_ context.Context, mod api.Module, g *generator, stack []uint64) {
	out := uint32(stack[0])
	target, tok := g.form()
	if !writeRecord(mod, out, target, tok) {
		// Unwritable record pointer. The handle was still formed, so
		// the sequence leaks, same as caller abandonment.
		b.logger.Warn().
			Str("export", g.export).
			Uint32("out", out).
			Msg("handle record pointer out of bounds")
	}
}
