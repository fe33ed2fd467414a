package boundary

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

// Codec writes one produced element into the caller-owned destination slot
// in guest linear memory. Codecs are stateless values; two generators using
// the same codec share one trampoline id.
type Codec[T any] interface {
	// SlotSize is the number of bytes of slot storage the guest must
	// reserve per call.
	SlotSize() uint32

	// Encode writes v into the slot at dst. A false return means the slot
	// or the guest's allocator could not be used; the call is then out of
	// contract and reported to the guest as exhaustion.
	Encode(ctx context.Context, mod api.Module, dst uint32, v T) bool
}

// Uint64Codec writes a single integer into an 8-byte slot.
type Uint64Codec struct{}

func (Uint64Codec) SlotSize() uint32 { return 8 }

func (Uint64Codec) Encode(_ context.Context, mod api.Module, dst uint32, v uint64) bool {
	return mod.Memory().WriteUint64Le(dst, v)
}

// Uint64SliceCodec writes a variable-length row of integers. The slot is two
// little-endian 64-bit words, {ptr, len}; element storage is obtained from
// the guest's exported allocate function and is owned by the guest from then
// on. An empty row writes {0, 0} and allocates nothing.
type Uint64SliceCodec struct{}

func (Uint64SliceCodec) SlotSize() uint32 { return 16 }

func (Uint64SliceCodec) Encode(ctx context.Context, mod api.Module, dst uint32, v []uint64) bool {
	mem := mod.Memory()

	var ptr uint64
	if len(v) > 0 {
		allocate := mod.ExportedFunction("allocate")
		if allocate == nil {
			return false
		}
		results, err := allocate.Call(ctx, uint64(8*len(v)))
		if err != nil || len(results) == 0 {
			return false
		}
		ptr = results[0]

		for i, x := range v {
			if !mem.WriteUint64Le(uint32(ptr)+uint32(8*i), x) {
				return false
			}
		}
	}

	return mem.WriteUint64Le(dst, ptr) && mem.WriteUint64Le(dst+8, uint64(len(v)))
}
