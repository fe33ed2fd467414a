package boundary

import (
	"github.com/seqhost/seqhost/internal/handle"
	"github.com/tetratelabs/wazero/api"
)

// RecordSize is the size in bytes of the handle record written into guest
// memory by a constructor export.
const RecordSize = 16

// The handle record is two little-endian 64-bit words in declaration order:
// word 0 is the call target (the trampoline id the guest passes back to
// "next"), word 1 is the opaque token. The layout is fixed; guests declare
// the matching struct field-for-field.
func writeRecord(mod api.Module, out uint32, target uint64, tok handle.Token) bool {
	mem := mod.Memory()
	return mem.WriteUint64Le(out, target) && mem.WriteUint64Le(out+8, uint64(tok))
}
