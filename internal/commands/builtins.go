package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/seqhost/seqhost/internal/boundary"
	"github.com/seqhost/seqhost/internal/handle"
	"github.com/seqhost/seqhost/internal/seq"
)

// BuiltinBridge returns a Bridge with the stock generator exports
// registered. Guests import these from the "seqhost" module.
func BuiltinBridge(logger zerolog.Logger) (*boundary.Bridge, error) {
	bridge := boundary.NewBridge(logger)

	if err := boundary.Export(bridge, "get_rows", boundary.Uint64SliceCodec{}, func() seq.Sequence[[]uint64] {
		return seq.Rows()
	}); err != nil {
		return nil, err
	}

	if err := boundary.Export(bridge, "get_naturals", boundary.Uint64Codec{}, func() seq.Sequence[uint64] {
		return seq.Counter(0)
	}); err != nil {
		return nil, err
	}

	return bridge, nil
}

// demoPuller drives one stock generator host-side, through the same
// handle-and-trampoline path a guest would use, rendering each value as a
// line of output.
type demoPuller struct {
	name string
	pull func(limit int, emit func(string)) (count int, exhausted bool)
}

func demoPullers() []demoPuller {
	return []demoPuller{
		{
			name: "get_rows",
			pull: func(limit int, emit func(string)) (int, bool) {
				h := handle.Form(seq.Rows())
				var slot []uint64
				count := 0
				for count < limit {
					if !h.Call(h.Token, &slot) {
						return count, true
					}
					emit(fmt.Sprintf("%v", slot))
					count++
				}
				return count, false
			},
		},
		{
			name: "get_naturals",
			pull: func(limit int, emit func(string)) (int, bool) {
				h := handle.Form(seq.Counter(0))
				var slot uint64
				count := 0
				for count < limit {
					if !h.Call(h.Token, &slot) {
						return count, true
					}
					emit(fmt.Sprintf("%d", slot))
					count++
				}
				return count, false
			},
		},
	}
}
