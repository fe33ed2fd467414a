package seq

// RowCount is the number of rows produced by Rows.
const RowCount = 40

// Rows is the stock demo generator: 40 rows where row i holds the integers
// 0 through i-1. Row 0 is empty.
func Rows() Sequence[[]uint64] {
	return Map(Range(0, RowCount), func(i uint64) []uint64 {
		return Collect(Range(0, i))
	})
}
