package huffman

import (
	"io"
)

// FrequencyTable holds the number of occurrences of each Symbol observed
// in a single pass over one input.  The zero value is an empty table.
type FrequencyTable struct {
	counts [NumSymbols]uint64
	total  uint64
}

// CountBytes builds a FrequencyTable from an in-memory symbol sequence.
func CountBytes(data []byte) *FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft.Add(Symbol(b), 1)
	}
	return &ft
}

// CountFrom builds a FrequencyTable by scanning r until io.EOF.  Any
// other read error aborts the scan; the partial table is discarded and
// the error is returned.
func CountFrom(r io.ByteReader) (*FrequencyTable, error) {
	var ft FrequencyTable
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return &ft, nil
		}
		if err != nil {
			return nil, err
		}
		ft.Add(Symbol(b), 1)
	}
}

// Add records n additional occurrences of sym.
func (ft *FrequencyTable) Add(sym Symbol, n uint64) {
	ft.counts[sym] += n
	ft.total += n
}

// Count returns the number of occurrences recorded for sym.
func (ft *FrequencyTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Total returns the number of symbols counted, i.e. the input length.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Distinct returns the number of symbols with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	n := 0
	for _, c := range ft.counts {
		if c != 0 {
			n++
		}
	}
	return n
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.Distinct())
	for i, c := range ft.counts {
		if c != 0 {
			out = append(out, Symbol(i))
		}
	}
	return out
}
