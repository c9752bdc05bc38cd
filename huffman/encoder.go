package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// BitWriter is the bit sink an Encoder emits into.  Implementations
// flush any partial final byte on their own scoped close; padding bit
// values are unconstrained and carry no meaning.
type BitWriter interface {
	WriteBit(bit bool) error
}

// Encoder maps symbols to their codes and emits the code bits in order.
type Encoder struct {
	table CodeTable
}

// NewEncoder returns an Encoder over the given code table.  The table
// must have been derived from the same input the Encoder will encode.
func NewEncoder(table CodeTable) *Encoder {
	return &Encoder{table: table}
}

// Encode emits the code bits for one symbol.  The symbol must be present
// in the table; a missing symbol means the table was derived from a
// different input, which is a caller contract violation.
func (e *Encoder) Encode(sym Symbol, w BitWriter) error {
	code, found := e.table[sym]
	assert.Assertf(found, "symbol %d has no code; table was derived from different input", sym)
	for i := 0; i < code.Len(); i++ {
		if err := w.WriteBit(code.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

// EncodeFrom encodes every symbol read from r, in order, until io.EOF.
// Read and write failures abort the encode and propagate; the sink is
// left in an unspecified partial state.
func (e *Encoder) EncodeFrom(r io.ByteReader, w BitWriter) error {
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := e.Encode(Symbol(b), w); err != nil {
			return err
		}
	}
}
