// Package bitstream provides the bit-level plumbing between the huffman
// codec and ordinary byte streams: a Writer that packs individual bits
// into bytes, and a Reader that unpacks them with accurate end-of-stream
// detection.
package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Writer writes individual bits to an io.Writer, most significant bit
// first within each byte.  Close flushes the final partial byte, padded
// with zero bits; the padding carries no meaning and readers must not
// interpret it as data.
type Writer struct {
	bw      *bitio.Writer
	written uint64
	closed  bool
}

// NewWriter returns a Writer emitting into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// WriteBit appends one bit to the stream.
func (w *Writer) WriteBit(bit bool) error {
	if w.closed {
		return errors.New("bitstream: write on closed writer")
	}
	if err := w.bw.WriteBool(bit); err != nil {
		return errors.Wrap(err, "bitstream: write bit")
	}
	w.written++
	return nil
}

// Written returns the number of bits written so far, excluding padding.
func (w *Writer) Written() uint64 {
	return w.written
}

// Close flushes the final partial byte.  Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return errors.Wrap(w.bw.Close(), "bitstream: close")
}
