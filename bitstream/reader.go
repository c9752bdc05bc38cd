package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Reader reads individual bits from an io.Reader, most significant bit
// first within each byte.  HasNext uses one bit of lookahead, so it
// returns false exactly at true end-of-stream and never sooner.
//
// An unbounded Reader is exhausted at the underlying stream's byte
// boundary, which surfaces any padding bits in the final byte to the
// caller.  A Reader from NewReaderBits is exhausted after exactly n
// bits, so padding is never surfaced at all.
type Reader struct {
	br      *bitio.Reader
	limit   uint64
	limited bool
	read    uint64
	peeked  bool
	peek    bool
	err     error
}

// NewReader returns a Reader consuming r until the underlying stream
// ends.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// NewReaderBits returns a Reader that reports exhaustion after exactly
// n bits, regardless of how many further bits the underlying stream
// holds.
func NewReaderBits(r io.Reader, n uint64) *Reader {
	return &Reader{br: bitio.NewReader(r), limit: n, limited: true}
}

// HasNext reports whether at least one more bit can be read.
func (r *Reader) HasNext() bool {
	if r.peeked {
		return true
	}
	if r.err != nil {
		return false
	}
	if r.limited && r.read >= r.limit {
		return false
	}
	b, err := r.br.ReadBool()
	if err != nil {
		if err == io.EOF {
			r.err = io.EOF
		} else {
			r.err = errors.Wrap(err, "bitstream: read bit")
		}
		return false
	}
	r.peeked = true
	r.peek = b
	return true
}

// Err returns the first non-EOF error encountered by HasNext, if any.
// HasNext reports a failed read as plain exhaustion, so callers that
// need to distinguish a broken stream from a finished one check Err
// after the read loop, as with bufio.Scanner.
func (r *Reader) Err() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}

// ReadBit returns the next bit.  Reading past end-of-stream returns
// io.EOF.
func (r *Reader) ReadBit() (bool, error) {
	if r.peeked {
		r.peeked = false
		r.read++
		return r.peek, nil
	}
	if r.err != nil {
		return false, r.err
	}
	if r.limited && r.read >= r.limit {
		return false, io.EOF
	}
	b, err := r.br.ReadBool()
	if err != nil {
		if err == io.EOF {
			return false, io.EOF
		}
		return false, errors.Wrap(err, "bitstream: read bit")
	}
	r.read++
	return b, nil
}
