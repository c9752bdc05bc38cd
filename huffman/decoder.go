package huffman

import (
	"errors"
	"io"
)

// BitReader is the bit source a Decoder consumes.  HasNext must return
// false only at true end-of-stream; a bounded implementation can use
// that to hide byte-boundary padding from the decoder entirely.
type BitReader interface {
	HasNext() bool
	ReadBit() (bool, error)
}

// ErrMalformedBitstream is reported when a bit requires traversal to a
// child that does not exist.  It means the supplied tree does not match
// the bitstream being decoded.
var ErrMalformedBitstream = errors.New("huffman: bitstream does not match code tree")

// Decoder walks a code tree bit by bit, emitting a symbol and resetting
// to the root each time a leaf is reached.
type Decoder struct {
	tree *Tree
}

// NewDecoder returns a Decoder over tree.  The tree must be the one the
// bitstream was encoded with, or decoding will silently diverge.
func NewDecoder(tree *Tree) *Decoder {
	return &Decoder{tree: tree}
}

// Decode consumes bits from r until it is exhausted, writing each
// decoded symbol to dst in order.  Bits after the last complete symbol
// that do not themselves complete one are padding and are discarded;
// ending mid-path is expected, not an error.
//
// The empty tree decodes an empty bit source to empty output; any bit
// arriving for the empty tree is ErrMalformedBitstream.  A tree whose
// root is a bare leaf encodes its one symbol per bit, so Decode emits
// that symbol once for every bit read.
func (d *Decoder) Decode(r BitReader, dst io.ByteWriter) error {
	t := d.tree
	if t.Empty() {
		if r.HasNext() {
			return ErrMalformedBitstream
		}
		return nil
	}

	if t.leaf(t.root) {
		sym := byte(t.symbol(t.root))
		for r.HasNext() {
			if _, err := r.ReadBit(); err != nil {
				return err
			}
			if err := dst.WriteByte(sym); err != nil {
				return err
			}
		}
		return nil
	}

	cur := t.root
	for r.HasNext() {
		bit, err := r.ReadBit()
		if err != nil {
			return err
		}
		if bit {
			cur = t.nodes[cur].right
		} else {
			cur = t.nodes[cur].left
		}
		if cur == nilRef {
			return ErrMalformedBitstream
		}
		if t.leaf(cur) {
			if err := dst.WriteByte(byte(t.symbol(cur))); err != nil {
				return err
			}
			cur = t.root
		}
	}
	return nil
}
