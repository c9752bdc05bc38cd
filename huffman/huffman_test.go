package huffman

import (
	"errors"
)

// bitRecorder is a BitWriter that records bits as a '0'/'1' string.
type bitRecorder struct {
	bits []byte
}

func (rec *bitRecorder) WriteBit(bit bool) error {
	if bit {
		rec.bits = append(rec.bits, '1')
	} else {
		rec.bits = append(rec.bits, '0')
	}
	return nil
}

func (rec *bitRecorder) String() string {
	return string(rec.bits)
}

// bitSource is a BitReader that serves bits from a '0'/'1' string.
type bitSource struct {
	bits string
	pos  int
}

func (src *bitSource) HasNext() bool {
	return src.pos < len(src.bits)
}

func (src *bitSource) ReadBit() (bool, error) {
	if src.pos >= len(src.bits) {
		return false, errors.New("read past end of bit source")
	}
	bit := src.bits[src.pos] == '1'
	src.pos++
	return bit, nil
}

// encodeString runs the full pipeline on input and returns the emitted
// bit string plus the tree it was encoded with.
func encodeString(input string) (string, *Tree, error) {
	ft := CountBytes([]byte(input))
	tree := Build(ft)
	enc := NewEncoder(DeriveCodes(tree))
	var rec bitRecorder
	for i := 0; i < len(input); i++ {
		if err := enc.Encode(Symbol(input[i]), &rec); err != nil {
			return "", nil, err
		}
	}
	return rec.String(), tree, nil
}
