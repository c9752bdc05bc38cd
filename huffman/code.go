package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents the bit-string assigned to a symbol: the root-to-leaf
// path through the code tree, with a '0' for each left edge and a '1'
// for each right edge.
//
// Codes are not bounded at 64 bits; an adversarial 256-symbol frequency
// distribution can push the deepest leaf to depth 255.
type Code struct {
	bits string
}

// MakeCode constructs a Code from a string of '0' and '1' characters.
func MakeCode(bits string) Code {
	for i := 0; i < len(bits); i++ {
		c := bits[i]
		assert.Assertf(c == '0' || c == '1', "bit %d is %q, must be '0' or '1'", i, c)
	}
	return Code{bits: bits}
}

// Len is the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc.bits)
}

// Empty reports whether this Code holds no bits.  The zero Code is empty;
// every code in a derived CodeTable is non-empty.
func (hc Code) Empty() bool {
	return len(hc.bits) == 0
}

// Bit returns the i'th bit of this Code, counting from the root end.
// True means 1 (a right edge), false means 0 (a left edge).
func (hc Code) Bit(i int) bool {
	return hc.bits[i] == '1'
}

// IsPrefixOf reports whether this Code is a proper prefix of other.
func (hc Code) IsPrefixOf(other Code) bool {
	return len(hc.bits) < len(other.bits) && strings.HasPrefix(other.bits, hc.bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.bits)
}

var _ fmt.Stringer = Code{}

// CodeTable maps each distinct input symbol to its Code.  Tables produced
// by DeriveCodes are prefix-free: no code is a prefix of any other.
type CodeTable map[Symbol]Code
