// Package huffman implements a tree-based Huffman codec over 8-bit
// symbols: frequency counting, priority-queue tree construction, code
// table derivation, and bit-at-a-time encode/decode.
//
// The pipeline is a chain of value-producing stages:
//
//	CountFrom -> Build -> DeriveCodes -> Encoder / Decoder
//
// Each stage owns and returns its result; nothing is shared or mutated
// across stages, so every stage is independently testable and concurrent
// runs over different inputs never interfere.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
