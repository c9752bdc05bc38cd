package huffman

// Symbol represents one indivisible unit of input, a single 8-bit value.
type Symbol byte

// NumSymbols is the size of the symbol alphabet.
const NumSymbols = 256
