// Package huffpress implements a lossless file compression format built
// on the tree-based Huffman codec in the huffman subpackage.  An archive
// carries the symbol-frequency table of the original input followed by
// the packed code bits, so decompression rebuilds the exact code tree
// without needing the original file.
package huffpress

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/bitforest/huffpress/bitstream"
	"github.com/bitforest/huffpress/huffman"
)

// Compress reads src twice, once to count symbol frequencies and once to
// encode, and writes a complete archive to dst.  Empty input produces a
// valid archive with an empty frequency table and zero payload bits.
//
// On error, dst is left in an unspecified partial state.
func Compress(dst io.Writer, src io.ReadSeeker) error {
	ft, err := huffman.CountFrom(bufio.NewReader(src))
	if err != nil {
		return errors.Wrap(err, "huffpress: scan input")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "huffpress: rewind input")
	}

	tree := huffman.Build(ft)
	table := huffman.DeriveCodes(tree)

	if err := writeHeader(dst, ft); err != nil {
		return err
	}

	bw := bitstream.NewWriter(dst)
	enc := huffman.NewEncoder(table)
	if err := enc.EncodeFrom(bufio.NewReader(src), bw); err != nil {
		return errors.Wrap(err, "huffpress: encode")
	}
	return bw.Close()
}

// CompressBytes compresses an in-memory input and returns the archive.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress reads an archive from src and writes the reconstructed
// original to dst, byte for byte.
func Decompress(dst io.Writer, src io.Reader) error {
	ft, err := readHeader(src)
	if err != nil {
		return err
	}

	tree := huffman.Build(ft)
	table := huffman.DeriveCodes(tree)

	// The decoder's bit source ends exactly where the code bits do, so
	// the byte-boundary padding in the final payload byte is unreachable.
	out := bufio.NewWriter(dst)
	cw := &countingWriter{w: out}
	dec := huffman.NewDecoder(tree)
	br := bitstream.NewReaderBits(src, payloadBits(ft, table))
	if err := dec.Decode(br, cw); err != nil {
		return errors.Wrap(err, "huffpress: decode")
	}
	if err := br.Err(); err != nil {
		return errors.Wrap(err, "huffpress: decode")
	}
	if cw.n != ft.Total() {
		return ErrTruncatedArchive
	}
	return errors.Wrap(out.Flush(), "huffpress: flush output")
}

// DecompressBytes decompresses an in-memory archive and returns the
// reconstructed original.
func DecompressBytes(archive []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decompress(&buf, bytes.NewReader(archive)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// payloadBits computes the exact bit length of the encoded payload from
// the frequency table and the code table derived from it.
func payloadBits(ft *huffman.FrequencyTable, table huffman.CodeTable) uint64 {
	var n uint64
	for sym, code := range table {
		n += ft.Count(sym) * uint64(code.Len())
	}
	return n
}

// countingWriter counts the symbols emitted by the decoder so Decompress
// can tell a truncated payload apart from a completed one.
type countingWriter struct {
	w io.ByteWriter
	n uint64
}

func (cw *countingWriter) WriteByte(b byte) error {
	if err := cw.w.WriteByte(b); err != nil {
		return err
	}
	cw.n++
	return nil
}
