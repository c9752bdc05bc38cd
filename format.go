package huffpress

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/bitforest/huffpress/huffman"
)

// Archive layout:
//
//	magic    uint32  big-endian, "HUF1"
//	version  byte    currently 1
//	nsyms    uint16  number of distinct symbols, 0..256
//	nsyms ×  { symbol byte, count uint64 big-endian }  ascending by symbol
//	payload  packed code bits, zero-padded to a byte boundary
//
// The header persists the frequency table rather than the tree: the tree
// builder is deterministic, so rebuilding from the counts on decompress
// reproduces the exact tree and code table the payload was encoded with.
const (
	formatMagic   = uint32(0x48554631) // "HUF1"
	formatVersion = byte(1)
)

var (
	// ErrBadMagic is reported when the input does not start with the
	// archive magic number.
	ErrBadMagic = errors.New("huffpress: not a huffpress archive")

	// ErrBadVersion is reported for archives written by an unknown
	// format version.
	ErrBadVersion = errors.New("huffpress: unsupported archive version")

	// ErrCorruptHeader is reported when the frequency table in the
	// archive header is inconsistent.
	ErrCorruptHeader = errors.New("huffpress: corrupt archive header")

	// ErrTruncatedArchive is reported when the payload ends before
	// every symbol promised by the header has been decoded.
	ErrTruncatedArchive = errors.New("huffpress: archive payload truncated")
)

func writeHeader(w io.Writer, ft *huffman.FrequencyTable) error {
	syms := ft.Symbols()

	if err := binary.Write(w, binary.BigEndian, formatMagic); err != nil {
		return errors.Wrap(err, "huffpress: write header")
	}
	if err := binary.Write(w, binary.BigEndian, formatVersion); err != nil {
		return errors.Wrap(err, "huffpress: write header")
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(syms))); err != nil {
		return errors.Wrap(err, "huffpress: write header")
	}
	for _, sym := range syms {
		if err := binary.Write(w, binary.BigEndian, byte(sym)); err != nil {
			return errors.Wrap(err, "huffpress: write header")
		}
		if err := binary.Write(w, binary.BigEndian, ft.Count(sym)); err != nil {
			return errors.Wrap(err, "huffpress: write header")
		}
	}
	return nil
}

func readHeader(r io.Reader) (*huffman.FrequencyTable, error) {
	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, errors.Wrap(err, "huffpress: read header")
	}
	if magic != formatMagic {
		return nil, ErrBadMagic
	}

	var version byte
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, errors.Wrap(err, "huffpress: read header")
	}
	if version != formatVersion {
		return nil, ErrBadVersion
	}

	var nsyms uint16
	if err := binary.Read(r, binary.BigEndian, &nsyms); err != nil {
		return nil, errors.Wrap(err, "huffpress: read header")
	}
	if nsyms > huffman.NumSymbols {
		return nil, ErrCorruptHeader
	}

	var ft huffman.FrequencyTable
	prev := -1
	for i := 0; i < int(nsyms); i++ {
		var sym byte
		if err := binary.Read(r, binary.BigEndian, &sym); err != nil {
			return nil, errors.Wrap(err, "huffpress: read header")
		}
		var count uint64
		if err := binary.Read(r, binary.BigEndian, &count); err != nil {
			return nil, errors.Wrap(err, "huffpress: read header")
		}
		// Entries must be strictly ascending with non-zero counts;
		// anything else cannot have come from writeHeader.
		if int(sym) <= prev || count == 0 {
			return nil, ErrCorruptHeader
		}
		prev = int(sym)
		ft.Add(huffman.Symbol(sym), count)
	}
	return &ft, nil
}
