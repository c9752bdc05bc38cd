package huffpress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitforest/huffpress/huffman"
)

func TestRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":         {},
		"one symbol":    []byte("H"),
		"one distinct":  []byte("HHHHHHHHHHH"),
		"skewed pair":   []byte("babbbb"),
		"abracadabra":   []byte("abracadabra"),
		"pangram":       []byte("the quick brown fox jumps over the lazy dog"),
		"repeated text": bytes.Repeat([]byte("mississippi "), 500),
		"all bytes":     allBytes(),
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			archive, err := CompressBytes(input)
			require.NoError(t, err)

			restored, err := DecompressBytes(archive)
			require.NoError(t, err)
			require.Equal(t, input, restored)
		})
	}
}

func allBytes() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

func TestCompress_ShrinksSkewedInput(t *testing.T) {
	input := []byte(strings.Repeat("a", 10000) + "bcd")

	archive, err := CompressBytes(input)
	require.NoError(t, err)
	require.Less(t, len(archive), len(input))
}

func TestDecompress_BadMagic(t *testing.T) {
	_, err := DecompressBytes([]byte("GZIP is not huffpress"))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestDecompress_BadVersion(t *testing.T) {
	archive, err := CompressBytes([]byte("abracadabra"))
	require.NoError(t, err)

	archive[4] = 99 // version byte follows the 4-byte magic
	_, err = DecompressBytes(archive)
	require.ErrorIs(t, err, ErrBadVersion)
}

func TestDecompress_CorruptHeader(t *testing.T) {
	archive, err := CompressBytes([]byte("abracadabra"))
	require.NoError(t, err)

	// Zero the first symbol's count; writeHeader never emits a zero.
	copy(archive[8:16], make([]byte, 8))
	_, err = DecompressBytes(archive)
	require.ErrorIs(t, err, ErrCorruptHeader)
}

func TestDecompress_TruncatedPayload(t *testing.T) {
	archive, err := CompressBytes(bytes.Repeat([]byte("mississippi "), 100))
	require.NoError(t, err)

	_, err = DecompressBytes(archive[:len(archive)-3])
	require.ErrorIs(t, err, ErrTruncatedArchive)
}

func TestDecompress_EmptyArchiveIsEmpty(t *testing.T) {
	archive, err := CompressBytes(nil)
	require.NoError(t, err)

	restored, err := DecompressBytes(archive)
	require.NoError(t, err)
	require.Empty(t, restored)
}

// The header round-trips the frequency table exactly, so the rebuilt
// tree and code table match the ones the payload was encoded with.
func TestHeader_RoundTrip(t *testing.T) {
	ft := huffman.CountBytes([]byte("abracadabra"))

	var buf bytes.Buffer
	require.NoError(t, writeHeader(&buf, ft))

	restored, err := readHeader(&buf)
	require.NoError(t, err)

	require.Equal(t, ft.Total(), restored.Total())
	require.Equal(t, ft.Symbols(), restored.Symbols())
	for _, sym := range ft.Symbols() {
		require.Equal(t, ft.Count(sym), restored.Count(sym))
	}
}
