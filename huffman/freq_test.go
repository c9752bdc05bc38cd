package huffman

import (
	"errors"
	"reflect"
	"testing"
)

func TestCountBytes(t *testing.T) {
	ft := CountBytes([]byte("abbccc"))

	if ft.Total() != 6 {
		t.Errorf("expected total 6, got %d", ft.Total())
	}
	if ft.Distinct() != 3 {
		t.Errorf("expected 3 distinct symbols, got %d", ft.Distinct())
	}

	expectCounts := map[Symbol]uint64{'a': 1, 'b': 2, 'c': 3, 'd': 0}
	for sym, expect := range expectCounts {
		if actual := ft.Count(sym); actual != expect {
			t.Errorf("Count(%q): expected %d, got %d", sym, expect, actual)
		}
	}

	expectSymbols := []Symbol{'a', 'b', 'c'}
	if actual := ft.Symbols(); !reflect.DeepEqual(expectSymbols, actual) {
		t.Errorf("Symbols(): expected %v, got %v", expectSymbols, actual)
	}
}

func TestCountBytes_Empty(t *testing.T) {
	ft := CountBytes(nil)

	if ft.Total() != 0 {
		t.Errorf("expected total 0, got %d", ft.Total())
	}
	if ft.Distinct() != 0 {
		t.Errorf("expected 0 distinct symbols, got %d", ft.Distinct())
	}
	if syms := ft.Symbols(); len(syms) != 0 {
		t.Errorf("expected no symbols, got %v", syms)
	}
}

type failingByteReader struct {
	data []byte
	pos  int
	err  error
}

func (r *failingByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func TestCountFrom_ReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	ft, err := CountFrom(&failingByteReader{data: []byte("abc"), err: readErr})

	if err != readErr {
		t.Errorf("expected error %v, got %v", readErr, err)
	}
	if ft != nil {
		t.Errorf("expected partial table to be discarded, got %v", ft)
	}
}
