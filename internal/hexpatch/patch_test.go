package hexpatch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func tempBin(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.bin")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	return path
}

func readBin(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read binary: %v", err)
	}
	return data
}

func TestEditByOffset(t *testing.T) {
	t.Parallel()

	path := tempBin(t, []byte{0x00, 0x11, 0x22, 0x33, 0x44})
	if err := EditByOffset(path, "2", "AABB"); err != nil {
		t.Fatalf("EditByOffset: %v", err)
	}
	want := []byte{0x00, 0x11, 0xAA, 0xBB, 0x44}
	if got := readBin(t, path); !bytes.Equal(got, want) {
		t.Fatalf("patched bytes = %x, want %x", got, want)
	}
}

func TestEditByOffsetRejectsOverrun(t *testing.T) {
	t.Parallel()

	path := tempBin(t, []byte{0x00, 0x11})
	if err := EditByOffset(path, "1", "AABB"); err == nil {
		t.Fatalf("expected overrun error")
	}
	if got := readBin(t, path); !bytes.Equal(got, []byte{0x00, 0x11}) {
		t.Fatalf("file must be untouched on overrun, got %x", got)
	}
}

func TestEditByOffsetInvalidInput(t *testing.T) {
	t.Parallel()

	path := tempBin(t, []byte{0x00})
	if err := EditByOffset(path, "xyz", "AA"); err == nil {
		t.Fatalf("expected error for bad offset")
	}
	if err := EditByOffset(path, "0", "not-hex"); err == nil {
		t.Fatalf("expected error for bad hex")
	}
}

func TestEditByCustomOffset(t *testing.T) {
	t.Parallel()

	path := tempBin(t, []byte{0x01, 0xDE, 0xAD, 0xBE, 0xEF, 0x05, 0x06})
	// Anchor on DEADBEEF, patch one byte past its start.
	if err := EditByCustomOffset(path, "DEADBEEF", "1", "FFFF"); err != nil {
		t.Fatalf("EditByCustomOffset: %v", err)
	}
	want := []byte{0x01, 0xDE, 0xFF, 0xFF, 0xEF, 0x05, 0x06}
	if got := readBin(t, path); !bytes.Equal(got, want) {
		t.Fatalf("patched bytes = %x, want %x", got, want)
	}
}

func TestEditByCustomOffsetPatternMissing(t *testing.T) {
	t.Parallel()

	path := tempBin(t, []byte{0x01, 0x02})
	if err := EditByCustomOffset(path, "CAFE", "0", "AA"); err == nil {
		t.Fatalf("expected error when pattern is absent")
	}
}

func TestFindReplaceAll(t *testing.T) {
	t.Parallel()

	path := tempBin(t, []byte{0xAA, 0x01, 0xAA, 0x02, 0xAA})
	if err := FindReplace(path, "AA", "BB", ""); err != nil {
		t.Fatalf("FindReplace: %v", err)
	}
	want := []byte{0xBB, 0x01, 0xBB, 0x02, 0xBB}
	if got := readBin(t, path); !bytes.Equal(got, want) {
		t.Fatalf("replaced bytes = %x, want %x", got, want)
	}
}

func TestFindReplaceNthOccurrence(t *testing.T) {
	t.Parallel()

	path := tempBin(t, []byte{0xAA, 0x01, 0xAA, 0x02, 0xAA})
	if err := FindReplace(path, "AA", "CC", "2"); err != nil {
		t.Fatalf("FindReplace occurrence 2: %v", err)
	}
	want := []byte{0xAA, 0x01, 0xCC, 0x02, 0xAA}
	if got := readBin(t, path); !bytes.Equal(got, want) {
		t.Fatalf("replaced bytes = %x, want %x", got, want)
	}
}

func TestFindReplaceOccurrenceBeyondMatches(t *testing.T) {
	t.Parallel()

	path := tempBin(t, []byte{0xAA, 0x01})
	if err := FindReplace(path, "AA", "BB", "3"); err == nil {
		t.Fatalf("expected error for occurrence beyond match count")
	}
}

func TestFindReplaceLengthMismatch(t *testing.T) {
	t.Parallel()

	path := tempBin(t, []byte{0xAA})
	if err := FindReplace(path, "AA", "BBBB", ""); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestFindReplaceInvalidOccurrence(t *testing.T) {
	t.Parallel()

	path := tempBin(t, []byte{0xAA})
	if err := FindReplace(path, "AA", "BB", "abc"); err == nil {
		t.Fatalf("expected error for bad occurrence literal")
	}
	if err := FindReplace(path, "AA", "BB", "-1"); err == nil {
		t.Fatalf("expected error for negative occurrence")
	}
	if got := readBin(t, path); !bytes.Equal(got, []byte{0xAA}) {
		t.Fatalf("file must be untouched on bad occurrence, got %x", got)
	}
}
