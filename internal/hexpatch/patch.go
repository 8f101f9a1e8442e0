// Package hexpatch applies fixed-width in-place binary patches: by absolute
// offset, by pattern-relative offset, and by find/replace with an optional
// occurrence selector.
package hexpatch

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EditByOffset overwrites len(hexData)/2 bytes at the given absolute offset.
// The offset literal is decimal. The write never extends the file.
func EditByOffset(path, offset, hexData string) error {
	off, err := strconv.ParseInt(strings.TrimSpace(offset), 10, 64)
	if err != nil || off < 0 {
		return fmt.Errorf("invalid offset %q", offset)
	}
	patch, err := decode(hexData)
	if err != nil {
		return err
	}
	return writeAt(path, off, patch)
}

// EditByCustomOffset locates the first occurrence of patternHex in the file
// and writes hexData at the decimal offset relative to the pattern start.
func EditByCustomOffset(path, patternHex, offset, hexData string) error {
	pattern, err := decode(patternHex)
	if err != nil {
		return err
	}
	rel, err := strconv.ParseInt(strings.TrimSpace(offset), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q", offset)
	}
	patch, err := decode(hexData)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	at := bytes.Index(data, pattern)
	if at == -1 {
		return fmt.Errorf("pattern %s not found in %s", patternHex, path)
	}
	return writeAt(path, int64(at)+rel, patch)
}

// FindReplace overwrites occurrences of findHex with replHex. An empty or
// "0" occurrence replaces every match; "N" replaces only the Nth (1-based).
// Find and replacement must decode to the same number of bytes so the file
// never shifts.
func FindReplace(path, findHex, replHex, occurrenceStr string) error {
	occurrence, err := parseOccurrence(occurrenceStr)
	if err != nil {
		return err
	}
	find, err := decode(findHex)
	if err != nil {
		return err
	}
	repl, err := decode(replHex)
	if err != nil {
		return err
	}
	if len(find) == 0 || len(find) != len(repl) {
		return fmt.Errorf("find/replace length mismatch: %d vs %d bytes", len(find), len(repl))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	replaced := 0
	for at := 0; ; {
		idx := bytes.Index(data[at:], find)
		if idx == -1 {
			break
		}
		at += idx
		replaced++
		if occurrence == 0 || occurrence == replaced {
			copy(data[at:], repl)
		}
		at += len(find)
		if occurrence != 0 && replaced >= occurrence {
			break
		}
	}
	if replaced == 0 {
		return fmt.Errorf("pattern %s not found in %s", findHex, path)
	}
	if occurrence > replaced {
		return fmt.Errorf("occurrence %d beyond %d matches", occurrence, replaced)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode())
}

// parseOccurrence turns an optional occurrence operand into its numeric
// form. Empty means "all".
func parseOccurrence(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid occurrence %q", s)
	}
	return n, nil
}

func decode(hexStr string) ([]byte, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(hexStr), " ", "")
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", hexStr, err)
	}
	return data, nil
}

func writeAt(path string, off int64, patch []byte) error {
	if len(patch) == 0 {
		return fmt.Errorf("empty patch")
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if off+int64(len(patch)) > info.Size() {
		return fmt.Errorf("patch at %d overruns %s (%d bytes)", off, path, info.Size())
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteAt(patch, off); err != nil {
		return err
	}
	return f.Close()
}
