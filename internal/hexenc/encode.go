// Package hexenc converts human-authored patch operands (ASCII strings,
// decimal numbers) into the byte-hex form the binary patch primitives consume.
package hexenc

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// AsciiToHex encodes every byte of s as two uppercase hex digits.
func AsciiToHex(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

// DecimalToHex converts a base-10 literal to big-endian byte hex, left-padded
// with a zero nibble so the result always describes whole bytes. Returns ""
// for input that is not an unsigned decimal number.
func DecimalToHex(s string) string {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return ""
	}
	out := strconv.FormatUint(n, 16)
	if len(out)%2 != 0 {
		out = "0" + out
	}
	return strings.ToUpper(out)
}

// DecimalToReversedHex converts a base-10 literal to byte-reversed
// (little-endian) hex, the order binary patch targets usually store numbers
// in. Returns "" for invalid input.
func DecimalToReversedHex(s string) string {
	return ReverseBytes(DecimalToHex(s))
}

// ReverseBytes reverses a hex string pairwise, so "012345" becomes "452301".
// Odd-length input is not a byte sequence and yields "".
func ReverseBytes(hexStr string) string {
	if len(hexStr)%2 != 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(hexStr))
	for i := len(hexStr) - 2; i >= 0; i -= 2 {
		b.WriteString(hexStr[i : i+2])
	}
	return b.String()
}

// PadNulls right-pads the shorter of two byte-hex strings with 00 bytes until
// both describe the same number of bytes. Find/replace stays fixed width this
// way: a shorter replacement overwrites the tail of the match with nulls
// instead of shifting the file.
func PadNulls(find, repl string) (string, string) {
	switch {
	case len(repl) < len(find):
		repl += strings.Repeat("00", (len(find)-len(repl))/2)
	case len(find) < len(repl):
		find += strings.Repeat("00", (len(repl)-len(find))/2)
	}
	return find, repl
}
