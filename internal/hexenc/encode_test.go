package hexenc

import "testing"

func TestAsciiToHex(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"AB":   "4142",
		"abc":  "616263",
		"":     "",
		"\x00": "00",
	}
	for in, want := range cases {
		if got := AsciiToHex(in); got != want {
			t.Errorf("AsciiToHex(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecimalToHex(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"0":     "00",
		"255":   "FF",
		"256":   "0100",
		"4096":  "1000",
		" 16 ":  "10",
		"bogus": "",
		"-5":    "",
	}
	for in, want := range cases {
		if got := DecimalToHex(in); got != want {
			t.Errorf("DecimalToHex(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecimalToReversedHex(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"256":    "0001",
		"65535":  "FFFF",
		"66051":  "030201", // 0x010203 byte-reversed
		"1":      "01",
		"x":      "",
	}
	for in, want := range cases {
		if got := DecimalToReversedHex(in); got != want {
			t.Errorf("DecimalToReversedHex(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPadNulls(t *testing.T) {
	t.Parallel()

	find, repl := PadNulls(AsciiToHex("ABCD"), AsciiToHex("AB"))
	if len(find) != len(repl) {
		t.Fatalf("lengths differ after padding: %d vs %d", len(find), len(repl))
	}
	if repl != "41420000" {
		t.Fatalf("expected two trailing null bytes, got %q", repl)
	}

	find, repl = PadNulls("41", "414243")
	if find != "410000" || repl != "414243" {
		t.Fatalf("unexpected padding: find=%q repl=%q", find, repl)
	}

	find, repl = PadNulls("4142", "4344")
	if find != "4142" || repl != "4344" {
		t.Fatalf("equal lengths must pass through unchanged")
	}
}
