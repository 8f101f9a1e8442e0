package main

import "testing"

func TestEncodeLiteral(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mode    string
		literal string
		want    string
		wantErr bool
	}{
		{name: "ascii", mode: "ascii", literal: "AB", want: "4142"},
		{name: "decimal", mode: "decimal", literal: "255", want: "FF"},
		{name: "decimal odd width padded", mode: "decimal", literal: "256", want: "0100"},
		{name: "rdecimal", mode: "rdecimal", literal: "256", want: "0001"},
		{name: "bad decimal", mode: "decimal", literal: "nope", wantErr: true},
		{name: "bad rdecimal", mode: "rdecimal", literal: "-1", wantErr: true},
		{name: "unknown mode", mode: "base64", literal: "AB", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := encodeLiteral(tc.mode, tc.literal)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("encodeLiteral: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
