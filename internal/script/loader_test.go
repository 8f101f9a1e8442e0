package script

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ovlhand/packrun/pkg/types"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want types.Command
	}{
		{"mkdir /switch/.packages", types.Command{"mkdir", "/switch/.packages"}},
		{`copy "/a dir/file" /b`, types.Command{"copy", `"/a dir/file"`, "/b"}},
		{"set-ini-val /c.ini 'my section' key v a l", types.Command{"set-ini-val", "/c.ini", "'my section'", "key", "v", "a", "l"}},
		{"  spaced\tout  ", types.Command{"spaced", "out"}},
		{"", nil},
	}
	for _, tc := range cases {
		if got := Tokenize(tc.line); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokenize(%q) = %#v, want %#v", tc.line, got, tc.want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	content := `
; package automation
[Install]
mkdir /switch/.packages
download example.com/pack.zip /downloads/pack.zip

[Clean]
delete /downloads/pack.zip
`
	path := filepath.Join(t.TempDir(), "package.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write package: %v", err)
	}

	pkg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(pkg.Order, []string{"Install", "Clean"}) {
		t.Fatalf("section order = %v", pkg.Order)
	}

	install, ok := pkg.Section("Install")
	if !ok || len(install) != 2 {
		t.Fatalf("Install section = %#v", install)
	}
	if install[1].Verb() != "download" {
		t.Fatalf("second command verb = %q", install[1].Verb())
	}

	clean, _ := pkg.Section("Clean")
	if len(clean) != 1 || clean[0].Verb() != "delete" {
		t.Fatalf("Clean section = %#v", clean)
	}
}

func TestLoadCommandsBeforeSection(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "package.ini")
	if err := os.WriteFile(path, []byte("mkdir /x\n"), 0o644); err != nil {
		t.Fatalf("write package: %v", err)
	}

	pkg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	global, ok := pkg.Section("global")
	if !ok || len(global) != 1 {
		t.Fatalf("expected implicit global section, got %#v", pkg.Sections)
	}
}
