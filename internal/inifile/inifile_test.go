package inifile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/ini.v1"
)

func tempIni(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write ini: %v", err)
	}
	return path
}

func TestSetValueUpdatesExistingKey(t *testing.T) {
	t.Parallel()

	path := tempIni(t, "[boot]\nautoboot=0\n")
	if err := SetValue(path, "boot", "autoboot", "1"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	cfg, err := ini.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := cfg.Section("boot").Key("autoboot").String(); got != "1" {
		t.Fatalf("autoboot = %q, want 1", got)
	}
}

func TestSetValueCreatesSectionAndFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fresh.ini")
	if err := SetValue(path, "pack", "version", "2.0 beta"); err != nil {
		t.Fatalf("SetValue on missing file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "[pack]") {
		t.Fatalf("section missing from output: %q", data)
	}
	if !strings.Contains(string(data), "2.0 beta") {
		t.Fatalf("value missing from output: %q", data)
	}
}

func TestRenameKey(t *testing.T) {
	t.Parallel()

	path := tempIni(t, "[tesla]\nkey_combo=L+R\nother=x\n")
	if err := RenameKey(path, "tesla", "key_combo", "combo"); err != nil {
		t.Fatalf("RenameKey: %v", err)
	}

	cfg, err := ini.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	sec := cfg.Section("tesla")
	if sec.HasKey("key_combo") {
		t.Fatalf("old key should be gone")
	}
	if got := sec.Key("combo").String(); got != "L+R" {
		t.Fatalf("combo = %q, want L+R", got)
	}
	if got := sec.Key("other").String(); got != "x" {
		t.Fatalf("unrelated key disturbed: %q", got)
	}
}

func TestRenameMissingKeyIsNoop(t *testing.T) {
	t.Parallel()

	path := tempIni(t, "[a]\nk=v\n")
	if err := RenameKey(path, "a", "absent", "newname"); err != nil {
		t.Fatalf("RenameKey on missing key: %v", err)
	}
	if err := RenameKey(path, "missing-section", "k", "j"); err != nil {
		t.Fatalf("RenameKey on missing section: %v", err)
	}

	cfg, err := ini.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := cfg.Section("a").Key("k").String(); got != "v" {
		t.Fatalf("file should be untouched, k = %q", got)
	}
}
