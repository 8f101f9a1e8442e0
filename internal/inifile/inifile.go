// Package inifile edits key-value configuration files in INI format.
package inifile

import (
	"fmt"

	"gopkg.in/ini.v1"
)

var loadOpts = ini.LoadOptions{
	// Scripts routinely touch files written by other homebrew tools, which
	// are not always strictly well formed.
	Loose:               true,
	IgnoreInlineComment: true,
}

// SetValue sets key=value inside section, creating the file, the section, or
// the key as needed.
func SetValue(path, section, key, value string) error {
	cfg, err := ini.LoadSources(loadOpts, path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	cfg.Section(section).Key(key).SetValue(value)
	return cfg.SaveTo(path)
}

// RenameKey renames key to newKey inside section, keeping its value. A
// missing section or key is a no-op.
func RenameKey(path, section, key, newKey string) error {
	cfg, err := ini.LoadSources(loadOpts, path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	sec, err := cfg.GetSection(section)
	if err != nil {
		return nil
	}
	if !sec.HasKey(key) {
		return nil
	}
	value := sec.Key(key).Value()
	sec.DeleteKey(key)
	sec.Key(newKey).SetValue(value)
	return cfg.SaveTo(path)
}
