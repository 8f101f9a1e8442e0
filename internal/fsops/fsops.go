// Package fsops implements the file-system primitives the interpreter
// delegates to: create, copy, move, delete, their glob-pattern variants, and
// the mirror operations that project a source tree onto a destination root.
//
// Every operation returns an explicit error, but invalid input (missing
// source, bad glob) is reported rather than escalated; callers are expected
// to log and continue.
package fsops

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Ops carries the storage-root context path preprocessing needs.
type Ops struct {
	storageRoot string
}

// NewOps returns an Ops rooted at storageRoot (for the console layout,
// "sdmc:/").
func NewOps(storageRoot string) *Ops {
	return &Ops{storageRoot: storageRoot}
}

// PreprocessPath strips surrounding quotes and roots bare paths at the
// storage volume. Paths that already name a volume pass through.
func (o *Ops) PreprocessPath(token string) string {
	path := StripQuotes(token)
	if strings.Contains(path, ":/") || strings.HasPrefix(path, o.storageRoot) {
		return path
	}
	return o.storageRoot + strings.TrimPrefix(path, "/")
}

// PreprocessURL strips surrounding quotes and defaults the scheme to https.
func (o *Ops) PreprocessURL(token string) string {
	url := StripQuotes(token)
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}

// StripQuotes removes one matching pair of single or double quotes.
func StripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// CreateDirectory makes the directory and any missing parents.
func (o *Ops) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Copy copies a file or a directory tree from src to dst. A trailing
// separator on dst places src inside it under its own base name.
func (o *Ops) Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if strings.HasSuffix(dst, "/") {
		dst = filepath.Join(dst, filepath.Base(src))
	}
	if info.IsDir() {
		return copyTree(src, dst)
	}
	return copyFile(src, dst)
}

// CopyByPattern copies every match of the glob into dst.
func (o *Ops) CopyByPattern(pattern, dst string) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	var errs []error
	for _, match := range matches {
		errs = append(errs, o.Copy(match, filepath.Join(dst, filepath.Base(match))))
	}
	return errors.Join(errs...)
}

// MirrorCopy projects every file under src onto dstRoot, preserving each
// file's path relative to src.
func (o *Ops) MirrorCopy(src, dstRoot string) error {
	if dstRoot == "" {
		dstRoot = o.storageRoot
	}
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dstRoot, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

// Delete removes a file or directory tree.
func (o *Ops) Delete(path string) error {
	return os.RemoveAll(path)
}

// DeleteByPattern removes every match of the glob.
func (o *Ops) DeleteByPattern(pattern string) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	var errs []error
	for _, match := range matches {
		errs = append(errs, os.RemoveAll(match))
	}
	return errors.Join(errs...)
}

// MirrorDelete removes from dstRoot every file that exists under src,
// matched by relative path. Directories emptied by the sweep are left in
// place.
func (o *Ops) MirrorDelete(src, dstRoot string) error {
	if dstRoot == "" {
		dstRoot = o.storageRoot
	}
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		return os.RemoveAll(filepath.Join(dstRoot, rel))
	})
}

// Move renames a file or directory, falling back to copy+delete across
// volumes.
func (o *Ops) Move(src, dst string) error {
	if strings.HasSuffix(dst, "/") {
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return err
		}
		dst = filepath.Join(dst, filepath.Base(src))
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := o.Copy(src, dst); err != nil {
		return err
	}
	return os.RemoveAll(src)
}

// MoveByPattern moves every match of the glob into dst.
func (o *Ops) MoveByPattern(pattern, dst string) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	var errs []error
	for _, match := range matches {
		errs = append(errs, o.Move(match, filepath.Join(dst, filepath.Base(match))))
	}
	return errors.Join(errs...)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func copyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}
