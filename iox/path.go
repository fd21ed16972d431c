// Package iox creates directory paths and temporary files.
package iox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	// MiscDirEnv overrides the base directory returned by MiscDir.
	MiscDirEnv = "UTILKIT_MISC_DIR"

	// TmpSubdir is the MiscDir subdirectory temporary files go to by default.
	TmpSubdir = "tmp"
)

const sep = string(filepath.Separator)

// CreatePath creates every missing directory of path below base.
//
// If path starts with base, only the remainder is created below base;
// otherwise the whole of path is, even when it is absolute:
//
//	CreatePath("some/dir", "another")               // some/dir/another
//	CreatePath("/a/base", "/a/base/some/nested")    // /a/base/some/nested
//	CreatePath("/a/base", "/some/nested")           // /a/base/some/nested
//	CreatePath("a/base", "/a/base")                 // a/base/a/base
//
// Directories that already exist are left alone.
func CreatePath(base, path string, opts ...Option) error {
	o := newOptions(opts)

	if strings.HasPrefix(path, base) {
		path = path[len(strings.TrimRight(base, sep)):]
	}

	current := base
	for _, part := range strings.Split(strings.Trim(path, sep), sep) {
		if part == "" {
			continue
		}
		current = joinRaw(current, part)

		_, err := os.Stat(current)
		if err == nil {
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("create path %s: %w", current, err)
		}
		if err := os.Mkdir(current, 0o755); err != nil {
			return fmt.Errorf("create path %s: %w", current, err)
		}
		o.logger.Debug("created directory", zap.String("path", current))
		if o.newPathCallback != nil {
			o.newPathCallback(current)
		}
	}
	return nil
}

// joinRaw appends part to dir without cleaning dir, so that a base of "/"
// or "" keeps its meaning.
func joinRaw(dir, part string) string {
	if dir == "" {
		return part
	}
	if strings.HasSuffix(dir, sep) {
		return dir + part
	}
	return dir + sep + part
}

// MiscDir returns the utilkit working directory, creating it and subdir
// below it when missing. The base is $UTILKIT_MISC_DIR, or utilkit/misc in
// os.TempDir.
func MiscDir(subdir string) (string, error) {
	base := os.Getenv(MiscDirEnv)
	if base == "" {
		base = filepath.Join(os.TempDir(), "utilkit", "misc")
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", fmt.Errorf("misc dir: %w", err)
	}
	base, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("misc dir: %w", err)
	}

	subdir = strings.Trim(subdir, sep)
	if subdir == "" {
		return base, nil
	}
	if err := CreatePath(base, subdir); err != nil {
		return "", fmt.Errorf("misc dir: %w", err)
	}
	return filepath.Join(base, subdir), nil
}
