package iox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/utilkit/randx"
	"github.com/on-the-ground/utilkit/shared/helper"
)

const (
	randomPrefixLength = 10
	randomSuffixLength = 5
	maxNameAttempts    = 3
)

// Registry tracks temporary files to delete on Cleanup.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	paths []string
}

func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// Track adds path to the files removed by Cleanup.
func (r *Registry) Track(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

// Len returns the number of tracked files.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.paths)
}

// Cleanup removes every tracked file and forgets them. Files already gone
// are not an error; other failures are combined into the returned error.
func (r *Registry) Cleanup() error {
	r.mu.Lock()
	paths := r.paths
	r.paths = nil
	r.mu.Unlock()

	var errs error
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Cleanup removes the auto-deleted files of TmpFile calls that did not set
// WithRegistry. Call it before the program exits.
func Cleanup() error {
	return defaultRegistry.Cleanup()
}

// TmpFile creates an empty temporary file and returns its absolute name,
// which is prefix + a UUID + suffix.
//
// Without options the file goes to MiscDir(TmpSubdir), gets a random
// 10-character prefix and 5-character suffix, and is tracked for Cleanup.
func TmpFile(opts ...Option) (string, error) {
	o := newOptions(opts)

	dir, err := tmpDir(o)
	if err != nil {
		return "", fmt.Errorf("tmp file: %w", err)
	}

	prefix, suffix := o.prefix, o.suffix
	if prefix == "" && o.autoRandomPrefix {
		prefix = randx.String(randomPrefixLength)
	}
	if suffix == "" && o.autoRandomSuffix {
		suffix = randx.String(randomSuffixLength)
	}

	var filename string
	err = helper.RetryIf(maxNameAttempts, func(err error) bool {
		return errors.Is(err, fs.ErrExist)
	}, func() error {
		filename = filepath.Join(dir, prefix+uuid.NewString()+suffix)
		f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if err != nil {
			return err
		}
		return f.Close()
	})
	if err != nil {
		return "", fmt.Errorf("tmp file: %w", err)
	}

	if o.autoDelete {
		o.registry.Track(filename)
	}
	o.logger.Debug("created temporary file",
		zap.String("path", filename),
		zap.Bool("autoDelete", o.autoDelete),
	)
	return filename, nil
}

func tmpDir(o options) (string, error) {
	subdir := strings.Trim(o.subdir, sep)
	if o.dir == "" {
		if subdir == "" {
			subdir = TmpSubdir
		}
		return MiscDir(subdir)
	}

	dir := strings.TrimRight(o.dir, sep)
	if dir == "" {
		dir = sep
	}
	if subdir != "" {
		if err := CreatePath(dir, subdir, WithLogger(o.logger)); err != nil {
			return "", err
		}
		dir = filepath.Join(dir, subdir)
	}
	return filepath.Abs(dir)
}
