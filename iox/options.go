package iox

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/utilkit/shared/log"
)

type options struct {
	logger *zap.Logger

	// CreatePath
	newPathCallback func(string)

	// TmpFile
	dir              string
	subdir           string
	prefix           string
	suffix           string
	autoDelete       bool
	autoRandomPrefix bool
	autoRandomSuffix bool
	registry         *Registry
}

func newOptions(opts []Option) options {
	o := options{
		logger:           zap.NewNop(),
		autoDelete:       true,
		autoRandomPrefix: true,
		autoRandomSuffix: true,
		registry:         defaultRegistry,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures CreatePath and TmpFile. Options that do not apply to
// an operation are ignored by it.
type Option func(*options)

// WithLogger sets the logger created directories and files are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = log.OrNop(logger)
	}
}

// WithNewPathCallback registers fn to be called with every directory
// CreatePath creates.
func WithNewPathCallback(fn func(path string)) Option {
	return func(o *options) {
		o.newPathCallback = fn
	}
}

// WithDir sets the directory temporary files are created in.
// The default is MiscDir(TmpSubdir).
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithSubdir nests temporary files in subdir, below WithDir or, without
// it, below MiscDir.
func WithSubdir(subdir string) Option {
	return func(o *options) {
		o.subdir = subdir
	}
}

// WithPrefix sets the file name prefix, e.g. "report_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithSuffix sets the file name suffix. File extensions need their dot: ".txt".
func WithSuffix(suffix string) Option {
	return func(o *options) {
		o.suffix = suffix
	}
}

// WithAutoDelete controls whether the file is tracked for Cleanup.
// It is true by default.
func WithAutoDelete(autoDelete bool) Option {
	return func(o *options) {
		o.autoDelete = autoDelete
	}
}

// WithAutoRandomPrefix controls whether an empty prefix is replaced by
// random characters. It is true by default.
func WithAutoRandomPrefix(enabled bool) Option {
	return func(o *options) {
		o.autoRandomPrefix = enabled
	}
}

// WithAutoRandomSuffix controls whether an empty suffix is replaced by
// random characters. It is true by default.
func WithAutoRandomSuffix(enabled bool) Option {
	return func(o *options) {
		o.autoRandomSuffix = enabled
	}
}

// WithRegistry tracks auto-deleted files in r instead of the package registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}
