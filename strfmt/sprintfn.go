// Package strfmt implements printf-style formatting with named arguments.
//
// Sprintfn accepts %name$conversion placeholders, where name matches
// [a-zA-Z_]\w*, and resolves them against an ordered list of named values:
//
//	s, err := strfmt.Sprintfn("%greeting$s, %who$s!", strfmt.Args{
//	    strfmt.A("greeting", "Hello"),
//	    strfmt.A("who", "world"),
//	})
//	// s == "Hello, world!"
//
// Names are rewritten to the 1-based position of their argument and the
// result is interpolated by Vsprintf, so conversions, flags, width and
// precision work as they do for positional directives. Placeholders whose
// name has no argument are left in the output verbatim unless
// WithFailOnMissing is given.
package strfmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/on-the-ground/utilkit/hashx"
	"github.com/on-the-ground/utilkit/shared/log"
)

// Non-greedy so that adjacent shielded names are not merged.
const namePattern = `[a-zA-Z_]\w*?`

type options struct {
	failOnMissing bool
	logger        *zap.Logger
	hash          hashx.Func
}

// Option configures Sprintfn.
type Option func(*options)

// WithFailOnMissing makes Sprintfn return a *MissingArgumentError instead of
// leaving unresolved placeholders in the output.
func WithFailOnMissing() Option {
	return func(o *options) {
		o.failOnMissing = true
	}
}

// WithLogger sets the logger missing arguments are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = log.OrNop(logger)
	}
}

// WithHashFunc sets the hash used to build the marker protecting unresolved
// placeholders. The default is hashx.MD5, which is also kept when hash has
// no Sum.
func WithHashFunc(hash hashx.Func) Option {
	return func(o *options) {
		if hash.Sum != nil {
			o.hash = hash
		}
	}
}

// Sprintfn formats format with named arguments. See the package
// documentation for the placeholder syntax.
func Sprintfn(format string, args Args, opts ...Option) (string, error) {
	o := options{
		logger: zap.NewNop(),
		hash:   hashx.MD5,
	}
	for _, opt := range opts {
		opt(&o)
	}

	positions, values := args.positions()
	rewritten, marker, err := rewrite(format, positions, o.failOnMissing, func(template string) string {
		return MarkerNotWithin(template, o.hash)
	})
	if err != nil {
		o.logger.Warn("sprintfn: missing argument", zap.Error(err), zap.String("format", format))
		return "", err
	}
	if marker == "" {
		return Vsprintf(rewritten, values)
	}

	o.logger.Debug("sprintfn: leaving unresolved placeholders", zap.String("format", format), zap.String("marker", marker))
	out, err := Vsprintf(shield(rewritten, marker), values)
	if err != nil {
		return "", err
	}
	return unshield(out, marker), nil
}

// rewrite replaces each %name$ with %N$, N being the position of name.
// Names without a position become %<marker>name<marker>$, the marker being
// computed from format on first need. Scanning resumes after each
// replacement.
func rewrite(
	format string,
	positions map[string]int,
	failOnMissing bool,
	newMarker func(string) string,
) (rewritten, marker string, err error) {
	var b strings.Builder
	last := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		name, ok := placeholderName(format, i+1)
		if !ok {
			continue
		}
		b.WriteString(format[last : i+1])
		if pos, found := positions[name]; found {
			b.WriteString(strconv.Itoa(pos))
		} else if failOnMissing {
			return "", "", &MissingArgumentError{Name: name}
		} else {
			if marker == "" {
				marker = newMarker(format)
			}
			b.WriteString(marker)
			b.WriteString(name)
			b.WriteString(marker)
		}
		i += len(name)
		last = i + 1
	}
	b.WriteString(format[last:])
	return b.String(), marker, nil
}

// placeholderName returns the name starting at s[start] if it is followed by '$'.
func placeholderName(s string, start int) (string, bool) {
	if start >= len(s) || !isNameStart(s[start]) {
		return "", false
	}
	end := start + 1
	for end < len(s) && (isNameStart(s[end]) || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	if end >= len(s) || s[end] != '$' {
		return "", false
	}
	return s[start:end], true
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// shield turns %<marker>name<marker>$ into <marker>name<marker> so that
// interpolation copies it through untouched.
func shield(s, marker string) string {
	q := regexp.QuoteMeta(marker)
	re := regexp.MustCompile(`%(` + q + namePattern + q + `)\$`)
	return re.ReplaceAllString(s, "${1}")
}

// unshield turns <marker>name<marker> back into %name$.
func unshield(s, marker string) string {
	q := regexp.QuoteMeta(marker)
	re := regexp.MustCompile(q + `(` + namePattern + `)` + q)
	return re.ReplaceAllString(s, "%${1}$$")
}

// CRC64 formats hashx.CRC64(s) as a signed 64-bit integer with a single
// directive format, "%u" when empty:
//
//	CRC64("php", "%u")   // "12674510492238016912"
//	CRC64("php", "%d")   // "-5772233581471534704"
//	CRC64("php", "0x%x") // "0xafe4e823e7cef190"
func CRC64(s, format string) (string, error) {
	if format == "" {
		format = "%u"
	}
	out, err := Vsprintf(format, []any{int64(hashx.CRC64(s))})
	if err != nil {
		return "", fmt.Errorf("crc64: %w", err)
	}
	return out, nil
}
