package strfmt

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const conversions = "bcdeEfFgGosuxX"

// maxWidth bounds both width and precision.
const maxWidth = 1 << 20

type directive struct {
	argnum    int // 1-based; 0 takes the next sequential argument
	leftAlign bool
	plus      bool
	pad       byte
	width     int
	precision int // -1 when absent
	conv      byte
}

// Vsprintf interpolates args into format using printf-style directives:
//
//	%[argnum$][flags][width][.precision]conversion
//
// argnum is 1-based. Directives without one consume arguments sequentially,
// independently of the numbered ones. Flags are '-' (left-justify), '+'
// (always sign), ' ' or '0' (padding) and '\'c' (pad with c). %% is a literal
// percent sign.
//
// Conversions are b, c, d, e, E, f, F, g, G, o, s, u, x and X. u, x, X, o and
// b print the 64-bit two's complement pattern of negative integers, so
// Vsprintf("%x", []any{-1}) is "ffffffffffffffff". Floating point conversions
// follow strconv.FormatFloat with a default precision of 6.
//
// Unused arguments are ignored.
func Vsprintf(format string, args []any) (string, error) {
	var b strings.Builder
	b.Grow(len(format))
	next := 0
	for i := 0; i < len(format); {
		j := strings.IndexByte(format[i:], '%')
		if j < 0 {
			b.WriteString(format[i:])
			break
		}
		b.WriteString(format[i : i+j])
		i += j

		if i+1 < len(format) && format[i+1] == '%' {
			b.WriteByte('%')
			i += 2
			continue
		}

		d, end, err := parseDirective(format, i)
		if err != nil {
			return "", err
		}
		argIdx := d.argnum - 1
		if d.argnum == 0 {
			argIdx = next
			next++
		}
		if argIdx >= len(args) {
			return "", fmt.Errorf("%w: %d required, %d given", ErrTooFewArguments, argIdx+1, len(args))
		}
		b.WriteString(d.format(args[argIdx]))
		i = end
	}
	return b.String(), nil
}

// parseDirective parses the directive starting at the '%' at format[start]
// and returns the index just past it.
func parseDirective(format string, start int) (directive, int, error) {
	d := directive{pad: ' ', precision: -1}
	i := start + 1

	if n, j := digits(format, i); j > i && j < len(format) && format[j] == '$' {
		if n <= 0 {
			return d, 0, fmt.Errorf("%w: argument number must be greater than zero at offset %d", ErrBadDirective, start)
		}
		d.argnum = n
		i = j + 1
	}

flags:
	for i < len(format) {
		switch format[i] {
		case '-':
			d.leftAlign = true
		case '+':
			d.plus = true
		case ' ', '0':
			d.pad = format[i]
		case '\'':
			if i+1 >= len(format) {
				break flags
			}
			d.pad = format[i+1]
			i++
		default:
			break flags
		}
		i++
	}

	d.width, i = digits(format, i)
	if d.width > maxWidth {
		return d, 0, fmt.Errorf("%w: width too large at offset %d", ErrBadDirective, start)
	}
	if i < len(format) && format[i] == '.' {
		d.precision, i = digits(format, i+1)
		if d.precision > maxWidth {
			return d, 0, fmt.Errorf("%w: precision too large at offset %d", ErrBadDirective, start)
		}
	}

	if i >= len(format) {
		return d, 0, fmt.Errorf("%w: missing conversion at offset %d", ErrBadDirective, start)
	}
	if !strings.ContainsRune(conversions, rune(format[i])) {
		return d, 0, fmt.Errorf("%w: unknown conversion %q at offset %d", ErrBadDirective, format[i], start)
	}
	d.conv = format[i]
	return d, i + 1, nil
}

// digits parses a run of decimal digits starting at i. It returns 0 and i
// when there are none.
func digits(s string, i int) (int, int) {
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, i
	}
	n, err := strconv.Atoi(s[i:j])
	if err != nil {
		n = int(^uint(0) >> 1)
	}
	return n, j
}

func (d directive) format(arg any) string {
	var s string
	switch d.conv {
	case 's':
		s = toString(arg)
		if d.precision >= 0 && d.precision < len(s) {
			s = s[:d.precision]
		}
	case 'd':
		n := toInt64(arg)
		s = strconv.FormatInt(n, 10)
		if d.plus && n >= 0 {
			s = "+" + s
		}
	case 'u':
		s = strconv.FormatUint(toUint64(arg), 10)
	case 'x':
		s = strconv.FormatUint(toUint64(arg), 16)
	case 'X':
		s = strings.ToUpper(strconv.FormatUint(toUint64(arg), 16))
	case 'o':
		s = strconv.FormatUint(toUint64(arg), 8)
	case 'b':
		s = strconv.FormatUint(toUint64(arg), 2)
	case 'c':
		return string(rune(toInt64(arg)))
	default: // e E f F g G
		f := toFloat64(arg)
		prec := d.precision
		if prec < 0 {
			prec = 6
		}
		verb := d.conv
		if verb == 'F' {
			verb = 'f'
		}
		s = strconv.FormatFloat(f, verb, prec, 64)
		if d.plus && f >= 0 {
			s = "+" + s
		}
	}
	return d.padded(s)
}

func (d directive) padded(s string) string {
	n := d.width - len(s)
	if n <= 0 {
		return s
	}
	fill := strings.Repeat(string(d.pad), n)
	if d.leftAlign {
		return s + fill
	}
	if d.pad == '0' && d.conv != 's' && len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		return s[:1] + fill + s[1:]
	}
	return fill + s
}

func toString(arg any) string {
	switch v := arg.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprint(arg)
}

func toInt64(arg any) int64 {
	switch v := arg.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return leadingInt(v)
	case []byte:
		return leadingInt(string(v))
	}
	rv := reflect.ValueOf(arg)
	switch {
	case rv.CanInt():
		return rv.Int()
	case rv.CanUint():
		return int64(rv.Uint())
	case rv.CanFloat():
		return int64(rv.Float())
	}
	return 0
}

func toUint64(arg any) uint64 {
	if rv := reflect.ValueOf(arg); rv.CanUint() {
		return rv.Uint()
	}
	return uint64(toInt64(arg))
}

func toFloat64(arg any) float64 {
	switch v := arg.(type) {
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
		return float64(leadingInt(v))
	}
	rv := reflect.ValueOf(arg)
	switch {
	case rv.CanFloat():
		return rv.Float()
	case rv.CanUint():
		return float64(rv.Uint())
	}
	return float64(toInt64(arg))
}

// leadingInt parses an optional sign and the digits that follow it,
// ignoring anything after them. Out of range values saturate.
func leadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, _ := strconv.ParseInt(s[:end], 10, 64)
	return n
}
