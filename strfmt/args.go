package strfmt

import (
	"maps"
	"slices"
)

// Arg is a named value for Sprintfn.
type Arg struct {
	Name  string
	Value any
}

// A is shorthand for Arg{Name: name, Value: value}.
func A(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

// Args is an ordered list of named values. The position of a name's first
// occurrence is its positional index; a repeated name overwrites the value
// but keeps that index.
type Args []Arg

// ArgsFromMap orders m by key.
func ArgsFromMap(m map[string]any) Args {
	args := make(Args, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		args = append(args, A(name, m[name]))
	}
	return args
}

// positions maps each distinct name to its 1-based index and returns the
// values in index order.
func (a Args) positions() (map[string]int, []any) {
	index := make(map[string]int, len(a))
	values := make([]any, 0, len(a))
	for _, arg := range a {
		if pos, ok := index[arg.Name]; ok {
			values[pos-1] = arg.Value
			continue
		}
		values = append(values, arg.Value)
		index[arg.Name] = len(values)
	}
	return index, values
}
