// Package filters holds the named transformations exposed to template and script hosts.
package filters

import (
	"sort"

	"github.com/law-makers/filters/internal/utils/headers"
)

// HTMLHeaders is the name under which the header-line parser is registered.
const HTMLHeaders = "html_headers"

// Func transforms a sequence of lines into a name/value mapping.
type Func func(lines []string) map[string]string

// Filter is a named Func with a short human description.
type Filter struct {
	Name        string
	Description string
	Fn          Func
}

// Registry is a fixed set of filters addressable by name.
//
// A Registry is not modified after New returns, so lookups from concurrent
// hosts need no locking.
type Registry struct {
	byName map[string]Filter
}

// New builds a registry from the given filters.
// Empty names, nil functions and duplicate names are rejected.
func New(filters ...Filter) (*Registry, error) {
	r := &Registry{byName: make(map[string]Filter, len(filters))}
	for _, f := range filters {
		if f.Name == "" {
			return nil, NewFilterError(ErrCodeValidation, "filter name is required", ErrInvalidFilter)
		}
		if f.Fn == nil {
			return nil, NewFilterError(ErrCodeValidation, "filter function is nil", ErrInvalidFilter).
				WithDetail("filter", f.Name)
		}
		if _, exists := r.byName[f.Name]; exists {
			return nil, NewFilterError(ErrCodeValidation, f.Name, ErrDuplicateFilter).
				WithDetail("filter", f.Name)
		}
		r.byName[f.Name] = f
	}
	return r, nil
}

var builtin = []Filter{
	{
		Name:        HTMLHeaders,
		Description: `Parse "Key: Value" lines into a mapping`,
		Fn:          headers.ParseHeaders,
	},
}

// Default returns the registry of built-in filters.
func Default() *Registry {
	r, err := New(builtin...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the filter registered under name.
func (r *Registry) Lookup(name string) (Filter, error) {
	f, ok := r.byName[name]
	if !ok {
		return Filter{}, NewFilterError(ErrCodeNotFound, name, ErrUnknownFilter).
			WithDetail("available", r.Names())
	}
	return f, nil
}

// Apply runs the named filter over lines.
func (r *Registry) Apply(name string, lines []string) (map[string]string, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Fn(lines), nil
}

// Names returns the registered filter names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filters returns the registered filters sorted by name.
func (r *Registry) Filters() []Filter {
	out := make([]Filter, 0, len(r.byName))
	for _, name := range r.Names() {
		out = append(out, r.byName[name])
	}
	return out
}

// FuncMap exposes every filter as a plain function keyed by name, the shape
// text/template and script runtimes expect.
func (r *Registry) FuncMap() map[string]any {
	m := make(map[string]any, len(r.byName))
	for name, f := range r.byName {
		m[name] = (func([]string) map[string]string)(f.Fn)
	}
	return m
}
