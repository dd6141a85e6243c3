// Package mapping loads named range conversions from JSON files, for
// runtime-composed pipelines (controller scaling, calibration maps).
// Each mapping names a source and a target range; ranges are either
// explicit {min,max} pairs or one of the builtin names.
package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/oin/bounded-cast/domain"
)

// File is the JSON schema for a mapping file.
type File struct {
	Mappings map[string]Spec `json:"mappings"`
}

// Spec is one named conversion entry.
type Spec struct {
	From RangeSpec `json:"from"`
	To   RangeSpec `json:"to"`
}

// RangeSpec is one side of a conversion: a builtin name, or explicit
// bounds.
type RangeSpec struct {
	Name string   `json:"name,omitempty"`
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
}

// Builtin ranges addressable by name in mapping files.
var builtins = map[string]domain.Domain[float64]{
	"unit":    domain.Make[float64](0, 1),
	"bipolar": domain.Make[float64](-1, 1),
	"percent": domain.Make[float64](0, 100),
	"midi":    domain.Make[float64](0, 127),
	"uint8":   domain.Make[float64](0, 255),
	"uint12":  domain.Make[float64](0, 4095),
	"uint16":  domain.Make[float64](0, 65535),
}

type entry struct {
	from domain.Domain[float64]
	to   domain.Domain[float64]
}

// Table is an immutable set of named conversions.
type Table struct {
	entries map[string]entry
}

// LoadJSON reads and parses a mapping file.
func LoadJSON(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse parses mapping file contents.
func Parse(b []byte) (*Table, error) {
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}

	t := &Table{entries: make(map[string]entry, len(f.Mappings))}
	for name, spec := range f.Mappings {
		from, err := resolveRange(spec.From)
		if err != nil {
			return nil, fmt.Errorf("mapping %q: from: %w", name, err)
		}
		to, err := resolveRange(spec.To)
		if err != nil {
			return nil, fmt.Errorf("mapping %q: to: %w", name, err)
		}
		t.entries[name] = entry{from: from, to: to}
	}
	return t, nil
}

func resolveRange(r RangeSpec) (domain.Domain[float64], error) {
	var zero domain.Domain[float64]
	if r.Name != "" {
		if r.Min != nil || r.Max != nil {
			return zero, fmt.Errorf("range %q has both a name and explicit bounds", r.Name)
		}
		d, ok := builtins[r.Name]
		if !ok {
			return zero, fmt.Errorf("unknown range name %q", r.Name)
		}
		return d, nil
	}
	if r.Min == nil || r.Max == nil {
		return zero, fmt.Errorf("range needs a name or both min and max")
	}
	// The converter leaves degenerate and inverted ranges undefined, so
	// reject them here.
	if *r.Min >= *r.Max {
		return zero, fmt.Errorf("range [%g,%g] must have min < max", *r.Min, *r.Max)
	}
	return domain.Make[float64](*r.Min, *r.Max), nil
}

// Apply runs the named conversion on v.
func (t *Table) Apply(name string, v float64) (float64, error) {
	e, ok := t.entries[name]
	if !ok {
		return 0, fmt.Errorf("unknown mapping %q", name)
	}
	return domain.Convert(e.to, v, e.from), nil
}

// Names returns the mapping names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
