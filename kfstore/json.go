package kfstore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadJSON reads a JSON dump of a KF file from r into a MemStore. The dump
// is a two-level object, section name to variable name to value, where a
// value is a string, an integer scalar, or a flat numeric array:
//
//	{
//	  "General":  {"nspin": 1, "title": "AsH3 + GaCl3"},
//	  "Symmetry": {"grouplabel": "C(3V)", "ncbs": [0, 0]},
//	  "SFOs":     {"escale": [-6.81, -0.95, ...]}
//	}
//
// Numeric arrays whose elements are all integral decode as integer
// sequences; ReadFloats converts them back on demand.
func LoadJSON(r io.Reader) (*MemStore, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDump, err)
	}

	m := NewMemStore()
	for section, vars := range raw {
		for variable, value := range vars {
			if err := m.setJSON(section, variable, value); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", section, variable, err)
			}
		}
	}

	return m, nil
}

// LoadJSONFile is LoadJSON over a file path.
func LoadJSONFile(path string) (*MemStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadJSON(f)
}

func (m *MemStore) setJSON(section, variable string, value any) error {
	switch v := value.(type) {
	case string:
		m.SetString(section, variable, v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			m.SetInt(section, variable, int(i))

			return nil
		}

		return fmt.Errorf("%w: scalar %q is not an integer", ErrBadDump, v)
	case []any:
		return m.setJSONArray(section, variable, v)
	default:
		return fmt.Errorf("%w: unsupported value type %T", ErrBadDump, value)
	}

	return nil
}

func (m *MemStore) setJSONArray(section, variable string, arr []any) error {
	ints := make([]int, 0, len(arr))
	floats := make([]float64, 0, len(arr))
	integral := true

	for _, e := range arr {
		n, ok := e.(json.Number)
		if !ok {
			return fmt.Errorf("%w: array element %T is not numeric", ErrBadDump, e)
		}
		f, err := n.Float64()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadDump, err)
		}
		floats = append(floats, f)
		if integral {
			if i, err := n.Int64(); err == nil {
				ints = append(ints, int(i))
			} else {
				integral = false
			}
		}
	}

	if integral {
		m.SetInts(section, variable, ints)
	} else {
		m.SetFloats(section, variable, floats)
	}

	return nil
}
