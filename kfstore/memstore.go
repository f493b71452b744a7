package kfstore

import (
	"fmt"
	"sort"
)

// MemStore is an in-memory Store. It is the implementation behind LoadJSON,
// the fixture builder for tests, and the entry point for callers that
// already hold decoded KF records. The zero value is not usable; construct
// with NewMemStore.
type MemStore struct {
	sections map[string]map[string]any
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{sections: make(map[string]map[string]any)}
}

// SetInt stores a scalar integer variable.
func (m *MemStore) SetInt(section, variable string, v int) { m.set(section, variable, v) }

// SetInts stores a flat integer sequence variable.
func (m *MemStore) SetInts(section, variable string, v []int) { m.set(section, variable, v) }

// SetFloats stores a flat float sequence variable.
func (m *MemStore) SetFloats(section, variable string, v []float64) { m.set(section, variable, v) }

// SetString stores a string variable.
func (m *MemStore) SetString(section, variable string, v string) { m.set(section, variable, v) }

func (m *MemStore) set(section, variable string, v any) {
	sec, ok := m.sections[section]
	if !ok {
		sec = make(map[string]any)
		m.sections[section] = sec
	}
	sec[variable] = v
}

// ReadInt implements Store.
func (m *MemStore) ReadInt(section, variable string) (int, error) {
	v, err := m.lookup(section, variable)
	if err != nil {
		return 0, err
	}
	i, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%w: %s/%s is %T, want int", ErrType, section, variable, v)
	}

	return i, nil
}

// ReadInts implements Store.
func (m *MemStore) ReadInts(section, variable string) ([]int, error) {
	v, err := m.lookup(section, variable)
	if err != nil {
		return nil, err
	}
	s, ok := v.([]int)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s is %T, want []int", ErrType, section, variable, v)
	}

	return s, nil
}

// ReadFloats implements Store. An integer sequence reads back as floats;
// JSON dumps cannot distinguish an all-integral float record (such as
// occupations of a closed-shell fragment) from an integer one.
func (m *MemStore) ReadFloats(section, variable string) ([]float64, error) {
	v, err := m.lookup(section, variable)
	if err != nil {
		return nil, err
	}
	switch s := v.(type) {
	case []float64:
		return s, nil
	case []int:
		out := make([]float64, len(s))
		for i, n := range s {
			out[i] = float64(n)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s/%s is %T, want []float64", ErrType, section, variable, v)
	}
}

// ReadString implements Store.
func (m *MemStore) ReadString(section, variable string) (string, error) {
	v, err := m.lookup(section, variable)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s/%s is %T, want string", ErrType, section, variable, v)
	}

	return s, nil
}

// Contains implements Store.
func (m *MemStore) Contains(section, variable string) bool {
	sec, ok := m.sections[section]
	if !ok {
		return false
	}
	_, ok = sec[variable]

	return ok
}

// Sections implements Store. Names are returned sorted so that callers see
// a deterministic view; KF section order carries no meaning.
func (m *MemStore) Sections() []string {
	names := make([]string, 0, len(m.sections))
	for name := range m.sections {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (m *MemStore) lookup(section, variable string) (any, error) {
	sec, ok := m.sections[section]
	if !ok {
		return nil, fmt.Errorf("%w: section %q", ErrNotFound, section)
	}
	v, ok := sec[variable]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, section, variable)
	}

	return v, nil
}

var _ Store = (*MemStore)(nil)
