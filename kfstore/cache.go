package kfstore

// DefaultCacheCapacity bounds the read-through cache at a handful of packed
// overlap triangles; one triangle per queried irrep (and spin) is the
// realistic working set of an analysis session.
const DefaultCacheCapacity = 4

// cachedStore wraps a Store with a bounded FIFO cache over ReadFloats. The
// per-irrep overlap triangles are the only records that are both large and
// re-read on every overlap lookup; every other read passes straight
// through. Entries are never invalidated because stores are immutable after
// open.
type cachedStore struct {
	Store

	capacity int
	order    []string // insertion order for FIFO eviction
	floats   map[string][]float64
}

// NewCachedStore returns s wrapped with a float-read cache holding at most
// capacity entries. A capacity below one falls back to
// DefaultCacheCapacity. The returned store is NOT safe for concurrent use;
// the analysis model is single-threaded per opened file.
func NewCachedStore(s Store, capacity int) Store {
	if capacity < 1 {
		capacity = DefaultCacheCapacity
	}

	return &cachedStore{
		Store:    s,
		capacity: capacity,
		floats:   make(map[string][]float64, capacity),
	}
}

// ReadFloats implements Store.
func (c *cachedStore) ReadFloats(section, variable string) ([]float64, error) {
	key := section + "\x00" + variable
	if v, ok := c.floats[key]; ok {
		return v, nil
	}

	v, err := c.Store.ReadFloats(section, variable)
	if err != nil {
		return nil, err
	}

	if len(c.order) == c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.floats, oldest)
	}
	c.order = append(c.order, key)
	c.floats[key] = v

	return v, nil
}
