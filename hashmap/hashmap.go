package hashmap

// Default number of buckets.
const DefaultCapacity = 256

// Fixed-capacity hash table with separate chaining. The bucket array never
// grows; collision chains do. Entries live in a flat arena and chains are
// linked by index, with freed indices recycled through a free list.
//
// A Map is single-owner: mutating calls require exclusive access, and
// concurrent readers are only safe while no writer is active.
type Map[K comparable, V any] struct {
	buckets []uint32
	arena   []entry[K, V]
	hash    func(K) uint64
	freeIdx uint32
	length  int
}

// New creates an empty map. Capacity is the number of buckets, fixed for the
// lifetime of the map; it defaults to DefaultCapacity if left out.
func New[K comparable, V any](capacity ...int) *Map[K, V] {
	return NewWithHasher[K, V](defaultHasher[K](), capacity...)
}

// NewWithHasher creates an empty map that places keys with the given hash
// function instead of the default one. The function must be deterministic
// and depend only on the key's content.
func NewWithHasher[K comparable, V any](hash func(K) uint64, capacity ...int) (m *Map[K, V]) {
	n := DefaultCapacity

	if capacity != nil && capacity[0] > 0 {
		n = capacity[0]
	}

	return &Map[K, V]{
		buckets: make([]uint32, n),
		hash:    hash,
	}
}

func (m *Map[K, V]) Len() int {
	return m.length
}

func (m *Map[K, V]) Cap() int {
	return len(m.buckets)
}

// Insert stores val under key. If the key was already present its value is
// replaced in place, and the old value is returned with replaced == true.
func (m *Map[K, V]) Insert(key K, val V) (prev V, replaced bool) {
	bucket := m.getBucket(key)
	idx := m.buckets[bucket]

	if idx == 0 {
		m.buckets[bucket] = m.alloc(key, val)
		m.length++
		return
	}

	for {
		e := m.getEntry(idx)

		if e.key == key {
			prev, e.val = e.val, val
			replaced = true
			return
		}

		if e.nextIdx == 0 {
			break
		}

		idx = e.nextIdx
	}

	// Append as the new tail. The arena may reallocate on alloc, so the
	// tail entry must be resolved again afterwards.
	tail := m.alloc(key, val)
	m.getEntry(idx).nextIdx = tail
	m.length++
	return
}

// Get returns the value stored under key, if any.
func (m *Map[K, V]) Get(key K) (val V, ok bool) {
	for idx := m.buckets[m.getBucket(key)]; idx != 0; {
		e := m.getEntry(idx)

		if e.key == key {
			return e.val, true
		}

		idx = e.nextIdx
	}

	return
}

// GetRef returns a pointer to the value stored under key, or nil if absent.
// The pointer is only valid until the next mutating call on the map.
func (m *Map[K, V]) GetRef(key K) *V {
	for idx := m.buckets[m.getBucket(key)]; idx != 0; {
		e := m.getEntry(idx)

		if e.key == key {
			return &e.val
		}

		idx = e.nextIdx
	}

	return nil
}

// Remove deletes the entry stored under key and returns its value. Removing
// an absent key is a no-op.
func (m *Map[K, V]) Remove(key K) (removed V, ok bool) {
	bucket := m.getBucket(key)
	idx := m.buckets[bucket]

	if idx == 0 {
		return
	}

	e := m.getEntry(idx)

	if e.key == key {
		m.buckets[bucket] = e.nextIdx
		return m.release(idx), true
	}

	for e.nextIdx != 0 {
		idx = e.nextIdx
		next := m.getEntry(idx)

		if next.key == key {
			e.nextIdx = next.nextIdx
			return m.release(idx), true
		}

		e = next
	}

	return
}

// Clear discards every entry and resets the length to 0. The bucket array
// keeps its capacity.
func (m *Map[K, V]) Clear() {
	clear(m.buckets)
	m.arena = nil
	m.freeIdx = 0
	m.length = 0
}

func (m *Map[K, V]) getBucket(key K) uint32 {
	return uint32(m.hash(key) % uint64(len(m.buckets)))
}

func (m *Map[K, V]) getEntry(idx uint32) *entry[K, V] {
	return &m.arena[idx-1]
}

// alloc claims an arena slot for a new entry, reusing a freed index if one
// is available.
func (m *Map[K, V]) alloc(key K, val V) (idx uint32) {
	if idx = m.freeIdx; idx != 0 {
		e := m.getEntry(idx)
		m.freeIdx = e.nextIdx
		e.key, e.val, e.nextIdx = key, val, 0
		return
	}

	m.arena = append(m.arena, entry[K, V]{key: key, val: val})
	return uint32(len(m.arena))
}

// release pushes the entry's index onto the free list and zeroes the entry,
// so that no key or value is kept alive by the arena.
func (m *Map[K, V]) release(idx uint32) (val V) {
	e := m.getEntry(idx)
	val = e.val

	*e = entry[K, V]{nextIdx: m.freeIdx}
	m.freeIdx = idx
	m.length--

	return
}
