package offheap

import (
	"github.com/edsrzf/mmap-go"
	"github.com/guimauveb/hashmap/internal/utils"
)

// Fixed-capacity hash table stored in an anonymous memory mapping. Keys are
// unsigned integers; values must be fixed-size types free of pointers and
// slices, so records can be read and written in place, off the Go heap.
// Nothing is ever written to disk.
//
// Like its heap-based sibling, a Map is single-owner: no internal locking.
type Map[K utils.Unsigned, V any] struct {
	data mmap.MMap
	head *header[K]
}

// New maps an anonymous region sized for capacity entries spread over the
// given number of buckets. If left out, the bucket count equals the
// capacity. Both are fixed for the lifetime of the map.
func New[K utils.Unsigned, V any](capacity K, buckets ...K) (m *Map[K, V], err error) {
	var b K

	if buckets != nil {
		b = buckets[0]
	}

	head, size, ok := newHeader[K, V](capacity, b)

	if head.capacity == 0 {
		return nil, ErrZeroCapacity
	}

	if head.valSize == 0 {
		return nil, ErrZeroValue
	}

	if !ok {
		return nil, ErrTooLarge
	}

	data, err := mmap.MapRegion(nil, int(size), mmap.RDWR, mmap.ANON, 0)

	if err != nil {
		return
	}

	m = &Map[K, V]{data: data}

	copy(data[:head.headSize], utils.PointerToBytes(head, int(head.headSize)))
	m.head = utils.BytesToPointer[header[K]](data[:head.headSize])

	return
}

func (m *Map[K, V]) Close() error {
	return m.data.Unmap()
}

func (m *Map[K, V]) Cap() int {
	return int(m.head.capacity)
}

func (m *Map[K, V]) Len() int {
	return int(m.head.length)
}

// Insert stores val under key. An existing key has its value replaced in
// place and returned with replaced == true; a fresh key claims a record from
// the arena, which fails with ErrFull once capacity records are live.
func (m *Map[K, V]) Insert(key K, val V) (prev V, replaced bool, err error) {
	idx := m.getIndexAtIndex(m.getBucketIdx(m.getBucket(key)))

	for *idx != 0 {
		l := m.getLinkAtIndex(*idx)

		if l.key == key {
			prev, l.val = l.val, val
			replaced = true
			return
		}

		idx = &l.nextIdx
	}

	newIdx, ok := m.getAvailableIndex()

	if !ok {
		err = ErrFull
		return
	}

	l := m.getLinkAtIndex(newIdx)
	l.key, l.val, l.nextIdx = key, val, 0

	// idx still points at the leaf's next field (or the bucket head).
	*idx = newIdx
	m.head.length++
	return
}

// Get returns the value stored under key, if any.
func (m *Map[K, V]) Get(key K) (val V, ok bool) {
	for idx := *m.getIndexAtIndex(m.getBucketIdx(m.getBucket(key))); idx != 0; {
		l := m.getLinkAtIndex(idx)

		if l.key == key {
			return l.val, true
		}

		idx = l.nextIdx
	}

	return
}

// GetRef returns a pointer into the mapping for in-place reads and writes,
// or nil if the key is absent.
func (m *Map[K, V]) GetRef(key K) *V {
	for idx := *m.getIndexAtIndex(m.getBucketIdx(m.getBucket(key))); idx != 0; {
		l := m.getLinkAtIndex(idx)

		if l.key == key {
			return &l.val
		}

		idx = l.nextIdx
	}

	return nil
}

// Remove deletes the entry stored under key, re-links its chain and threads
// the freed record onto the free list for reuse.
func (m *Map[K, V]) Remove(key K) (removed V, ok bool) {
	idx := m.getIndexAtIndex(m.getBucketIdx(m.getBucket(key)))

	for *idx != 0 {
		l := m.getLinkAtIndex(*idx)

		if l.key != key {
			idx = &l.nextIdx
			continue
		}

		removed, ok = l.val, true

		freed := *idx
		*idx = l.nextIdx

		l.nextIdx = m.head.freeIdx
		m.head.freeIdx = freed
		m.head.length--
		return
	}

	return
}

// Clear discards every entry. Only the bucket region needs wiping; arena
// records are unreachable once no bucket points at them.
func (m *Map[K, V]) Clear() {
	start := m.head.headSize
	clear(m.data[start : start+m.head.buckets*m.head.keySize])

	m.head.length = 0
	m.head.allocated = 0
	m.head.freeIdx = 0
}

func (m *Map[K, V]) getBucket(key K) K {
	return key % m.head.buckets
}

func (m *Map[K, V]) getBucketIdx(bucket K) K {
	return m.head.headSize + bucket*m.head.keySize
}

func (m *Map[K, V]) getIndexAtIndex(idx K) *K {
	return utils.BytesToPointer[K](m.data[idx : idx+m.head.keySize])
}

func (m *Map[K, V]) getLinkAtIndex(idx K) *link[K, V] {
	return utils.BytesToPointer[link[K, V]](m.data[idx : idx+m.head.linkSize])
}

func (m *Map[K, V]) getAvailableIndex() (idx K, ok bool) {
	if idx = m.head.freeIdx; idx != 0 {
		m.head.freeIdx = m.getLinkAtIndex(idx).nextIdx
		return idx, true
	}

	if m.head.allocated == m.head.capacity {
		return 0, false
	}

	idx = m.head.arenaIdx + m.head.allocated*m.head.linkSize
	m.head.allocated++
	return idx, true
}
