package offheap

import (
	"math"
	"unsafe"

	"github.com/guimauveb/hashmap/internal/utils"
)

// The mapping length is passed to mmap as an int.
const maxMapSize = uint64(math.MaxInt)

func newHeader[K utils.Unsigned, V any](capacity, buckets K) (h *header[K], size uint64, ok bool) {
	var key K
	var l link[K, V]

	h = &header[K]{
		buckets:  buckets,
		capacity: capacity,
	}
	h.headSize = K(unsafe.Sizeof(*h))
	h.keySize = K(unsafe.Sizeof(key))
	h.valSize = K(unsafe.Sizeof(l.val))
	h.linkSize = K(unsafe.Sizeof(l))

	if h.buckets == 0 {
		h.buckets = h.capacity
	}

	size, ok = h.layout(uint64(unsafe.Alignof(l)))
	return
}

// Lives at offset 0 of the mapping, which conveniently keeps 0 unusable as a
// chain index and therefore free as the nil sentinel.
type header[K utils.Unsigned] struct {
	headSize  K
	keySize   K
	valSize   K
	linkSize  K
	buckets   K
	capacity  K
	arenaIdx  K
	length    K
	allocated K
	freeIdx   K
}

// layout computes the total mapping size in uint64, since small key types
// would wrap the arithmetic, and records the arena start rounded up to the
// link alignment. ok reports that the whole layout fits both K and an int;
// every record offset is then addressable without wrapping.
func (h *header[K]) layout(align uint64) (size uint64, ok bool) {
	if uint64(h.buckets) > (maxMapSize-uint64(h.headSize))/uint64(h.keySize) {
		return
	}

	arenaIdx := uint64(h.headSize) + uint64(h.buckets)*uint64(h.keySize)
	arenaIdx = (arenaIdx + align - 1) &^ (align - 1)

	if uint64(h.capacity) > (maxMapSize-arenaIdx)/uint64(h.linkSize) {
		return
	}

	size = arenaIdx + uint64(h.capacity)*uint64(h.linkSize)

	if ok = size == uint64(K(size)); ok {
		h.arenaIdx = K(arenaIdx)
	}

	return
}
