package offheap

import "github.com/guimauveb/hashmap/internal/utils"

// Arena record. Chain indices are byte offsets into the mapping, with 0 as
// the nil sentinel (offset 0 holds the header). The free list reuses the
// nextIdx field of freed records.
type link[K utils.Unsigned, V any] struct {
	nextIdx K
	key     K
	val     V
}
