package hashmap

// Chain node stored in the entry arena. Indices into the arena are 1-based,
// with 0 as the nil sentinel, so a zero entry links nowhere.
type entry[K comparable, V any] struct {
	nextIdx uint32
	key     K
	val     V
}
