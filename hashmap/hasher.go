package hashmap

import "hash/maphash"

// defaultHasher hashes any comparable key by content, with a seed drawn once
// per map so that placement is stable for the map's lifetime.
func defaultHasher[K comparable]() func(K) uint64 {
	seed := maphash.MakeSeed()

	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}
