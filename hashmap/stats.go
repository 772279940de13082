package hashmap

// Diagnostic counters over the current table state. Computed by scanning all
// buckets, so not meant for hot paths.
type Stats struct {
	Length     int
	Capacity   int
	Occupied   int
	MaxChain   int
	LoadFactor float64
}

func (m *Map[K, V]) Stats() (s Stats) {
	s.Length = m.length
	s.Capacity = len(m.buckets)
	s.LoadFactor = float64(m.length) / float64(len(m.buckets))

	for _, idx := range m.buckets {
		if idx == 0 {
			continue
		}

		s.Occupied++
		var n int

		for ; idx != 0; idx = m.getEntry(idx).nextIdx {
			n++
		}

		if n > s.MaxChain {
			s.MaxChain = n
		}
	}

	return
}
