package hashmap

import (
	"fmt"
	"strings"
)

var _ fmt.Stringer = (*Map[int, int])(nil)

// String renders the occupied buckets only, each with its full chain in
// order. Diagnostic output, not part of the functional contract.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')

	first := true

	for bucket, idx := range m.buckets {
		if idx == 0 {
			continue
		}

		if !first {
			b.WriteString(", ")
		}

		first = false
		fmt.Fprintf(&b, "%d: [", bucket)

		for idx != 0 {
			e := m.getEntry(idx)
			fmt.Fprintf(&b, "%v=%v", e.key, e.val)

			if idx = e.nextIdx; idx != 0 {
				b.WriteByte(' ')
			}
		}

		b.WriteByte(']')
	}

	b.WriteByte('}')
	return b.String()
}
