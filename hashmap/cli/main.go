package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"
	"github.com/guimauveb/hashmap/hashmap"
)

// Hammers a small table with random inserts and removals while rendering its
// counters live, to watch chains build up and drain.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	m := hashmap.New[uint32, uint32](64)

	ticker := time.NewTicker(100 * time.Millisecond)
	writer := uilive.New()

	length := writer.Newline()
	capacity := writer.Newline()
	occupied := writer.Newline()
	maxChain := writer.Newline()
	loadFactor := writer.Newline()

	// start listening for updates and render
	writer.Start()
	defer writer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for i := 0; i < 100; i++ {
				key := rand.Uint32() % 1024

				if key%3 == 0 {
					m.Remove(key)
				} else {
					m.Insert(key, rand.Uint32())
				}
			}

			stats := m.Stats()

			fmt.Fprintf(length, "Length: %d\n", stats.Length)
			fmt.Fprintf(capacity, "Capacity: %d\n", stats.Capacity)
			fmt.Fprintf(occupied, "Occupied buckets: %d\n", stats.Occupied)
			fmt.Fprintf(maxChain, "Longest chain: %d\n", stats.MaxChain)
			fmt.Fprintf(loadFactor, "Load factor: %.2f\n", stats.LoadFactor)
		}
	}
}
