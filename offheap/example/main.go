package main

import (
	"log"

	"github.com/guimauveb/hashmap/offheap"
)

func main() {
	m, err := offheap.New[uint32, uint32](255)

	if err != nil {
		log.Fatal(err)
	}

	defer m.Close()

	m.Insert(123, 456)
	m.Insert(123, 789)

	log.Println(m.Len(), "items")

	if val, ok := m.Get(123); ok {
		log.Println(123, "=", val)
	}

	if val, ok := m.Remove(123); ok {
		log.Println("removed", 123, "=", val)
	}

	log.Println(m.Len(), "items")

	log.Println("tadaaa")
}
