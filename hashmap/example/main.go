package main

import (
	"log"

	"github.com/guimauveb/hashmap/hashmap"
)

func main() {
	m := hashmap.New[string, int](16)

	m.Insert("guimauve", 1)
	m.Insert("rust", 2)
	m.Insert("go", 3)

	log.Println(m.Len(), "items")
	log.Println(m)

	if prev, replaced := m.Insert("go", 30); replaced {
		log.Println("go was", prev)
	}

	if val, ok := m.Remove("guimauve"); ok {
		log.Println("removed guimauve =", val)
	}

	log.Println(m.Len(), "items")
	log.Println(m)

	log.Println("tadaaa")
}
