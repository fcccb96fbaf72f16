package main

import (
	"fmt"
	"log"

	"github.com/sirupsen/logrus"
	"github.com/theflywheel/stringmap"
)

func main() {
	// Trace bucket placement at debug level
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	m := stringmap.New(stringmap.WithLogger(logger))

	// Load base settings
	settings := [][2]string{
		{"host", "example.com"},
		{"port", "22"},
		{"protocol", "ssh"},
		{"compression", "on"},
		{"term", "xterm-256color"},
	}
	for _, kv := range settings {
		if err := m.Insert(kv[0], kv[1]); err != nil {
			log.Fatalf("Failed to insert %q: %v", kv[0], err)
		}
	}

	fmt.Printf("Loaded %d settings\n", m.Len())

	// Apply an override; the later insert wins
	if err := m.Insert("host", "example.org"); err != nil {
		log.Fatalf("Failed to override host: %v", err)
	}

	for _, key := range []string{"host", "port", "user"} {
		value, found := m.Get(key)
		if found {
			fmt.Printf("%s => %s\n", key, value)
		} else {
			fmt.Printf("%s not set\n", key)
		}
	}

	fmt.Printf("Still %d settings after override\n", m.Len())

	fmt.Println("Example completed successfully")
}
