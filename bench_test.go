package stringmap_test

import (
	"fmt"
	"testing"

	"github.com/theflywheel/stringmap"
)

const benchKeys = 1000

func benchKey(i int) string {
	return fmt.Sprintf("key-%d", i)
}

func BenchmarkInsert(b *testing.B) {
	m := stringmap.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Insert(benchKey(i%benchKeys), "value"); err != nil {
			b.Fatalf("Failed to insert: %v", err)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	m := stringmap.New()
	for i := 0; i < benchKeys; i++ {
		if err := m.Insert(benchKey(i), "value"); err != nil {
			b.Fatalf("Failed to insert: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := m.Get(benchKey(i % benchKeys)); !found {
			b.Fatal("Key not found")
		}
	}
}

func BenchmarkGetMissing(b *testing.B) {
	m := stringmap.New()
	for i := 0; i < benchKeys; i++ {
		if err := m.Insert(benchKey(i), "value"); err != nil {
			b.Fatalf("Failed to insert: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := m.Get("absent-key"); found {
			b.Fatal("Unexpected hit")
		}
	}
}
