package flattrie

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func getKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Sentence(4)
	}

	return keys
}

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]interface{})
	)

	b.ResetTimer()

	for i, key := range keys {
		m[key] = i
	}
}

func BenchmarkGoMap_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]interface{})
	)

	for i, key := range keys {
		m[key] = i
	}

	b.ResetTimer()

	for _, key := range keys {
		_ = m[key]
	}
}

func BenchmarkTrie_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New(Options{})
	)

	b.ResetTimer()

	for i, key := range keys {
		_ = tr.Set(key, i)
	}
}

func BenchmarkTrie_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New(Options{})
	)

	for i, key := range keys {
		_ = tr.Set(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = tr.Get(key)
	}
}

func BenchmarkTrie_Get_Presized(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New(Options{
			MatchCapacity: b.N,
			NodeCapacity:  b.N * 8,
			LinkCapacity:  b.N,
		})
	)

	for i, key := range keys {
		_ = tr.Set(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = tr.Get(key)
	}
}

func BenchmarkTrie_LongestMatch(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New(Options{})
	)

	for i, key := range keys {
		_ = tr.Set(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = tr.LongestMatch(key)
	}
}

func BenchmarkTrie_ShortestMatch(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New(Options{})
	)

	for i, key := range keys {
		_ = tr.Set(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = tr.ShortestMatch(key)
	}
}
