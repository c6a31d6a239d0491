package text

import (
	"errors"
	"sync"
	"testing"
)

func TestCacheBasicOperations(t *testing.T) {
	cache := NewCache[string, int](0) // Unlimited

	if _, ok := cache.Get("key1"); ok {
		t.Error("Expected Get to return false for non-existent key")
	}

	cache.Set("key1", 42)
	if val, ok := cache.Get("key1"); !ok || val != 42 {
		t.Errorf("Expected Get to return (42, true), got (%v, %v)", val, ok)
	}

	cache.Set("key1", 100)
	if val, ok := cache.Get("key1"); !ok || val != 100 {
		t.Errorf("Expected Get to return (100, true), got (%v, %v)", val, ok)
	}
}

func TestCacheGetOrLoad(t *testing.T) {
	cache := NewCache[string, int](0)

	loads := 0
	load := func() (int, error) {
		loads++
		return 42, nil
	}

	for range 2 {
		val, err := cache.GetOrLoad("key1", load)
		if err != nil || val != 42 {
			t.Fatalf("GetOrLoad = (%v, %v), want (42, nil)", val, err)
		}
	}
	if loads != 1 {
		t.Errorf("load called %d times, want 1", loads)
	}
}

func TestCacheGetOrLoadErrorNotCached(t *testing.T) {
	cache := NewCache[string, int](0)
	boom := errors.New("boom")

	if _, err := cache.GetOrLoad("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if cache.Len() != 0 {
		t.Errorf("failed load was cached")
	}
	val, err := cache.GetOrLoad("k", func() (int, error) { return 7, nil })
	if err != nil || val != 7 {
		t.Errorf("retry = (%v, %v), want (7, nil)", val, err)
	}
}

func TestCacheLRUEviction(t *testing.T) {
	cache := NewCache[string, int](10)

	for i := range 20 {
		cache.Set(string(rune('a'+i)), i)
	}

	if size := cache.Len(); size > 10 {
		t.Errorf("Expected cache size <= 10 after eviction, got %d", size)
	}
	for _, k := range []string{"s", "t"} {
		if _, ok := cache.Get(k); !ok {
			t.Errorf("Expected recent entry %q to be in cache", k)
		}
	}
	if _, ok := cache.Get("a"); ok {
		t.Error("Expected oldest entry 'a' to be evicted")
	}
}

func TestCacheLRUAccessUpdate(t *testing.T) {
	cache := NewCache[string, int](5)

	for i, k := range []string{"a", "b", "c", "d", "e"} {
		cache.Set(k, i)
	}
	_, _ = cache.Get("a")

	cache.Set("f", 6)
	cache.Set("g", 7)

	if _, ok := cache.Get("a"); !ok {
		t.Error("Expected recently accessed entry 'a' to still be in cache")
	}
	if _, ok := cache.Get("b"); ok {
		t.Error("Expected oldest unaccessed entry 'b' to be evicted")
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache[string, int](0)
	cache.Set("key1", 1)
	cache.Set("key2", 2)

	cache.Clear()

	if size := cache.Len(); size != 0 {
		t.Errorf("Expected cache size 0 after Clear, got %d", size)
	}
	if _, ok := cache.Get("key1"); ok {
		t.Error("Expected key1 to be gone after Clear")
	}
}

func TestCacheThreadSafety(t *testing.T) {
	cache := NewCache[int, int](100)

	const numGoroutines = 10
	const numOps = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			for i := range numOps {
				key := id*numOps + i
				cache.Set(key, key*2)
				_, _ = cache.GetOrLoad(key+1, func() (int, error) { return key, nil })
			}
		}(g)
	}
	wg.Wait()

	// Run with: go test -race
}
