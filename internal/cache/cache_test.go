package cache

import (
	"testing"
	"time"
)

func TestKey_StableAndNamespaced(t *testing.T) {
	a := Key("analysis", []byte("input"))
	b := Key("analysis", []byte("input"))
	c := Key("trace", []byte("input"))

	if a != b {
		t.Error("Expected identical inputs to produce identical keys")
	}
	if a == c {
		t.Error("Expected different namespaces to produce different keys")
	}
	if Key("analysis", []byte("other")) == a {
		t.Error("Expected different inputs to produce different keys")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("Expected hit with 'v', got %q found=%v", val, found)
	}

	_ = c.Delete("k")
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("Expected hit with 'v', got %q found=%v", val, found)
	}

	// An already-expired entry must read as a miss and be removed
	if err := c.Set("expired", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("expired"); found {
		t.Error("Expected miss for expired entry")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Simulate a fresh process: a new layered cache over the same dir
	// should find the value via the disk layer.
	fresh := NewLayeredCache(time.Minute, dir, time.Minute)
	val, found := fresh.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("Expected disk hit with 'v', got %q found=%v", val, found)
	}

	// Now present in the memory layer too
	if _, found := fresh.memory.Get("k"); !found {
		t.Error("Expected disk hit to be promoted to memory")
	}
}
