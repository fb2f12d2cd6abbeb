package httputil

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestCacheGetSet(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	var got string
	ok, err := c.Get("missing", &got)
	if err != nil || ok {
		t.Errorf("Get(missing) = (%v, %v), want (false, nil)", ok, err)
	}

	if err := c.Set("trace:ethereum:0xabc", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	ok, err = c.Get("trace:ethereum:0xabc", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || got != "value" {
		t.Errorf("Get() = (%v, %q), want (true, \"value\")", ok, got)
	}
}

func TestCacheExpiry(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	var got string
	ok, err := c.Get("key", &got)
	if ok {
		t.Error("Get() = hit, want expired miss")
	}
	if !errors.Is(err, ErrExpired) {
		t.Errorf("Get() error = %v, want ErrExpired", err)
	}
}

func TestCacheCorruptEntryIsMiss(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := os.WriteFile(c.keyPath("key"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var got string
	ok, err := c.Get("key", &got)
	if ok {
		t.Error("Get() = hit, want miss for corrupt entry")
	}
	if err == nil {
		t.Error("Get() error = nil, want unmarshal failure")
	}
}

func TestCacheNamespace(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	traces := c.Namespace("trace:")
	if err := traces.Set("0xabc", "namespaced"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Same key through the parent cache must not collide.
	var got string
	ok, _ := c.Get("0xabc", &got)
	if ok {
		t.Error("parent cache sees namespaced key")
	}

	ok, err = c.Get("trace:0xabc", &got)
	if err != nil || !ok || got != "namespaced" {
		t.Errorf("Get(trace:0xabc) = (%v, %q, %v), want hit", ok, got, err)
	}
}

func TestCacheDelete(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if err := c.Delete("never-set"); err != nil {
		t.Errorf("Delete(missing) error = %v, want nil", err)
	}

	_ = c.Set("key", 1)
	if err := c.Delete("key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var got int
	if ok, _ := c.Get("key", &got); ok {
		t.Error("Get() after Delete() = hit, want miss")
	}
}

func TestCacheStructValues(t *testing.T) {
	type payload struct {
		Address string  `json:"address"`
		Score   float64 `json:"score"`
	}

	c, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	in := payload{Address: "0xabc", Score: 42.5}
	if err := c.Set("k", in); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var out payload
	ok, err := c.Get("k", &out)
	if err != nil || !ok {
		t.Fatalf("Get() = (%v, %v), want hit", ok, err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
