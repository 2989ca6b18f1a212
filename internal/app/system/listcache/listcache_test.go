package listcache

import (
	"errors"
	"testing"
)

func TestGetOrLoad_MissThenHit(t *testing.T) {
	c, err := New[string](8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	calls := 0
	load := func() (string, error) {
		calls++
		return "page-one", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrLoad("page=1&size=50&sort=-updated_at", load)
		if err != nil {
			t.Fatalf("GetOrLoad: %v", err)
		}
		if got != "page-one" {
			t.Errorf("got %q, want page-one", got)
		}
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
}

func TestGetOrLoad_DistinctKeysLoadSeparately(t *testing.T) {
	c, _ := New[int](8)

	load := func(v int) func() (int, error) {
		return func() (int, error) { return v, nil }
	}

	a, _ := c.GetOrLoad("page=1&size=50&sort=-updated_at", load(1))
	b, _ := c.GetOrLoad("page=2&size=50&sort=-updated_at", load(2))
	if a == b {
		t.Error("different page keys must not share an entry")
	}

	// A hit on the second key must not fall back to the first page's value.
	b2, _ := c.GetOrLoad("page=2&size=50&sort=-updated_at", load(99))
	if b2 != 2 {
		t.Errorf("cached value for page 2 = %d, want 2", b2)
	}
}

func TestGetOrLoad_ErrorNotCached(t *testing.T) {
	c, _ := New[string](8)

	boom := errors.New("db down")
	calls := 0
	failing := func() (string, error) {
		calls++
		return "", boom
	}

	if _, err := c.GetOrLoad("k", failing); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	if _, err := c.GetOrLoad("k", failing); !errors.Is(err, boom) {
		t.Fatalf("expected load error on retry, got %v", err)
	}
	if calls != 2 {
		t.Errorf("loader called %d times, want 2 (errors never cached)", calls)
	}
}

func TestPurge(t *testing.T) {
	c, _ := New[string](8)

	calls := 0
	load := func() (string, error) {
		calls++
		return "v", nil
	}

	c.GetOrLoad("k", load)
	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len after Purge = %d, want 0", c.Len())
	}
	c.GetOrLoad("k", load)
	if calls != 2 {
		t.Errorf("loader called %d times, want 2 after purge", calls)
	}
}

func TestNew_NonPositiveSizeUsesDefault(t *testing.T) {
	c, err := New[string](0)
	if err != nil {
		t.Fatalf("New(0): %v", err)
	}
	if c == nil {
		t.Fatal("expected cache")
	}
}
