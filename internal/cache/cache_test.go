package cache

import "testing"

func TestGetSetRoundTrip(t *testing.T) {
	c, err := New(64)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	rows := [][]byte{[]byte("row1")}
	c.Set("users", "id", "1", rows)
	got, ok := c.Get("users", "id", "1")
	if !ok {
		t.Fatal("expected a cache hit after Set")
	}
	if len(got) != 1 || string(got[0]) != "row1" {
		t.Errorf("Get returned %v, want %v", got, rows)
	}
}

func TestInvalidateClearsPriorEntries(t *testing.T) {
	c, err := New(64)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set("users", "id", "1", [][]byte{[]byte("row1")})
	c.Invalidate("users")
	if _, ok := c.Get("users", "id", "1"); ok {
		t.Error("expected Invalidate to evict the previously cached entry")
	}
}

func TestInvalidateIsPerTable(t *testing.T) {
	c, err := New(64)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set("users", "id", "1", [][]byte{[]byte("row1")})
	c.Set("orders", "id", "1", [][]byte{[]byte("row2")})
	c.Invalidate("users")

	if _, ok := c.Get("orders", "id", "1"); !ok {
		t.Error("expected an unrelated table's cache entry to survive invalidation")
	}
}
