package storage

import (
	"path/filepath"
	"testing"
)

func TestPagerFlushAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.table")

	pager, err := OpenPager(path)
	if err != nil {
		t.Fatalf("OpenPager: %v", err)
	}
	page := pager.GetPage(0)
	copy(page, []byte("hello"))
	if err := pager.Flush(0, PageSize); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := pager.CloseFlushing(0, 1, PageSize); err != nil {
		t.Fatalf("CloseFlushing: %v", err)
	}

	reopened, err := OpenPager(path)
	if err != nil {
		t.Fatalf("reopen OpenPager: %v", err)
	}
	got := reopened.GetPage(0)
	if string(got[:5]) != "hello" {
		t.Errorf("reloaded page = %q, want %q", got[:5], "hello")
	}
}

func TestPagerLazyLoadZeroFillsPastEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.table")
	pager, err := OpenPager(path)
	if err != nil {
		t.Fatalf("OpenPager: %v", err)
	}
	page := pager.GetPage(0)
	for _, b := range page {
		if b != 0 {
			t.Fatal("expected a fresh page past EOF to be zero-filled")
		}
	}
}
