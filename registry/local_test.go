package registry

import (
	"testing"

	"github.com/wippyai/iosafe"
)

func TestLocalStore_AcquireRelease(t *testing.T) {
	s := NewLocalStore()

	if err := s.Acquire(5, Provenance{Reason: "test", Site: "x.go:1"}); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Expected Len() == 1, got %d", s.Len())
	}

	prov, ok := s.Provenance(5)
	if !ok {
		t.Fatal("Provenance failed")
	}
	if prov.Reason != "test" || prov.Site != "x.go:1" {
		t.Fatalf("Wrong provenance: %+v", prov)
	}

	prov, borrows, ok := s.Release(5)
	if !ok {
		t.Fatal("Release failed")
	}
	if borrows != 0 {
		t.Fatalf("Expected 0 borrows, got %d", borrows)
	}
	if prov.Reason != "test" {
		t.Fatalf("Wrong provenance on release: %+v", prov)
	}
	if s.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Release")
	}

	// Releasing again must report not-found
	if _, _, ok := s.Release(5); ok {
		t.Fatal("Second Release should fail")
	}
}

func TestLocalStore_Duplicate(t *testing.T) {
	s := NewLocalStore()

	if err := s.Acquire(3, Provenance{}); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if err := s.Acquire(3, Provenance{}); err != ErrDuplicate {
		t.Fatalf("Expected ErrDuplicate, got %v", err)
	}
}

func TestLocalStore_Borrows(t *testing.T) {
	s := NewLocalStore()
	s.Acquire(9, Provenance{})

	if !s.Borrow(9) {
		t.Fatal("Borrow failed")
	}
	if !s.Borrow(9) {
		t.Fatal("Second Borrow failed")
	}

	// Release reports the outstanding count
	_, borrows, ok := s.Release(9)
	if !ok {
		t.Fatal("Release failed")
	}
	if borrows != 2 {
		t.Fatalf("Expected 2 outstanding borrows, got %d", borrows)
	}
}

func TestLocalStore_BorrowUnknown(t *testing.T) {
	s := NewLocalStore()

	if s.Borrow(1) {
		t.Fatal("Borrow of unknown fd should fail")
	}
	if s.ReturnBorrow(1) {
		t.Fatal("ReturnBorrow of unknown fd should fail")
	}

	s.Acquire(1, Provenance{})
	if s.ReturnBorrow(1) {
		t.Fatal("ReturnBorrow without Borrow should fail")
	}
}

func TestLocalStore_Transfer(t *testing.T) {
	s := NewLocalStore()
	s.Acquire(4, Provenance{Reason: "dup of accepted socket"})

	prov, ok := s.Transfer(4)
	if !ok {
		t.Fatal("Transfer failed")
	}
	if prov.Reason != "dup of accepted socket" {
		t.Fatalf("Wrong provenance: %+v", prov)
	}
	if s.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Transfer")
	}

	// Value may be re-acquired after transfer
	if err := s.Acquire(4, Provenance{Reason: "re-wrapped"}); err != nil {
		t.Fatalf("Re-acquire after Transfer failed: %v", err)
	}
}

func TestLocalStore_Close(t *testing.T) {
	s := NewLocalStore()
	s.Acquire(2, Provenance{})

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Acquire(6, Provenance{}); err != ErrClosed {
		t.Fatalf("Expected ErrClosed, got %v", err)
	}
	// Close is idempotent
	if err := s.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}
}

func TestLocalStore_Each(t *testing.T) {
	s := NewLocalStore()
	s.Acquire(1, Provenance{})
	s.Acquire(2, Provenance{})
	s.Acquire(3, Provenance{})

	count := 0
	s.Each(func(_ iosafe.RawFd, _ Provenance, _ int) bool {
		count++
		return true
	})
	if count != 3 {
		t.Fatalf("Expected 3 entries, got %d", count)
	}

	// Early stop
	count = 0
	s.Each(func(_ iosafe.RawFd, _ Provenance, _ int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Expected early stop after 1 entry, got %d", count)
	}
}
