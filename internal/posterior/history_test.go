package posterior

import (
	"errors"
	"testing"
)

func TestHistoryAppendAndAccess(t *testing.T) {
	h := NewHistory(4, 3)

	if h.Latest() != nil {
		t.Fatal("expected nil latest before first append")
	}
	if h.Len() != 0 || h.Cap() != 3 {
		t.Fatalf("len/cap = %d/%d, want 0/3", h.Len(), h.Cap())
	}

	for k := 0; k < 3; k++ {
		slice := []float64{float64(k), 0, 0, 0}
		idx, err := h.Append(slice)
		if err != nil {
			t.Fatalf("append %d: %v", k, err)
		}
		if idx != k {
			t.Fatalf("append %d returned index %d", k, idx)
		}
		if h.Latest()[0] != float64(k) {
			t.Fatalf("latest after append %d is slice %v", k, h.Latest())
		}
	}

	if h.At(1)[0] != 1 {
		t.Errorf("At(1) = %v", h.At(1))
	}
	if h.Len() != 3 {
		t.Errorf("len = %d, want 3", h.Len())
	}
}

func TestHistoryCapacityExhaustion(t *testing.T) {
	h := NewHistory(1, 2)
	for k := 0; k < 2; k++ {
		if _, err := h.Append([]float64{0}); err != nil {
			t.Fatalf("append %d: %v", k, err)
		}
	}
	_, err := h.Append([]float64{0})
	if !errors.Is(err, ErrCapacityExhausted) {
		t.Fatalf("expected ErrCapacityExhausted, got %v", err)
	}
	if h.Len() != 2 {
		t.Errorf("len changed on refused append: %d", h.Len())
	}
}

func TestHistoryRejectsWrongCellCount(t *testing.T) {
	h := NewHistory(4, 2)
	if _, err := h.Append([]float64{1, 2}); err == nil {
		t.Fatal("expected error for short slice")
	}
	if h.Len() != 0 {
		t.Errorf("len = %d after rejected append", h.Len())
	}
}
