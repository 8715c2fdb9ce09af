// Package posterior owns the ordered sequence of density slices produced by
// the sequential Bayesian updates of one advisory session.
package posterior

// #region imports
import (
	"errors"
	"fmt"
)

// #endregion

// #region errors

// ErrCapacityExhausted is returned by Append once the fixed slice budget is
// spent. The history is sized exactly at construction time; running past it
// means the caller lost track of its round budget.
var ErrCapacityExhausted = errors.New("posterior: history capacity exhausted")

// #endregion errors

// #region history

// History is the append-only posterior slice sequence. Slice 0 is the seeding
// update from the historical aggregate; slice k is the posterior after k
// updates. Capacity is fixed at construction so the update loop never
// reallocates, and appended slices are never mutated in place.
type History struct {
	cells  int
	slices [][]float64
}

// NewHistory pre-allocates room for maxSlices density slices of cells values
// each.
func NewHistory(cells, maxSlices int) *History {
	return &History{
		cells:  cells,
		slices: make([][]float64, 0, maxSlices),
	}
}

// #endregion history

// #region append

// Append stores the next posterior slice and returns its index.
func (h *History) Append(slice []float64) (int, error) {
	if len(h.slices) == cap(h.slices) {
		return 0, ErrCapacityExhausted
	}
	if len(slice) != h.cells {
		return 0, fmt.Errorf("posterior: slice has %d cells, want %d", len(slice), h.cells)
	}
	h.slices = append(h.slices, slice)
	return len(h.slices) - 1, nil
}

// #endregion append

// #region accessors

// Latest returns the most recently appended slice, or nil before the seeding
// update.
func (h *History) Latest() []float64 {
	if len(h.slices) == 0 {
		return nil
	}
	return h.slices[len(h.slices)-1]
}

// At returns the posterior slice after i updates.
func (h *History) At(i int) []float64 {
	return h.slices[i]
}

// Len returns the number of stored slices.
func (h *History) Len() int {
	return len(h.slices)
}

// Cap returns the fixed slice budget.
func (h *History) Cap() int {
	return cap(h.slices)
}

// #endregion accessors
