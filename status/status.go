// Package status tracks fixing and setting decisions on variables by
// dense id, the bookkeeping a branch-and-cut driver consults when
// branching. Fixing is permanent for the whole search; setting belongs
// to one subproblem. Conflicting requests surface as a contradiction,
// which callers treat as an algorithm failure, not a transient.
package status

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrContradiction is wrapped by every ContradictionError.
var ErrContradiction = errors.New("status: contradiction")

// Bound names the side a variable is pinned to.
type Bound int

const (
	Lower Bound = iota
	Upper
)

// String implements fmt.Stringer.
func (b Bound) String() string {
	switch b {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "unknown"
	}
}

// Status is the full state of one variable.
type Status int

const (
	Free Status = iota
	SetToLower
	SetToUpper
	FixedToLower
	FixedToUpper
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Free:
		return "free"
	case SetToLower:
		return "set to lower"
	case SetToUpper:
		return "set to upper"
	case FixedToLower:
		return "fixed to lower"
	case FixedToUpper:
		return "fixed to upper"
	default:
		return "unknown"
	}
}

// ContradictionError reports a fix/set request that conflicts with the
// variable's present state. It wraps ErrContradiction.
type ContradictionError struct {
	Variable  uint32
	Existing  Status
	Requested Status
}

// Error implements the error interface.
func (e *ContradictionError) Error() string {
	return fmt.Sprintf("status: contradiction on variable %d: %s requested, %s present",
		e.Variable, e.Requested, e.Existing)
}

// Unwrap implements the errors.Unwrap convention.
func (e *ContradictionError) Unwrap() error {
	return ErrContradiction
}

// Table holds the status of every variable, one roaring bitmap per
// non-free state. A variable is in at most one of the four sets at any
// time. Not safe for concurrent use.
type Table struct {
	setLower   *roaring.Bitmap
	setUpper   *roaring.Bitmap
	fixedLower *roaring.Bitmap
	fixedUpper *roaring.Bitmap
}

// NewTable creates an empty Table; every variable starts Free.
func NewTable() *Table {
	return &Table{
		setLower:   roaring.New(),
		setUpper:   roaring.New(),
		fixedLower: roaring.New(),
		fixedUpper: roaring.New(),
	}
}

// NewTableFrom creates a Table starting from the parent's state, as
// when a child subproblem inherits its father's decisions. The copy is
// independent; neither table sees the other's later changes.
func NewTableFrom(parent *Table) *Table {
	return &Table{
		setLower:   parent.setLower.Clone(),
		setUpper:   parent.setUpper.Clone(),
		fixedLower: parent.fixedLower.Clone(),
		fixedUpper: parent.fixedUpper.Clone(),
	}
}

// StatusOf returns the state of variable id.
func (t *Table) StatusOf(id uint32) Status {
	switch {
	case t.fixedLower.Contains(id):
		return FixedToLower
	case t.fixedUpper.Contains(id):
		return FixedToUpper
	case t.setLower.Contains(id):
		return SetToLower
	case t.setUpper.Contains(id):
		return SetToUpper
	default:
		return Free
	}
}

// Set pins variable id to b for the current subproblem. Restating the
// present bound (set or fixed) is a no-op; requesting the opposite one
// is a contradiction. A set never overrides a fix.
func (t *Table) Set(id uint32, b Bound) error {
	requested := SetToLower
	if b == Upper {
		requested = SetToUpper
	}

	existing := t.StatusOf(id)
	switch existing {
	case Free:
		t.bitmapSet(b).Add(id)
		return nil
	case SetToLower, FixedToLower:
		if b == Lower {
			return nil
		}
	case SetToUpper, FixedToUpper:
		if b == Upper {
			return nil
		}
	}
	return &ContradictionError{Variable: id, Existing: existing, Requested: requested}
}

// Fix pins variable id to b for the rest of the search. A fix upgrades
// a matching set; restating a matching fix is a no-op; the opposite
// bound, set or fixed, is a contradiction.
func (t *Table) Fix(id uint32, b Bound) error {
	requested := FixedToLower
	if b == Upper {
		requested = FixedToUpper
	}

	existing := t.StatusOf(id)
	switch existing {
	case Free:
		t.bitmapFixed(b).Add(id)
		return nil
	case SetToLower:
		if b == Lower {
			t.setLower.Remove(id)
			t.fixedLower.Add(id)
			return nil
		}
	case SetToUpper:
		if b == Upper {
			t.setUpper.Remove(id)
			t.fixedUpper.Add(id)
			return nil
		}
	case FixedToLower:
		if b == Lower {
			return nil
		}
	case FixedToUpper:
		if b == Upper {
			return nil
		}
	}
	return &ContradictionError{Variable: id, Existing: existing, Requested: requested}
}

// Fixed reports whether variable id is fixed to either bound.
func (t *Table) Fixed(id uint32) bool {
	return t.fixedLower.Contains(id) || t.fixedUpper.Contains(id)
}

// SetTo returns the bound variable id is set to. False when the
// variable is free or fixed.
func (t *Table) SetTo(id uint32) (Bound, bool) {
	switch {
	case t.setLower.Contains(id):
		return Lower, true
	case t.setUpper.Contains(id):
		return Upper, true
	default:
		return 0, false
	}
}

// Clear releases a set on variable id, as when a subproblem's branching
// is undone. Fixes are permanent; clearing a fixed variable does
// nothing.
func (t *Table) Clear(id uint32) {
	t.setLower.Remove(id)
	t.setUpper.Remove(id)
}

// NumSet returns the number of set variables.
func (t *Table) NumSet() int {
	return int(t.setLower.GetCardinality() + t.setUpper.GetCardinality())
}

// NumFixed returns the number of fixed variables.
func (t *Table) NumFixed() int {
	return int(t.fixedLower.GetCardinality() + t.fixedUpper.GetCardinality())
}

// FixedVars returns the ids of all fixed variables as a fresh bitmap
// the caller may mutate.
func (t *Table) FixedVars() *roaring.Bitmap {
	return roaring.Or(t.fixedLower, t.fixedUpper)
}

func (t *Table) bitmapSet(b Bound) *roaring.Bitmap {
	if b == Lower {
		return t.setLower
	}
	return t.setUpper
}

func (t *Table) bitmapFixed(b Bound) *roaring.Bitmap {
	if b == Lower {
		return t.fixedLower
	}
	return t.fixedUpper
}
