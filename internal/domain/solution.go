package domain

import (
	"errors"
	"fmt"
)

// Solution is a budget-feasible selection of items.
//
// Members are indices into the item set the solution was built from, kept in
// insertion order for reporting. Aggregates are maintained on every mutation so
// TotalCost and TotalPriority are always observable without a rescan.
type Solution struct {
	members       []int
	selected      []bool
	totalCost     float64
	totalPriority float64
}

// NewSolution returns an empty solution over an item set of size n.
func NewSolution(n int) *Solution {
	return &Solution{selected: make([]bool, n)}
}

func (s *Solution) Len() int               { return len(s.members) }
func (s *Solution) TotalCost() float64     { return s.totalCost }
func (s *Solution) TotalPriority() float64 { return s.totalPriority }

// At returns the item index stored at position pos.
func (s *Solution) At(pos int) int { return s.members[pos] }

// Members returns a copy of the selected item indices in insertion order.
func (s *Solution) Members() []int {
	out := make([]int, len(s.members))
	copy(out, s.members)
	return out
}

// Contains reports whether the item at index idx is selected.
func (s *Solution) Contains(idx int) bool {
	return idx >= 0 && idx < len(s.selected) && s.selected[idx]
}

// Add appends items[idx] when it is not yet selected and still fits the budget.
// It reports whether the item was added.
func (s *Solution) Add(items []Item, idx int, budget float64) bool {
	if s.Contains(idx) {
		return false
	}
	it := items[idx]
	if s.totalCost+it.Cost > budget {
		return false
	}

	s.members = append(s.members, idx)
	s.selected[idx] = true
	s.totalCost += it.Cost
	s.totalPriority += it.Priority
	return true
}

// SwapCost is the total cost after replacing the member at pos by items[idx].
func (s *Solution) SwapCost(items []Item, pos, idx int) float64 {
	return s.totalCost - items[s.members[pos]].Cost + items[idx].Cost
}

// PairSwapCost is the total cost after replacing the members at p1 and p2 by
// items[c1] and items[c2].
func (s *Solution) PairSwapCost(items []Item, p1, p2, c1, c2 int) float64 {
	out := items[s.members[p1]].Cost + items[s.members[p2]].Cost
	return s.totalCost - out + items[c1].Cost + items[c2].Cost
}

// Replace swaps the member at pos for items[idx].
func (s *Solution) Replace(items []Item, pos, idx int, budget float64) error {
	if pos < 0 || pos >= len(s.members) {
		return fmt.Errorf("replace: position %d out of range", pos)
	}
	if s.Contains(idx) {
		return fmt.Errorf("replace: item index %d already selected", idx)
	}

	newCost := s.SwapCost(items, pos, idx)
	if newCost > budget {
		return fmt.Errorf("replace: cost %.4f exceeds budget %.4f", newCost, budget)
	}

	old := s.members[pos]
	s.selected[old] = false
	s.selected[idx] = true
	s.members[pos] = idx
	s.totalCost = newCost
	s.totalPriority = s.totalPriority - items[old].Priority + items[idx].Priority
	return nil
}

// ReplacePair swaps the members at p1 and p2 for items[c1] and items[c2].
func (s *Solution) ReplacePair(items []Item, p1, p2, c1, c2 int, budget float64) error {
	if p1 == p2 || p1 < 0 || p2 < 0 || p1 >= len(s.members) || p2 >= len(s.members) {
		return fmt.Errorf("replace pair: invalid positions %d, %d", p1, p2)
	}
	if c1 == c2 || s.Contains(c1) || s.Contains(c2) {
		return fmt.Errorf("replace pair: candidates %d, %d must be distinct and unselected", c1, c2)
	}

	newCost := s.PairSwapCost(items, p1, p2, c1, c2)
	if newCost > budget {
		return fmt.Errorf("replace pair: cost %.4f exceeds budget %.4f", newCost, budget)
	}

	o1, o2 := s.members[p1], s.members[p2]
	s.selected[o1], s.selected[o2] = false, false
	s.selected[c1], s.selected[c2] = true, true
	s.members[p1], s.members[p2] = c1, c2
	s.totalCost = newCost
	s.totalPriority = s.totalPriority - (items[o1].Priority + items[o2].Priority) + items[c1].Priority + items[c2].Priority
	return nil
}

// Clone returns an independent copy.
func (s *Solution) Clone() *Solution {
	c := &Solution{
		members:       make([]int, len(s.members)),
		selected:      make([]bool, len(s.selected)),
		totalCost:     s.totalCost,
		totalPriority: s.totalPriority,
	}
	copy(c.members, s.members)
	copy(c.selected, s.selected)
	return c
}

// Resolve returns the selected items in insertion order.
func (s *Solution) Resolve(items []Item) ([]Item, error) {
	if len(items) != len(s.selected) {
		return nil, errors.New("resolve solution: item set size mismatch")
	}

	out := make([]Item, 0, len(s.members))
	for _, idx := range s.members {
		out = append(out, items[idx])
	}
	return out, nil
}
