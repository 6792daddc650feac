package services

import (
	"math"
	"slices"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// candidatePool holds the indices of items still eligible in one construction pass.
// Indices stay sorted so RCL scans happen in a fixed order for a given seed.
type candidatePool struct {
	items     []domain.Item
	remaining []int
}

func newCandidatePool(items []domain.Item) *candidatePool {
	remaining := make([]int, len(items))
	for i := range remaining {
		remaining[i] = i
	}
	return &candidatePool{items: items, remaining: remaining}
}

func (p *candidatePool) Len() int { return len(p.remaining) }

// priorityRange returns min and max priority over every remaining item,
// regardless of whether it still fits the budget.
func (p *candidatePool) priorityRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, idx := range p.remaining {
		pr := p.items[idx].Priority
		lo = min(lo, pr)
		hi = max(hi, pr)
	}
	return lo, hi
}

func (p *candidatePool) remove(idx int) {
	if i, ok := slices.BinarySearch(p.remaining, idx); ok {
		p.remaining = slices.Delete(p.remaining, i, i+1)
	}
}
