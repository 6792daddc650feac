package services

// rclThreshold returns max - alpha*(max-min), pinned to the exact bounds at
// alpha 0 and 1 so rounding never drops the extreme items.
func rclThreshold(lo, hi, alpha float64) float64 {
	switch {
	case alpha <= 0:
		return hi
	case alpha >= 1:
		return lo
	}
	t := hi - alpha*(hi-lo)
	if t < lo {
		return lo
	}
	return t
}

// buildRCL returns pool items that cost at most remainingBudget and whose
// priority reaches the alpha band. The band is computed over the whole pool
// before the cost filter is applied.
func buildRCL(pool *candidatePool, remainingBudget, alpha float64) []int {
	if pool.Len() == 0 {
		return nil
	}

	lo, hi := pool.priorityRange()
	threshold := rclThreshold(lo, hi, alpha)

	rcl := make([]int, 0, pool.Len())
	for _, idx := range pool.remaining {
		it := pool.items[idx]
		if it.Cost <= remainingBudget && it.Priority >= threshold {
			rcl = append(rcl, idx)
		}
	}
	return rcl
}
