package engine

// spreadWidths is the top-of-book spread cycle in 256ths: widening from
// 2/256 (1/128th) up to 8/256 (1/32nd) and narrowing back down.
var spreadWidths = [...]int{2, 4, 6, 8, 6, 4}

// SpreadCycle hands out spread widths round-robin, one per book snapshot,
// wrapping forever with no reset condition.
type SpreadCycle struct {
	n int
}

// NewSpreadCycle returns a cycle positioned at the narrowest width.
func NewSpreadCycle() *SpreadCycle {
	return &SpreadCycle{}
}

// Next returns the next width in the cycle and advances it.
func (c *SpreadCycle) Next() int {
	w := spreadWidths[c.n%len(spreadWidths)]
	c.n++
	return w
}
