package engine

import "testing"

func TestSpreadCycleSequence(t *testing.T) {
	c := NewSpreadCycle()

	want := []int{2, 4, 6, 8, 6, 4, 2, 4, 6, 8, 6, 4, 2}
	for i, w := range want {
		if got := c.Next(); got != w {
			t.Fatalf("Next() call %d = %d, want %d", i, got, w)
		}
	}
}
