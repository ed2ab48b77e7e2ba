package domain

// Side indicates the direction of a trade or inquiry.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// SideForIteration returns the side the trade and inquiry streams use for
// a given outer iteration index: BUY on even indices, SELL on odd. The
// alternation is keyed to the iteration counter, not to the security.
func SideForIteration(i int) Side {
	if i%2 == 0 {
		return SideBuy
	}
	return SideSell
}
