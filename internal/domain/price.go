package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FractionalPrice is a U.S. Treasury price in the conventional
// handle-32nds-256ths notation. The represented value is
// Handle + Ticks32/32 + Ticks256/256, and one tick is 1/256 of a point.
// Ticks32 is always in [0,31] and Ticks256 in [0,7] after any operation;
// all mutation goes through AddTicks/SubTicks, which normalize by carrying
// into the next-higher field. Equality is field-wise. A negative Handle is
// permitted; the arithmetic applies no floor.
type FractionalPrice struct {
	Handle   int
	Ticks32  int
	Ticks256 int
}

// AddTicks returns p moved up by steps ticks. Overflow of Ticks256 carries
// into Ticks32 and overflow of Ticks32 carries into Handle, so the field
// ranges hold for any non-negative steps. steps of 0 returns p unchanged.
// Negative steps are rejected with ErrNegativeSteps.
func (p FractionalPrice) AddTicks(steps int) (FractionalPrice, error) {
	if steps < 0 {
		return FractionalPrice{}, fmt.Errorf("add %d ticks: %w", steps, ErrNegativeSteps)
	}
	p.Ticks256 += steps
	p.Ticks32 += p.Ticks256 / 8
	p.Ticks256 %= 8
	p.Handle += p.Ticks32 / 32
	p.Ticks32 %= 32
	return p, nil
}

// SubTicks returns p moved down by steps ticks, borrowing from Ticks32 and
// Handle as needed. Negative steps are rejected with ErrNegativeSteps.
func (p FractionalPrice) SubTicks(steps int) (FractionalPrice, error) {
	if steps < 0 {
		return FractionalPrice{}, fmt.Errorf("subtract %d ticks: %w", steps, ErrNegativeSteps)
	}
	p.Ticks256 -= steps
	if p.Ticks256 < 0 {
		borrow := (-p.Ticks256 + 7) / 8
		p.Ticks256 += borrow * 8
		p.Ticks32 -= borrow
	}
	if p.Ticks32 < 0 {
		borrow := (-p.Ticks32 + 31) / 32
		p.Ticks32 += borrow * 32
		p.Handle -= borrow
	}
	return p, nil
}

// Cmp compares two prices by value: -1 if p < q, 0 if equal, +1 if p > q.
func (p FractionalPrice) Cmp(q FractionalPrice) int {
	switch {
	case p.Handle != q.Handle:
		return cmpInt(p.Handle, q.Handle)
	case p.Ticks32 != q.Ticks32:
		return cmpInt(p.Ticks32, q.Ticks32)
	default:
		return cmpInt(p.Ticks256, q.Ticks256)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats the price in the canonical notation used by every output
// stream: the handle, a dash, the 32nds zero-padded to two digits and the
// 256ths zero-padded to two digits. (99,16,4) formats as "99-1604".
func (p FractionalPrice) String() string {
	return fmt.Sprintf("%d-%02d%02d", p.Handle, p.Ticks32, p.Ticks256)
}

// ParsePrice is the inverse of String. The handle may be negative; the
// fractional part must be exactly four digits with the 32nds in [0,31]
// and the 256ths in [0,7]. Anything else fails with
// ErrInvalidPriceNotation.
func ParsePrice(s string) (FractionalPrice, error) {
	// LastIndexByte so a leading minus sign on the handle is never taken
	// for the separator.
	sep := strings.LastIndexByte(s, '-')
	if sep <= 0 {
		return FractionalPrice{}, fmt.Errorf("parse price %q: %w", s, ErrInvalidPriceNotation)
	}
	frac := s[sep+1:]
	if len(frac) != 4 {
		return FractionalPrice{}, fmt.Errorf("parse price %q: %w", s, ErrInvalidPriceNotation)
	}
	handle, err := strconv.Atoi(s[:sep])
	if err != nil {
		return FractionalPrice{}, fmt.Errorf("parse price %q: %w", s, ErrInvalidPriceNotation)
	}
	ticks32, err := strconv.Atoi(frac[:2])
	if err != nil || ticks32 < 0 || ticks32 > 31 {
		return FractionalPrice{}, fmt.Errorf("parse price %q: %w", s, ErrInvalidPriceNotation)
	}
	ticks256, err := strconv.Atoi(frac[2:])
	if err != nil || ticks256 < 0 || ticks256 > 7 {
		return FractionalPrice{}, fmt.Errorf("parse price %q: %w", s, ErrInvalidPriceNotation)
	}
	return FractionalPrice{Handle: handle, Ticks32: ticks32, Ticks256: ticks256}, nil
}
