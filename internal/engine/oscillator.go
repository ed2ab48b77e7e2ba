package engine

import "github.com/efreitasn/bondfeed/internal/domain"

// Oscillation bounds. The walk starts one tick below the lower bound so
// the first step lands exactly on 99-000.
var (
	startPrice = domain.FractionalPrice{Handle: 98, Ticks32: 31, Ticks256: 7}
	lowerBound = domain.FractionalPrice{Handle: 99}
	upperBound = domain.FractionalPrice{Handle: 101}
)

// Oscillator drives a bounded price walk: one tick per step, rising until
// the price reaches 101-000 and falling until it reaches 99-000. The
// bounds are turn-points, not terminals; the walk never ends.
type Oscillator struct {
	price  domain.FractionalPrice
	rising bool
}

// NewOscillator returns an oscillator positioned one tick below 99-000,
// moving up, so its first Step yields exactly 99-000.
func NewOscillator() *Oscillator {
	return &Oscillator{price: startPrice, rising: true}
}

// Step advances the walk by one tick and returns the new price. The
// direction flips to falling exactly when the walk reaches the upper
// bound and to rising exactly at the lower bound.
func (o *Oscillator) Step() domain.FractionalPrice {
	// A single-tick move cannot fail; AddTicks/SubTicks only reject
	// negative step counts.
	if o.rising {
		o.price, _ = o.price.AddTicks(1)
		if o.price == upperBound {
			o.rising = false
		}
	} else {
		o.price, _ = o.price.SubTicks(1)
		if o.price == lowerBound {
			o.rising = true
		}
	}
	return o.price
}

// Price returns the current position of the walk without advancing it.
func (o *Oscillator) Price() domain.FractionalPrice {
	return o.price
}
