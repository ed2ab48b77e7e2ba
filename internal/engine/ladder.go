package engine

import (
	"fmt"

	"github.com/efreitasn/bondfeed/internal/domain"
	"github.com/google/btree"
)

// ladderDepth is the number of levels derived on each side of the book.
const ladderDepth = 5

// bidLess orders the bid side best-first: price descending, so Min()
// returns the bid closest to mid.
func bidLess(a, b domain.FractionalPrice) bool {
	return a.Cmp(b) > 0
}

// offerLess orders the offer side best-first: price ascending, so Min()
// returns the offer closest to mid.
func offerLess(a, b domain.FractionalPrice) bool {
	return a.Cmp(b) < 0
}

// Ladder is a five-level two-sided book derived from a mid price. Levels
// live in per-side B-trees so every read comes out in price order by
// construction.
type Ladder struct {
	mid    domain.FractionalPrice
	bids   *btree.BTreeG[domain.FractionalPrice]
	offers *btree.BTreeG[domain.FractionalPrice]
}

// DeriveLadder builds the ladder for a mid price and a top-of-book spread
// width in 256ths. Level i on each side sits i + spreadTicks/2 ticks from
// mid (integer division), so levels strictly widen with i and the two
// sides cannot cross. Negative spreads are rejected with
// domain.ErrNegativeSpread.
func DeriveLadder(mid domain.FractionalPrice, spreadTicks int) (*Ladder, error) {
	if spreadTicks < 0 {
		return nil, fmt.Errorf("derive ladder: spread %d: %w", spreadTicks, domain.ErrNegativeSpread)
	}
	const degree = 32
	l := &Ladder{
		mid:    mid,
		bids:   btree.NewG[domain.FractionalPrice](degree, bidLess),
		offers: btree.NewG[domain.FractionalPrice](degree, offerLess),
	}
	half := spreadTicks / 2
	for i := 0; i < ladderDepth; i++ {
		bid, err := mid.SubTicks(i + half)
		if err != nil {
			return nil, err
		}
		offer, err := mid.AddTicks(i + half)
		if err != nil {
			return nil, err
		}
		l.bids.ReplaceOrInsert(bid)
		l.offers.ReplaceOrInsert(offer)
	}
	return l, nil
}

// Mid returns the mid price the ladder was derived from.
func (l *Ladder) Mid() domain.FractionalPrice {
	return l.mid
}

// BestBid returns the bid closest to mid (top of book).
func (l *Ladder) BestBid() (domain.FractionalPrice, bool) {
	return l.bids.Min()
}

// BestOffer returns the offer closest to mid (top of book).
func (l *Ladder) BestOffer() (domain.FractionalPrice, bool) {
	return l.offers.Min()
}

// BidsAscending returns the bid levels in ascending price order, farthest
// from mid first. This is the order snapshot lines are written in.
func (l *Ladder) BidsAscending() []domain.FractionalPrice {
	levels := make([]domain.FractionalPrice, 0, l.bids.Len())
	l.bids.Descend(func(p domain.FractionalPrice) bool {
		levels = append(levels, p)
		return true
	})
	return levels
}

// OffersAscending returns the offer levels in ascending price order,
// closest to mid first.
func (l *Ladder) OffersAscending() []domain.FractionalPrice {
	levels := make([]domain.FractionalPrice, 0, l.offers.Len())
	l.offers.Ascend(func(p domain.FractionalPrice) bool {
		levels = append(levels, p)
		return true
	})
	return levels
}
