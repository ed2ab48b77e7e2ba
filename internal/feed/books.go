package feed

import "github.com/efreitasn/bondfeed/internal/engine"

// writeBooks produces the five-level book-snapshot fixture. Each security
// walks its own mid-price path, independent of the quote stream's
// oscillators, while the spread cycle is shared across securities: it
// advances once per emitted snapshot. Lines carry the bids farthest from
// mid first, then the offers closest to mid first:
// CUSIP,BID4..BID0,OFFER0..OFFER4.
func (g *Generator) writeBooks(w RecordWriter, iterations int) error {
	walks := g.newWalks()
	cycle := engine.NewSpreadCycle()
	fields := make([]string, 0, 2*5+1)
	for i := 0; i < iterations; i++ {
		for _, sec := range g.universe {
			mid := walks[sec.CUSIP].Step()
			ladder, err := engine.DeriveLadder(mid, cycle.Next())
			if err != nil {
				return err
			}
			fields = fields[:0]
			fields = append(fields, sec.CUSIP)
			for _, bid := range ladder.BidsAscending() {
				fields = append(fields, bid.String())
			}
			for _, offer := range ladder.OffersAscending() {
				fields = append(fields, offer.String())
			}
			if err := w.WriteRecord(fields...); err != nil {
				return err
			}
		}
	}
	return nil
}
