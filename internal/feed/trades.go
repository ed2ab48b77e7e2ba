package feed

import (
	"strconv"

	"github.com/efreitasn/bondfeed/internal/domain"
)

// tradingBooks are the books a trade can be booked into, drawn uniformly
// per trade.
var tradingBooks = [...]string{"TRSY1", "TRSY2", "TRSY3"}

// Trade prices are pinned constants, not oscillator-derived: buys print
// at 99.0 and sells at 100.0. Downstream fixtures expect exactly these
// strings.
const (
	buyPrice  = "99.0"
	sellPrice = "100.0"
)

// writeTrades produces the executed-trade fixture as
// CUSIP,TRADEID,BOOK,PRICE,SIDE,QUANTITY. Trade IDs are sequential from
// TradeId0. Side alternates by iteration (not per security) and quantity
// cycles through 1M..5M keyed by iteration.
func (g *Generator) writeTrades(w RecordWriter, iterations int) error {
	idx := 0
	for i := 0; i < iterations; i++ {
		side := domain.SideForIteration(i)
		price := buyPrice
		if side == domain.SideSell {
			price = sellPrice
		}
		quantity := strconv.Itoa((1 + i%5) * 1_000_000)
		for _, sec := range g.universe {
			tradeID := "TradeId" + strconv.Itoa(idx)
			idx++
			book := tradingBooks[g.rng.Intn(len(tradingBooks))]
			if err := w.WriteRecord(sec.CUSIP, tradeID, book, price, string(side), quantity); err != nil {
				return err
			}
		}
	}
	return nil
}
