package feed

import (
	"strconv"

	"github.com/efreitasn/bondfeed/internal/engine"
)

// writeQuotes produces the quote fixture: per iteration, per security, one
// tick of that security's oscillator plus a spread draw, emitted as
// CUSIP,PRICE,SPREAD.
//
// The spread is a uniform draw from {1,2}, not a strict 1/2 alternation;
// downstream fixtures depend on the random shape.
func (g *Generator) writeQuotes(w RecordWriter, iterations int) error {
	walks := g.newWalks()
	for i := 0; i < iterations; i++ {
		for _, sec := range g.universe {
			price := walks[sec.CUSIP].Step()
			spread := 1 + g.rng.Intn(2)
			if err := w.WriteRecord(sec.CUSIP, price.String(), strconv.Itoa(spread)); err != nil {
				return err
			}
		}
	}
	return nil
}

// newWalks builds one oscillator per security, keyed by CUSIP. The seven
// price paths are fully independent, so every security's first emitted
// price is 99-000.
func (g *Generator) newWalks() map[string]*engine.Oscillator {
	walks := make(map[string]*engine.Oscillator, len(g.universe))
	for _, sec := range g.universe {
		walks[sec.CUSIP] = engine.NewOscillator()
	}
	return walks
}
