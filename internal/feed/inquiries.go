package feed

import (
	"strconv"

	"github.com/efreitasn/bondfeed/internal/domain"
)

// writeInquiries produces the customer-inquiry fixture as ID,CUSIP,SIDE,
// with a sequential ID from 0 and the side alternating by iteration. The
// record ends with a trailing comma before the newline; downstream
// parsers expect it, so the empty trailing field is deliberate.
func (g *Generator) writeInquiries(w RecordWriter, iterations int) error {
	idx := 0
	for i := 0; i < iterations; i++ {
		side := domain.SideForIteration(i)
		for _, sec := range g.universe {
			if err := w.WriteRecord(strconv.Itoa(idx), sec.CUSIP, string(side), ""); err != nil {
				return err
			}
			idx++
		}
	}
	return nil
}
