package selection

import (
	"fmt"
	"io"
	"log"
)

// Reporter writes one human readable line per selected item. Nothing is
// retried or stored; the sink is best effort.
type Reporter struct {
	log      *log.Logger
	currency string
}

func NewReporter(w io.Writer, currency string) *Reporter {
	return &Reporter{
		log:      log.New(w, "[selection] ", log.LstdFlags),
		currency: currency,
	}
}

// Line formats a single item, e.g. "Special Thali (x1) - ₹199".
func (r *Reporter) Line(it FoodItem) string {
	return fmt.Sprintf("%s (x%d) - %s%s", *it.Name, *it.Quantity, r.currency, it.LineTotal().String())
}

// Report emits the lines for items. An empty selection writes nothing.
func (r *Reporter) Report(rid string, items []FoodItem) {
	for _, it := range items {
		r.log.Printf("rid=%s %s", rid, r.Line(it))
	}
}
