package common

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a limit order as stored in a book. Quantity is the remaining
// unfilled quantity and only ever decreases while the order rests; an order
// whose quantity reaches zero leaves the book for good.
type Order struct {
	ID        string          `json:"id"`        // Exchange-assigned order id
	Price     decimal.Decimal `json:"price"`     // Limit price
	Quantity  decimal.Decimal `json:"quantity"`  // Remaining quantity
	Side      Side            `json:"side"`      // BID or ASK
	Timestamp time.Time       `json:"timestamp"` // Admission time, used for tie-breaking only
}

func (o Order) String() string {
	return fmt.Sprintf(
		"Order{%s %s %s @ %s, admitted %s}",
		o.ID,
		o.Side,
		o.Quantity,
		o.Price,
		o.Timestamp.Format(time.RFC3339Nano),
	)
}
