package common

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Trade records a single execution between a bid and an ask. The embedded
// orders are value snapshots taken when the trade printed; later fills do
// not alter a recorded trade.
type Trade struct {
	ID              string          `json:"id"`
	Bid             Order           `json:"bid"`
	Ask             Order           `json:"ask"`
	ExecutePrice    decimal.Decimal `json:"executePrice"`
	ExecuteQuantity decimal.Decimal `json:"executeQuantity"`
	Timestamp       time.Time       `json:"timestamp"`
}

func (t Trade) String() string {
	return fmt.Sprintf(
		"Trade{%s %s @ %s, bid %s, ask %s}",
		t.ID,
		t.ExecuteQuantity,
		t.ExecutePrice,
		t.Bid.ID,
		t.Ask.ID,
	)
}
