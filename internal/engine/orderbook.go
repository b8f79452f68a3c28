package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"

	"gungnir/internal/common"
)

var (
	ErrInvalidOrder  = errors.New("invalid order")
	ErrOrderNotFound = errors.New("order not found")
)

// entry pins a resting order to its admission sequence. The sequence is
// assigned under the book lock and totally orders same-price entries, which
// is what gives the time tie-break: earlier admission sorts first.
type entry struct {
	order *common.Order
	seq   uint64
}

type bookSide = btree.BTreeG[*entry]

// OrderBook holds the resting orders and the trade log for a single pair.
// All methods are safe for concurrent use; the book mutex keeps one mutation
// in flight at a time, and snapshots never observe a half-applied match.
type OrderBook struct {
	mu sync.Mutex

	// Both trees sort best order first: highest price for bids, lowest
	// for asks, admission sequence breaking price ties.
	bids *bookSide
	asks *bookSide

	orders map[string]*entry // order id -> resting entry
	trades []common.Trade    // append-only, execution order

	seq uint64 // admission counter, monotonic per book
}

func NewOrderBook() *OrderBook {
	bids := btree.NewBTreeG(func(a, b *entry) bool {
		if !a.order.Price.Equal(b.order.Price) {
			return a.order.Price.GreaterThan(b.order.Price)
		}
		return a.seq < b.seq
	})
	asks := btree.NewBTreeG(func(a, b *entry) bool {
		if !a.order.Price.Equal(b.order.Price) {
			return a.order.Price.LessThan(b.order.Price)
		}
		return a.seq < b.seq
	})
	return &OrderBook{
		bids:   bids,
		asks:   asks,
		orders: make(map[string]*entry),
	}
}

// SubmitLimitOrder admits an order, matching it against the best resting
// order on the opposite side if their prices cross. The trade prints at the
// resting order's price. Matching is single-shot: at most one resting order
// is consulted per submission, even when the incoming order is marketable
// against several levels.
//
// A blank ID gets a generated uuid and a zero Timestamp is set to the
// submission time. The returned order reflects the remaining quantity after
// any fill.
func (book *OrderBook) SubmitLimitOrder(order common.Order) (common.Order, error) {
	if !order.Price.IsPositive() {
		return common.Order{}, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidOrder, order.Price)
	}
	if !order.Quantity.IsPositive() {
		return common.Order{}, fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidOrder, order.Quantity)
	}
	if order.Side != common.Bid && order.Side != common.Ask {
		return common.Order{}, fmt.Errorf("%w: %s", ErrInvalidOrder, order.Side)
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Timestamp.IsZero() {
		order.Timestamp = time.Now()
	}

	book.mu.Lock()
	defer book.mu.Unlock()

	incoming := &order
	if best, ok := book.peekOpposing(incoming); ok {
		resting := best.order
		quantity := decimal.Min(incoming.Quantity, resting.Quantity)
		incoming.Quantity = incoming.Quantity.Sub(quantity)
		resting.Quantity = resting.Quantity.Sub(quantity)

		// Price-time priority: the order that was already in the book
		// sets the price.
		book.appendTrade(incoming, resting, resting.Price, quantity)

		if resting.Quantity.IsZero() {
			book.removeEntry(best)
		}
	}

	if incoming.Quantity.IsPositive() {
		book.insert(incoming)
	}
	return *incoming, nil
}

// CancelOrder removes a resting order. The bool reports whether the id was
// resting; an id that was already filled, already cancelled, or never
// existed is an ordinary miss, not an error. The returned order carries the
// unfilled remainder only; filled quantity already lives in the trade log.
func (book *OrderBook) CancelOrder(id string) (common.Order, bool) {
	book.mu.Lock()
	defer book.mu.Unlock()

	e, ok := book.orders[id]
	if !ok {
		return common.Order{}, false
	}
	book.removeEntry(e)
	return *e.order, true
}

// Snapshot copies out both sides in book order: bids best (highest price)
// first, asks best (lowest price) first, same-price orders oldest first. The
// returned slices do not alias book state.
func (book *OrderBook) Snapshot() (bids, asks []common.Order) {
	book.mu.Lock()
	defer book.mu.Unlock()

	bids = make([]common.Order, 0, book.bids.Len())
	book.bids.Scan(func(e *entry) bool {
		bids = append(bids, *e.order)
		return true
	})
	asks = make([]common.Order, 0, book.asks.Len())
	book.asks.Scan(func(e *entry) bool {
		asks = append(asks, *e.order)
		return true
	})
	return bids, asks
}

// RecentTrades returns a copy of the full trade log, oldest first.
func (book *OrderBook) RecentTrades() []common.Trade {
	book.mu.Lock()
	defer book.mu.Unlock()

	trades := make([]common.Trade, len(book.trades))
	copy(trades, book.trades)
	return trades
}

// peekOpposing returns the best resting order on the opposite side if its
// price is marketable against the incoming limit.
func (book *OrderBook) peekOpposing(incoming *common.Order) (*entry, bool) {
	best, ok := book.treeFor(incoming.Side.Opposite()).Min()
	if !ok {
		return nil, false
	}
	if incoming.Side == common.Bid {
		if best.order.Price.GreaterThan(incoming.Price) {
			return nil, false
		}
	} else {
		if best.order.Price.LessThan(incoming.Price) {
			return nil, false
		}
	}
	return best, true
}

func (book *OrderBook) appendTrade(a, b *common.Order, price, quantity decimal.Decimal) {
	bid, ask := a, b
	if bid.Side == common.Ask {
		bid, ask = b, a
	}
	book.trades = append(book.trades, common.Trade{
		ID:              uuid.New().String(),
		Bid:             *bid,
		Ask:             *ask,
		ExecutePrice:    price,
		ExecuteQuantity: quantity,
		Timestamp:       time.Now(),
	})
}

func (book *OrderBook) insert(order *common.Order) {
	book.seq++
	e := &entry{order: order, seq: book.seq}
	book.treeFor(order.Side).Set(e)
	book.orders[order.ID] = e
}

// removeEntry drops a resting entry from its tree and the id index. An
// indexed order missing from its tree means the index is corrupt, so fail
// loudly rather than limp on.
func (book *OrderBook) removeEntry(e *entry) {
	if _, ok := book.treeFor(e.order.Side).Delete(e); !ok {
		panic(fmt.Sprintf("orderbook: order %s indexed but missing from %s tree", e.order.ID, e.order.Side))
	}
	delete(book.orders, e.order.ID)
}

func (book *OrderBook) treeFor(side common.Side) *bookSide {
	if side == common.Bid {
		return book.bids
	}
	return book.asks
}
