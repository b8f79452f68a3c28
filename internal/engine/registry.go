package engine

import (
	"errors"
	"sort"
)

var ErrUnknownPair = errors.New("unknown pair")

// Registry maps a trading pair to its order book. The pair set is fixed at
// construction and never mutated, so lookups take no lock and books for
// different pairs serve requests independently.
type Registry struct {
	books map[string]*OrderBook
}

func NewRegistry(pairs ...string) *Registry {
	books := make(map[string]*OrderBook, len(pairs))
	for _, pair := range pairs {
		books[pair] = NewOrderBook()
	}
	return &Registry{books: books}
}

// Book resolves a pair to its order book. A missing pair is an expected
// outcome for the transport shell to translate, not an engine fault.
func (r *Registry) Book(pair string) (*OrderBook, bool) {
	book, ok := r.books[pair]
	return book, ok
}

// Pairs lists the configured pairs in stable order.
func (r *Registry) Pairs() []string {
	pairs := make([]string, 0, len(r.books))
	for pair := range r.books {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)
	return pairs
}
