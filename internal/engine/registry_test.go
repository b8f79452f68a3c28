package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gungnir/internal/common"
)

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry("BTCZAR", "ETHZAR")

	book, ok := registry.Book("BTCZAR")
	require.True(t, ok)
	assert.NotNil(t, book)

	_, ok = registry.Book("DOGEZAR")
	assert.False(t, ok)

	assert.Equal(t, []string{"BTCZAR", "ETHZAR"}, registry.Pairs())
}

func TestRegistry_BooksAreIndependent(t *testing.T) {
	registry := NewRegistry("BTCZAR", "ETHZAR")

	btc, _ := registry.Book("BTCZAR")
	eth, _ := registry.Book("ETHZAR")

	submit(t, btc, common.Bid, "9000", "1.0")

	bids, asks := eth.Snapshot()
	assert.Empty(t, bids)
	assert.Empty(t, asks)

	bids, _ = btc.Snapshot()
	assert.Len(t, bids, 1)
}
