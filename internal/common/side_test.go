package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSide(t *testing.T) {
	side, err := ParseSide("BID")
	require.NoError(t, err)
	assert.Equal(t, Bid, side)

	side, err = ParseSide("ASK")
	require.NoError(t, err)
	assert.Equal(t, Ask, side)

	_, err = ParseSide("buy")
	assert.Error(t, err)
}

func TestSideJSON(t *testing.T) {
	data, err := json.Marshal(Ask)
	require.NoError(t, err)
	assert.Equal(t, `"ASK"`, string(data))

	var side Side
	require.NoError(t, json.Unmarshal([]byte(`"BID"`), &side))
	assert.Equal(t, Bid, side)

	assert.Error(t, json.Unmarshal([]byte(`"HOLD"`), &side))
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, Ask, Bid.Opposite())
	assert.Equal(t, Bid, Ask.Opposite())
}
