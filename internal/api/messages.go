package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"gungnir/internal/common"
)

// submitLimitOrderRequest is the wire form of a new limit order. Price and
// quantity accept both JSON numbers and decimal strings.
type submitLimitOrderRequest struct {
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
	Side     string          `json:"side"`
}

// Order builds the engine order, leaving id and timestamp blank for the
// engine to default at admission.
func (req submitLimitOrderRequest) Order() (common.Order, error) {
	side, err := common.ParseSide(req.Side)
	if err != nil {
		return common.Order{}, err
	}
	return common.Order{
		Price:    req.Price,
		Quantity: req.Quantity,
		Side:     side,
	}, nil
}

type authResponse struct {
	Token string `json:"token"`
}

type orderBookResponse struct {
	Bids []common.Order `json:"bids"`
	Asks []common.Order `json:"asks"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("encoding response")
	}
}

func respondError(w http.ResponseWriter, status int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("encoding error response")
	}
}
