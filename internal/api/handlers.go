package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"gungnir/internal/engine"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "gungnir order book")
}

func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	token, err := s.issueToken()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "token issuance failed", err.Error())
		return
	}
	respondJSON(w, authResponse{Token: token})
}

func (s *Server) handleSubmitLimitOrder(w http.ResponseWriter, r *http.Request) {
	book, ok := s.bookFor(w, r)
	if !ok {
		return
	}

	var req submitLimitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed body", err.Error())
		return
	}
	order, err := req.Order()
	if err != nil {
		respondError(w, http.StatusBadRequest, engine.ErrInvalidOrder.Error(), err.Error())
		return
	}

	stored, err := book.SubmitLimitOrder(order)
	if err != nil {
		respondError(w, http.StatusBadRequest, engine.ErrInvalidOrder.Error(), err.Error())
		return
	}
	respondJSON(w, stored)
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	book, ok := s.bookFor(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["orderId"]
	order, ok := book.CancelOrder(id)
	if !ok {
		respondError(w, http.StatusNotFound, engine.ErrOrderNotFound.Error(), id)
		return
	}
	respondJSON(w, order)
}

func (s *Server) handleOrderBook(w http.ResponseWriter, r *http.Request) {
	book, ok := s.bookFor(w, r)
	if !ok {
		return
	}

	bids, asks := book.Snapshot()
	respondJSON(w, orderBookResponse{Bids: bids, Asks: asks})
}

func (s *Server) handleTradeHistory(w http.ResponseWriter, r *http.Request) {
	book, ok := s.bookFor(w, r)
	if !ok {
		return
	}
	respondJSON(w, book.RecentTrades())
}

// bookFor resolves the pair route variable, answering 404 when the pair is
// not in the registry.
func (s *Server) bookFor(w http.ResponseWriter, r *http.Request) (*engine.OrderBook, bool) {
	pair := mux.Vars(r)["pair"]
	book, ok := s.registry.Book(pair)
	if !ok {
		respondError(w, http.StatusNotFound, engine.ErrUnknownPair.Error(), pair)
		return nil, false
	}
	return book, true
}
