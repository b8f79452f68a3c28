package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenSubject  = "gungnir-order-book"
	tokenLifetime = 24 * time.Hour
)

// issueToken mints an HS256 bearer token for the trading routes.
func (s *Server) issueToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// requireToken guards a route behind a bearer token check. The health and
// auth routes stay open; everything touching a book goes through here.
func (s *Server) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			respondError(w, http.StatusUnauthorized, "missing bearer token", "")
			return
		}
		_, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.secret, nil
		})
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid token", err.Error())
			return
		}
		next(w, r)
	}
}
