package common

import (
	"encoding/json"
	"fmt"
)

// Side is the side of the book an order sits on.
type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	switch s {
	case Bid:
		return "BID"
	case Ask:
		return "ASK"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Opposite returns the side an order matches against.
func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

// ParseSide parses the wire form of a side ("BID" or "ASK").
func ParseSide(raw string) (Side, error) {
	switch raw {
	case "BID":
		return Bid, nil
	case "ASK":
		return Ask, nil
	}
	return 0, fmt.Errorf("unknown side %q", raw)
}

func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Side) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	side, err := ParseSide(raw)
	if err != nil {
		return err
	}
	*s = side
	return nil
}
