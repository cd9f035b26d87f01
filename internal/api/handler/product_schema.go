package handler

import (
	"encoding/json"
	"strconv"
	"strings"
)

// priceValue defers price parsing so a non-numeric payload value (e.g. the
// literal "abc") surfaces as a field validation error instead of a bind
// failure. It accepts a JSON number or a numeric string.
type priceValue struct {
	raw json.RawMessage
}

func (p *priceValue) UnmarshalJSON(b []byte) error {
	p.raw = append(p.raw[:0], b...)
	return nil
}

// float64 returns the parsed price. The second return is a validation
// message, empty when the value is a valid non-negative number.
func (p priceValue) float64() (float64, string) {
	s := strings.TrimSpace(string(p.raw))
	if s == "" || s == "null" {
		return 0, "The price field is required."
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(p.raw, &s); err != nil {
			return 0, "The price must be a number."
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, "The price must be a number."
	}
	if f < 0 {
		return 0, "The price must be at least 0."
	}
	return f, ""
}

type productRequest struct {
	Name        string     `json:"name"        validate:"required"`
	Description string     `json:"description"`
	Price       priceValue `json:"price"`
	Stock       int        `json:"stock"       validate:"gte=0"`
	Category    string     `json:"category"`
}
