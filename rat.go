package jsonschemer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goccy/go-json"
)

// Rat wraps a big.Rat so every numeric keyword compares exactly, regardless
// of how the instance number reached the engine.
type Rat struct {
	*big.Rat
}

// convertToBigRat converts various types to big.Rat.
func convertToBigRat(data any) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case json.Number:
		str = string(v)
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedRatType
	}

	numRat := new(big.Rat)
	if _, ok := numRat.SetString(str); !ok {
		return nil, ErrUnsupportedRatType
	}
	return numRat, nil
}

// NewRat creates a new Rat instance from a given value, or nil if the value
// cannot be converted. Go numbers, json.Number and strings holding a number
// all convert.
func NewRat(value any) *Rat {
	converted, err := convertToBigRat(value)
	if err != nil {
		return nil
	}
	return &Rat{converted}
}

// FormatRat formats a Rat as a string.
func FormatRat(r *Rat) string {
	if r == nil {
		return "null"
	}

	if r.IsInt() {
		return r.Num().String()
	}

	// Format as a decimal maintaining precision
	dec := r.FloatString(10)

	trimmedDec := strings.TrimRight(dec, "0")
	trimmedDec = strings.TrimRight(trimmedDec, ".")

	if trimmedDec == "" {
		return "0"
	}

	return trimmedDec
}
