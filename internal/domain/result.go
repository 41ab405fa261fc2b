package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// IncrementResult adds points to the competitor's result. points may be any
// integer or float type (floats are truncated), a bool, a json.Number or a
// base 10 numeric string. Anything else, including nil, returns
// ErrNotAnInteger and leaves the result unchanged. Negative points decrement.
func (c *Competitor) IncrementResult(points any) error {
	n, err := coerceInt(points)
	if err != nil {
		return err
	}
	c.Result += n
	return nil
}

func coerceInt(v any) (int, error) {
	switch s := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: nil", ErrNotAnInteger)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotAnInteger, s)
		}
		return n, nil
	case []byte:
		return coerceInt(string(s))
	case json.Number:
		return coerceNumber(s)
	case float64:
		return truncate(s)
	case float32:
		return truncate(float64(s))
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotAnInteger, err)
	}
	return n, nil
}

// coerceNumber reads a JSON number in base 10, truncating fractions and
// exponents the same way float values are.
func coerceNumber(num json.Number) (int, error) {
	if n, err := strconv.ParseInt(string(num), 10, strconv.IntSize); err == nil {
		return int(n), nil
	}
	if strings.ContainsAny(string(num), "xXoObB_") {
		return 0, fmt.Errorf("%w: %q", ErrNotAnInteger, num)
	}
	f, err := num.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotAnInteger, num)
	}
	return truncate(f)
}

func truncate(f float64) (int, error) {
	if math.IsNaN(f) || f >= math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("%w: %v", ErrNotAnInteger, f)
	}
	return int(f), nil
}
