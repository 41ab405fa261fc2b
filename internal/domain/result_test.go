package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncrementResult(t *testing.T) {
	t.Parallel()

	c := &Competitor{Result: 10}

	assert.NoError(t, c.IncrementResult(5))
	assert.Equal(t, 15, c.Result)

	err := c.IncrementResult("abc")
	assert.ErrorIs(t, err, ErrNotAnInteger)
	assert.Equal(t, 15, c.Result)
}

func TestIncrementResult_Coercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points any
		want   int
		ok     bool
	}{
		{"int", 3, 3, true},
		{"negative int", -4, -4, true},
		{"int64", int64(7), 7, true},
		{"uint8", uint8(2), 2, true},
		{"float truncates", 2.9, 2, true},
		{"bool", true, 1, true},
		{"numeric string", "12", 12, true},
		{"padded string", " 8 ", 8, true},
		{"signed string", "-6", -6, true},
		{"leading zero string", "08", 8, true},
		{"bytes", []byte("4"), 4, true},
		{"json number", json.Number("9"), 9, true},
		{"json number truncates", json.Number("5.5"), 5, true},
		{"json number negative fraction", json.Number("-2.7"), -2, true},
		{"json number exponent", json.Number("1e2"), 100, true},
		{"json number leading zero is decimal", json.Number("010"), 10, true},
		{"json number hex", json.Number("0x10"), 0, false},
		{"json number garbage", json.Number("abc"), 0, false},
		{"float64 truncates", 5.5, 5, true},
		{"float32", float32(3.75), 3, true},
		{"NaN", math.NaN(), 0, false},
		{"infinity", math.Inf(1), 0, false},
		{"nil", nil, 0, false},
		{"word", "abc", 0, false},
		{"decimal string", "1.5", 0, false},
		{"empty string", "", 0, false},
		{"struct", struct{}{}, 0, false},
		{"slice", []int{1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Competitor{Result: 100}
			err := c.IncrementResult(tt.points)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrNotAnInteger)
				assert.Equal(t, 100, c.Result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 100+tt.want, c.Result)
		})
	}
}

func TestIncrementResult_SameNumberAnyForm(t *testing.T) {
	t.Parallel()

	forms := []any{5.5, json.Number("5.5"), float32(5.5), 5, "5", json.Number("5")}
	for _, points := range forms {
		c := &Competitor{Result: 10}
		assert.NoError(t, c.IncrementResult(points), "%#v", points)
		assert.Equal(t, 15, c.Result, "%#v", points)
	}
}
