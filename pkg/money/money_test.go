package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
		wantErr  bool
	}{
		{name: "plain", in: "1234.5", expected: "1234.5"},
		{name: "empty is zero", in: "", expected: "0"},
		{name: "whitespace is zero", in: "   ", expected: "0"},
		{name: "thousands separators", in: "1,234,567.89", expected: "1234567.89"},
		{name: "negative", in: "-42", expected: "-42"},
		{name: "garbage", in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "0", expected: "0.00"},
		{in: "1234.5", expected: "1,234.50"},
		{in: "1234567.891", expected: "1,234,567.89"},
		{in: "-1200", expected: "-1,200.00"},
		{in: "999", expected: "999.00"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, Format(d))
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+100.00", FormatSigned(decimal.NewFromInt(100)))
	assert.Equal(t, "-100.00", FormatSigned(decimal.NewFromInt(-100)))
	assert.Equal(t, "0.00", FormatSigned(decimal.Zero))
}

func TestRound(t *testing.T) {
	d, _ := decimal.NewFromString("10.005")
	assert.Equal(t, "10.00", Round(d).StringFixed(2))

	d, _ = decimal.NewFromString("10.015")
	assert.Equal(t, "10.02", Round(d).StringFixed(2))
}
