package numparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"1234.56", 1234.56},
		{"0,01", 0.01},
		{"-0,01", -0.01},
		{"-80,25", -80.25},
		{"10", 10},
		{"  120,5 ", 120.5},
		{"1 234,56", 1234.56},
		{"12.34,56", 1234.56},
		{"0.2", 0.2},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Parse(c.in), 1e-9, "Parse(%q)", c.in)
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "12,", "12.", "abc", "1,2,3", "--5"} {
		assert.True(t, math.IsNaN(Parse(in)), "Parse(%q) should be NaN", in)
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.5, Clamp(1.5, 0))
	assert.Equal(t, 0.0, Clamp(math.NaN(), 0))
	assert.Equal(t, 7.0, Clamp(math.Inf(1), 7))
	assert.Equal(t, -3.0, Clamp(-3, 99))
}
