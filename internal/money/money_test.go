package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCents(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"1.0", 100},
		{"0.23", 23},
		{"12.01", 1201},
		{"-12.01", -1201},
		{"-0.01", -1},
		{"12", 1200},
		{"-12", -1200},
		{".2", 20},
		{"-.02", -2},
		{"2", 200},
		{"-2", -200},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, exact := ParseCents(tc.input)
			assert.Equal(t, tc.want, got)
			assert.True(t, exact)
		})
	}
}

func TestParseCents_Idempotent(t *testing.T) {
	first, _ := ParseCents("-12.01")
	second, _ := ParseCents("-12.01")
	assert.Equal(t, first, second)
}

func TestParseCents_FractionalPadding(t *testing.T) {
	short, _ := ParseCents(".2")
	padded, _ := ParseCents(".20")
	assert.Equal(t, padded, short)
}

func TestParseCents_NegativeSignOnlyWholePart(t *testing.T) {
	got, exact := ParseCents("-.02")
	assert.Equal(t, int64(-2), got)
	assert.True(t, exact)
}

func TestParseCents_MalformedSegmentsDegradeToZero(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"abc", 0},
		{"abc.12", 12},
		{"12.xy", 1200},
		{"1.2.3", 0},
		{"$4.00", 0},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, exact := ParseCents(tc.input)
			assert.Equal(t, tc.want, got)
			assert.False(t, exact)
		})
	}
}

func TestParseCents_LongFractionCombinesPositionally(t *testing.T) {
	// No truncation happens; the fraction is added at face value.
	got, exact := ParseCents("1.234")
	assert.Equal(t, int64(334), got)
	assert.True(t, exact)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "12.01", FormatCents(1201))
	assert.Equal(t, "-12.01", FormatCents(-1201))
	assert.Equal(t, "-0.01", FormatCents(-1))
	assert.Equal(t, "3500.00", FormatCents(350000))
}
