package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atmsim/internal/utils"
)

func TestFormatFromCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{150_00, "150.00"},
		{1_500_50, "1,500.50"},
		{50_000_00, "50,000.00"},
		{200_000_00, "200,000.00"},
		{1_234_567_89, "1,234,567.89"},
		{-1_500_50, "-1,500.50"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, utils.FormatFromCents(tc.cents))
	}
}

func TestParseToCents(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"150", 150_00},
		{"150.5", 150_50},
		{"150.50", 150_50},
		{"1,500", 1_500_00},
		{" 50,000.00 ", 50_000_00},
		{".25", 25},
		{"-5.50", -5_50},
	}

	for _, tc := range cases {
		got, err := utils.ParseToCents(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestParseToCents_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3", "150.505", "12abc", "5.x", "5.-5"} {
		_, err := utils.ParseToCents(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 99, 150_00, 50_000_00, 1_234_567_89, -1_500_50} {
		got, err := utils.ParseToCents(utils.FormatFromCents(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, got)
	}
}
