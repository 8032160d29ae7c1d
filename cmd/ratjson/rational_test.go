package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peadar/jsondent"
)

func TestParseRational(t *testing.T) {
	for _, test := range []struct {
		in  string
		exp rational
	}{
		{"1/2", rational{1, 2}},
		{"2/4", rational{1, 2}},   // reduced
		{"3/-6", rational{-1, 2}}, // denominator kept positive
		{"-4/2", rational{-2, 1}},
		{"0/5", rational{0, 1}}, // zero reduces fully
	} {
		got, err := parseRational(test.in)
		require.NoError(t, err, "input %q", test.in)
		require.Equal(t, test.exp, got, "input %q", test.in)
	}

	for _, bad := range []string{"", "1", "1/0", "x/2", "1/y"} {
		_, err := parseRational(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestRationalArithmetic(t *testing.T) {
	half := rational{1, 2}
	third := rational{1, 3}
	require.Equal(t, rational{5, 6}, half.add(third))
	require.Equal(t, rational{1, 6}, half.sub(third))
	require.Equal(t, rational{1, 6}, half.mul(third))
	require.Equal(t, rational{3, 2}, half.quo(third))
}

func TestRationalJSON(t *testing.T) {
	got, err := jsondent.Print(rational{-2, 3}.value(), nil)
	require.NoError(t, err)
	require.Equal(t, `{"numerator":-2,"denominator":3}`, got)
}
