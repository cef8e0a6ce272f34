package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"42", 0, 42},
		{" 7 ", 0, 7},
		{"", 10, 10},
		{"x", 5, 5},
		{"2.5", 1, 1},
		{"-3", 1, -3},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, AtoiDefault(tc.in, tc.def), "input %q", tc.in)
	}
}

func TestSplitCSV(t *testing.T) {
	require.Nil(t, SplitCSV("  "))
	require.Equal(t, []string{"hi", "bn"}, SplitCSV(" hi, ,bn "))
}

func TestNowUTC(t *testing.T) {
	now := NowUTC()
	require.Equal(t, time.UTC, now.Location())
	require.WithinDuration(t, time.Now(), now, time.Second)
}
