package urlgen

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeOf(from, to string) Placeholder {
	raw := "[" + from + "-" + to + "]"
	return Placeholder{End: len(raw), Raw: raw, Kind: KindRange, From: from, To: to}
}

func alternationOf(raw string) Placeholder {
	return Placeholder{End: len(raw), Raw: raw, Kind: KindAlternation}
}

func TestOptions_Alternation(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "two segments", raw: "{one|two}", expected: []string{"one", "two"}},
		{name: "single segment", raw: "{only}", expected: []string{"only"}},
		{name: "empty middle segment", raw: "{a||b}", expected: []string{"a", "", "b"}},
		{name: "leading and trailing separators", raw: "{|x|}", expected: []string{"", "x", ""}},
		{name: "only separator", raw: "{|}", expected: []string{"", ""}},
		{name: "whitespace kept", raw: "{ a | b }", expected: []string{" a ", " b "}},
		{name: "brackets are literal", raw: "{[1-2]}", expected: []string{"[1-2]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := alternationOf(tt.raw).Options()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestOptions_Range(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected []string
	}{
		{name: "simple", from: "1", to: "3", expected: []string{"1", "2", "3"}},
		{name: "single value", from: "7", to: "7", expected: []string{"7"}},
		{name: "crosses width unpadded", from: "8", to: "11", expected: []string{"8", "9", "10", "11"}},
		{name: "zero start is not padded", from: "0", to: "3", expected: []string{"0", "1", "2", "3"}},
		{name: "padded", from: "007", to: "010", expected: []string{"007", "008", "009", "010"}},
		{name: "padded values wider than from are not truncated", from: "08", to: "101",
			expected: append([]string{"08", "09"}, seq(10, 101)...)},
		{name: "upper bound width does not matter", from: "1", to: "003", expected: []string{"1", "2", "3"}},
		{name: "all zeros lower bound pads", from: "00", to: "02", expected: []string{"00", "01", "02"}},
		{name: "descending is empty", from: "5", to: "3", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := rangeOf(tt.from, tt.to).Options()
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Empty(t, opts)
				return
			}
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestOptions_RangePadding(t *testing.T) {
	t.Run("[01-12] pads to width 2", func(t *testing.T) {
		opts, err := rangeOf("01", "12").Options()
		require.NoError(t, err)
		require.Len(t, opts, 12)
		for i, o := range opts {
			assert.Len(t, o, 2)
			assert.Equal(t, i+1, mustAtoi(t, o))
		}
		assert.Equal(t, "01", opts[0])
		assert.Equal(t, "12", opts[11])
	})

	t.Run("[0-12] is unpadded", func(t *testing.T) {
		opts, err := rangeOf("0", "12").Options()
		require.NoError(t, err)
		assert.Equal(t, seq(0, 12), opts)
	})
}

func TestOptions_RangeBounds(t *testing.T) {
	t.Run("bound wider than 64 bits", func(t *testing.T) {
		_, err := rangeOf("1", "99999999999999999999").Options()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRangeBounds))

		var rangeErr *RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "99999999999999999999", rangeErr.Bound)
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("reversed range with wide lower bound is empty", func(t *testing.T) {
		opts, err := rangeOf("99999999999999999999", "1").Options()
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("reversed range with both bounds wide is empty", func(t *testing.T) {
		opts, err := rangeOf("99999999999999999999", "099999999999999999998").Options()
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("wide bounds in order still fail", func(t *testing.T) {
		_, err := rangeOf("00000000000000000000001", "99999999999999999999").Options()
		assert.ErrorIs(t, err, ErrRangeBounds)
	})

	t.Run("top of uint64 terminates", func(t *testing.T) {
		top := strconv.FormatUint(math.MaxUint64, 10)
		prev := strconv.FormatUint(math.MaxUint64-1, 10)
		opts, err := rangeOf(prev, top).Options()
		require.NoError(t, err)
		assert.Equal(t, []string{prev, top}, opts)
	})
}

func TestOptions_ShortAlternationIsInvariantError(t *testing.T) {
	_, err := Placeholder{Raw: "{", Kind: KindAlternation}.Options()
	assert.ErrorIs(t, err, ErrInternalInvariant)
}

func TestOptionCount(t *testing.T) {
	tests := []struct {
		p        Placeholder
		expected uint64
	}{
		{p: alternationOf("{a|b|c}"), expected: 3},
		{p: alternationOf("{a||}"), expected: 3},
		{p: alternationOf("{x}"), expected: 1},
		{p: rangeOf("1", "10"), expected: 10},
		{p: rangeOf("01", "12"), expected: 12},
		{p: rangeOf("5", "3"), expected: 0},
		{p: rangeOf("99999999999999999999", "1"), expected: 0},
		{p: rangeOf("0", strconv.FormatUint(math.MaxUint64, 10)), expected: math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.p.Raw, func(t *testing.T) {
			n, err := tt.p.optionCount()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestCompareDecimal(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{a: "1", b: "2", expected: -1},
		{a: "10", b: "9", expected: 1},
		{a: "007", b: "7", expected: 0},
		{a: "0", b: "00", expected: 0},
		{a: "99999999999999999999", b: "1", expected: 1},
		{a: "0123", b: "124", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, compareDecimal(tt.a, tt.b))
		})
	}
}

func seq(from, to int) []string {
	var out []string
	for i := from; i <= to; i++ {
		out = append(out, strconv.Itoa(i))
	}
	return out
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}
