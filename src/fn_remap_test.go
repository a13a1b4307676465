package gsm0502

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Recomputes which traffic frames a half rate subchannel owns, straight from
// the multiframe layout, to check the table.
func ownsHalfRate(sub int, t2 int) bool {
	switch {
	case t2 < 12:
		return t2%2 == sub
	case t2 >= 13 && t2 <= 24:
		return (t2-13)%2 == sub
	default:
		return false
	}
}

func TestHalfRateTable(t *testing.T) {
	for sub := range 2 {
		var n uint32
		for t2 := range Multiframe26 {
			assert.Equal(t, n, halfRateBurstsBefore[sub][t2], "sub %d t2 %d", sub, t2)
			if ownsHalfRate(sub, t2) {
				n++
			}
		}
		assert.Equal(t, uint32(halfRateBurstsPerMultiframe), n)
	}
}

func TestRemapFNFullRateIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var fn = drawFN(t, "fn")

		assert.Equal(t, fn, RemapFN(fn, FNRemapTCHF))
		assert.Equal(t, fn, RemapFN(fn, FNRemapFACCHF))
	})
}

func TestRemapFNHalfRateSequence(t *testing.T) {
	for _, ch := range []RemapChannel{FNRemapTCHH0, FNRemapTCHH1, FNRemapFACCHH0, FNRemapFACCHH1} {
		var sub, ok = ch.Subchannel()
		require.True(t, ok)

		var prev = RemapFN(0, ch)
		var bursts uint32
		for fn := uint32(1); fn < 3*Superframe; fn++ {
			var cur = RemapFN(fn, ch)
			assert.GreaterOrEqual(t, cur, prev, "%s fn %d", ch, fn)
			assert.LessOrEqual(t, cur-prev, uint32(1), "%s fn %d", ch, fn)
			prev = cur
		}

		// Owned frames are numbered 0, 1, 2, ... with no gaps.
		for fn := range uint32(3 * Superframe) {
			if ownsHalfRate(sub, int(fn%Multiframe26)) {
				assert.Equal(t, bursts, RemapFN(fn, ch), "%s fn %d", ch, fn)
				bursts++
			}
		}
	}
}

func TestRemapFNSubchannelsDiffer(t *testing.T) {
	var differ int
	for fn := range uint32(Multiframe26) {
		if RemapFN(fn, FNRemapTCHH0) != RemapFN(fn, FNRemapTCHH1) {
			differ++
		}
	}
	assert.Positive(t, differ)

	// Traffic and FACCH on the same subchannel see the same numbering.
	rapid.Check(t, func(t *rapid.T) {
		var fn = drawFN(t, "fn")
		assert.Equal(t, RemapFN(fn, FNRemapTCHH0), RemapFN(fn, FNRemapFACCHH0))
		assert.Equal(t, RemapFN(fn, FNRemapTCHH1), RemapFN(fn, FNRemapFACCHH1))
	})
}

func TestRemapFNDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var fn = drawFN(t, "fn")
		var ch = RemapChannel(rapid.IntRange(0, int(fnRemapMax)-1).Draw(t, "channel"))

		assert.Equal(t, RemapFN(fn, ch), RemapFN(fn, ch))
	})
}

func TestRemapFNInvalidChannel(t *testing.T) {
	assert.Panics(t, func() { RemapFN(0, fnRemapMax) })
	assert.Panics(t, func() { BlockStartFN(0, RemapChannel(-1)) })
	assert.Equal(t, "unknown", RemapChannel(99).String())
}

func TestBlockStartFN(t *testing.T) {
	var tests = []struct {
		channel RemapChannel
		last    uint32
		first   uint32
	}{
		{FNRemapTCHF, 7, 0},
		{FNRemapTCHF, 11, 4},
		{FNRemapTCHF, 16, 8},
		{FNRemapTCHF, 26 + 3, 21},
		{FNRemapFACCHF, 20, 13},
		{FNRemapTCHH0, 6, 0},
		{FNRemapTCHH0, 15, 8},
		{FNRemapTCHH0, 26 + 2, 21},
		{FNRemapTCHH1, 7, 1},
		{FNRemapTCHH1, 16, 9},
		{FNRemapFACCHH0, 10, 0},
		{FNRemapFACCHH0, 19, 8},
		{FNRemapFACCHH1, 26 + 3, 18},
		{FNRemapFACCHH1, 11, 1},
		// Wraps at the hyperframe.
		{FNRemapTCHF, 3, Hyperframe - 5},
		// Not the end of a block.
		{FNRemapTCHF, 12, 12},
		{FNRemapTCHH0, 7, 7},
	}

	for _, test := range tests {
		assert.Equal(t, test.first, BlockStartFN(test.last, test.channel), "%s %d", test.channel, test.last)
	}
}

func TestBlockStartOnOwnFrames(t *testing.T) {
	// Both ends of every half rate block fall on frames of its own subchannel.
	for _, ch := range []RemapChannel{FNRemapTCHH0, FNRemapTCHH1, FNRemapFACCHH0, FNRemapFACCHH1} {
		var sub, _ = ch.Subchannel()
		for t2 := range uint32(Multiframe26) {
			var last = Multiframe26 + t2
			var first = BlockStartFN(last, ch)
			if first == last {
				continue
			}
			assert.True(t, ownsHalfRate(sub, int(last%Multiframe26)), "%s last %d", ch, t2)
			assert.True(t, ownsHalfRate(sub, int(first%Multiframe26)), "%s first of %d", ch, t2)
		}
	}
}
