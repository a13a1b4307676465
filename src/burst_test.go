package gsm0502

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurstLayoutFits(t *testing.T) {
	for _, b := range BurstLayouts {
		t.Run(b.Kind.String()+"/"+b.Modulation.String(), func(t *testing.T) {
			assert.LessOrEqual(t, b.UsedBits(), b.Burst)
		})
	}
}

func TestBurstLayoutExactFill(t *testing.T) {
	// Everything but the access burst fills the full 148 bit burst.
	for _, kind := range []BurstKind{BurstNormal, BurstSync, BurstDummy} {
		var b, ok = LookupBurst(kind, ModGMSK)
		require.True(t, ok)
		assert.Equal(t, 148, b.UsedBits(), "%s", kind)
	}

	var ab, ok = LookupBurst(BurstAccess, ModGMSK)
	require.True(t, ok)
	assert.Equal(t, 88, ab.UsedBits())
}

func TestBurst8PSKScaling(t *testing.T) {
	for _, b := range BurstLayouts {
		if b.Modulation != Mod8PSK {
			continue
		}

		var g, ok = LookupBurst(b.Kind, ModGMSK)
		require.True(t, ok, "8-PSK %s without a GMSK layout", b.Kind)

		assert.Equal(t, 3*g.Tail, b.Tail)
		assert.Equal(t, 3*g.ExtTail, b.ExtTail)
		assert.Equal(t, 3*g.Payload, b.Payload)
		assert.Equal(t, 3*g.TrainSeq, b.TrainSeq)
		assert.Equal(t, 3*g.Burst, b.Burst)
		assert.Equal(t, 3*g.UsedBits(), b.UsedBits())
	}
}

func TestBurstConstants(t *testing.T) {
	assert.Equal(t, 116, NBitsNBGMSKPayload)
	assert.Equal(t, 444, NBitsNB8PSKBurst)
	assert.Equal(t, 78, NBitsSBGMSKPayload)
	assert.Equal(t, NBitsNBGMSKBurst, NBitsABGMSKBurst)
}

func TestLookupBurstMissing(t *testing.T) {
	var _, ok = LookupBurst(BurstAccess, Mod8PSK)
	assert.False(t, ok)
	assert.Equal(t, "unknown", BurstKind(42).String())
}
