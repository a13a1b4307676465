package gsm0502

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNPagBlocks(t *testing.T) {
	assert.Equal(t, 3, NPagBlocks(ControlChannelDescr{CCCHConf: CCCHConf1C}))
	assert.Equal(t, 2, NPagBlocks(ControlChannelDescr{CCCHConf: CCCHConf1C, BsAgBlksRes: 1}))
	assert.Equal(t, 9, NPagBlocks(ControlChannelDescr{CCCHConf: CCCHConf1NC}))
	assert.Equal(t, 7, NPagBlocks(ControlChannelDescr{CCCHConf: CCCHConf4NC, BsAgBlksRes: 2}))
}

func TestBsCcChans(t *testing.T) {
	var tests = map[CCCHConf]int{
		CCCHConf1NC: 1,
		CCCHConf1C:  1,
		CCCHConf2NC: 2,
		CCCHConf3NC: 3,
		CCCHConf4NC: 4,
		CCCHConf(3): 0,
		CCCHConf(7): 0,
	}

	for conf, want := range tests {
		assert.Equal(t, want, BsCcChans(conf), "%s", conf)
	}
}

func TestNumPagingSubchannels(t *testing.T) {
	assert.Equal(t, 18, NumPagingSubchannels(ControlChannelDescr{CCCHConf: CCCHConf1NC}))
	assert.Equal(t, 27, NumPagingSubchannels(ControlChannelDescr{CCCHConf: CCCHConf1C, BsPaMfrms: 7}))
}

func TestPagingGroupExample(t *testing.T) {
	// 262420123456789 mod 1000 = 789
	var imsi uint64 = 262420123456789
	var d = ControlChannelDescr{CCCHConf: CCCHConf2NC, BsAgBlksRes: 1}

	// 789 mod (2 * 8) = 5
	assert.Equal(t, 0, CCCHGroup(imsi, 2, 8))
	assert.Equal(t, 5, PagingGroup(imsi, 2, 8))
	assert.Equal(t, 5, CalcPagingGroup(d, imsi))

	// 789 mod (4 * 8) = 21
	assert.Equal(t, 2, CCCHGroup(imsi, 4, 8))
	assert.Equal(t, 5, CalcPagingGroupWith(d, imsi, 4))
}

func TestPagingGroupCoverage(t *testing.T) {
	var descrs = []ControlChannelDescr{
		{CCCHConf: CCCHConf1C},
		{CCCHConf: CCCHConf1C, BsAgBlksRes: 2},
		{CCCHConf: CCCHConf1NC},
		{CCCHConf: CCCHConf2NC, BsAgBlksRes: 3},
		{CCCHConf: CCCHConf3NC, BsAgBlksRes: 1},
		{CCCHConf: CCCHConf4NC, BsAgBlksRes: 7},
	}

	for _, d := range descrs {
		var bsCcChans = BsCcChans(d.CCCHConf)
		var nPag = NPagBlocks(d)

		type pair struct{ ccch, pag int }
		var counts = map[pair]int{}

		for imsi := range uint64(1000) {
			var p = pair{CCCHGroup(imsi, bsCcChans, nPag), PagingGroup(imsi, bsCcChans, nPag)}
			assert.Equal(t, p.pag, CalcPagingGroup(d, imsi))
			counts[p]++
		}

		assert.Len(t, counts, bsCcChans*nPag, "%+v", d)

		var lo, hi = 1000, 0
		for _, c := range counts {
			lo = min(lo, c)
			hi = max(hi, c)
		}
		assert.LessOrEqual(t, hi-lo, 1, "%+v", d)
	}
}

func TestPagingGroupIgnoresThousands(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var imsi = rapid.Uint64Range(0, 999999999999999).Draw(t, "imsi")
		var bsCcChans = rapid.IntRange(1, 4).Draw(t, "bs_cc_chans")
		var nPag = rapid.IntRange(1, 9).Draw(t, "n_pag_blocks")

		var g = PagingGroup(imsi, bsCcChans, nPag)
		assert.Equal(t, g, PagingGroup(imsi+1000, bsCcChans, nPag))
		assert.Equal(t, CCCHGroup(imsi, bsCcChans, nPag), CCCHGroup(imsi+1000, bsCcChans, nPag))
		assert.GreaterOrEqual(t, g, 0)
		assert.Less(t, g, nPag)
		assert.Less(t, CCCHGroup(imsi, bsCcChans, nPag), bsCcChans)
	})
}

func TestPagingGroupZeroTraps(t *testing.T) {
	assert.Panics(t, func() { PagingGroup(1, 0, 9) })
	assert.Panics(t, func() { CCCHGroup(1, 1, 0) })
	assert.Panics(t, func() { CalcPagingGroup(ControlChannelDescr{CCCHConf: CCCHConf(5)}, 1) })
}
