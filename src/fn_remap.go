package gsm0502

/*------------------------------------------------------------------
 *
 * Purpose:	Frame number remapping for traffic channels sharing one
 *		physical timeslot.
 *
 * Reference:	3GPP TS 45.002, clause 7, Table 1 (TCH/F, TCH/H and
 *		FACCH mapping onto the 26-multiframe).
 *
 * Description:	Within a 26-multiframe frames 0-11 and 13-24 carry
 *		traffic, 12 is SACCH and 25 is idle (SACCH for the second
 *		half rate subchannel).  A full rate channel owns every
 *		traffic frame.  Two half rate subchannels alternate, 0 on
 *		the even positions of each half, 1 on the odd ones.
 *
 *------------------------------------------------------------------*/

// RemapChannel selects the logical channel for RemapFN and BlockStartFN.
type RemapChannel int

const (
	FNRemapTCHF RemapChannel = iota
	FNRemapTCHH0
	FNRemapTCHH1
	FNRemapFACCHF
	FNRemapFACCHH0
	FNRemapFACCHH1

	fnRemapMax
)

var remapChannelName = [fnRemapMax]string{
	FNRemapTCHF:    "TCH/F",
	FNRemapTCHH0:   "TCH/H(0)",
	FNRemapTCHH1:   "TCH/H(1)",
	FNRemapFACCHF:  "FACCH/F",
	FNRemapFACCHH0: "FACCH/H(0)",
	FNRemapFACCHH1: "FACCH/H(1)",
}

func (c RemapChannel) String() string {
	if c < 0 || c >= fnRemapMax {
		return "unknown"
	}
	return remapChannelName[c]
}

// Valid is false for anything outside the enumeration.
func (c RemapChannel) Valid() bool {
	return c >= 0 && c < fnRemapMax
}

// Subchannel returns the half rate subchannel, 0 or 1, and false for a
// full rate channel.
func (c RemapChannel) Subchannel() (int, bool) {
	switch c {
	case FNRemapTCHH0, FNRemapFACCHH0:
		return 0, true
	case FNRemapTCHH1, FNRemapFACCHH1:
		return 1, true
	default:
		return 0, false
	}
}

// Number of traffic bursts one half rate subchannel gets per 26-multiframe.
const halfRateBurstsPerMultiframe = 12

// halfRateBurstsBefore[s][t2] is how many traffic frames of subchannel s
// come before position t2 of the 26-multiframe.
//
// subchannel 0 owns 0 2 4 6 8 10 13 15 17 19 21 23
// subchannel 1 owns 1 3 5 7 9 11 14 16 18 20 22 24
var halfRateBurstsBefore = [2][Multiframe26]uint32{
	{0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12},
	{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12},
}

/*------------------------------------------------------------------
 *
 * Name:	RemapFN
 *
 * Purpose:	Frame number as seen by one logical channel on a shared
 *		physical channel.
 *
 * Inputs:	fn	- Frame number on the physical channel.
 *
 *		channel	- Logical channel.  Anything outside the
 *			  enumeration is a programming error and traps.
 *
 * Returns:	Full rate channels own every frame so fn comes back as is.
 *
 *		For a half rate subchannel, the index of its burst at fn
 *		counted along the subchannel alone.  A frame the subchannel
 *		does not own gives the index of its next burst, so the
 *		result never goes backwards as fn advances (until the
 *		hyperframe wraps) and steps by one per burst.
 *
 *------------------------------------------------------------------*/

func RemapFN(fn uint32, channel RemapChannel) uint32 {
	Assert(channel.Valid())

	var sub, half = channel.Subchannel()
	if !half {
		return fn
	}

	return halfRateBurstsPerMultiframe*(fn/Multiframe26) + halfRateBurstsBefore[sub][fn%Multiframe26]
}

// blockStartOffset[channel][t2] is the distance back from the last burst of
// a block, at position t2 of the 26-multiframe, to its first burst.  Zero
// where no block ends.
//
// TCH/F and FACCH/F interleave over 8 bursts, with a new block every 4.
// TCH/H speech spans 4 bursts of its subchannel, FACCH/H spans 6.
var blockStartOffset = [fnRemapMax][Multiframe26]uint8{
	FNRemapTCHF:    {3: 8, 7: 7, 11: 7, 16: 8, 20: 7, 24: 7},
	FNRemapTCHH0:   {2: 7, 6: 6, 10: 6, 15: 7, 19: 6, 23: 6},
	FNRemapTCHH1:   {3: 7, 7: 6, 11: 6, 16: 7, 20: 6, 24: 6},
	FNRemapFACCHF:  {3: 8, 7: 7, 11: 7, 16: 8, 20: 7, 24: 7},
	FNRemapFACCHH0: {2: 11, 10: 10, 19: 11},
	FNRemapFACCHH1: {3: 11, 11: 10, 20: 11},
}

/*------------------------------------------------------------------
 *
 * Name:	BlockStartFN
 *
 * Purpose:	Given the frame number of the last burst of a block, find
 *		the frame number of its first burst.
 *
 * Description:	A decoder only knows it has a whole block once the last
 *		burst arrives, but the block is identified by where it
 *		started.  fn that does not end a block on this channel is
 *		returned unchanged.
 *
 *------------------------------------------------------------------*/

func BlockStartFN(fn uint32, channel RemapChannel) uint32 {
	Assert(channel.Valid())

	var offset = blockStartOffset[channel][fn%Multiframe26]
	if offset == 0 {
		return fn
	}

	return FNSub(fn, uint32(offset))
}
