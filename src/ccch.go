package gsm0502

/*------------------------------------------------------------------
 *
 * Purpose:	Find the CCCH block a frame belongs to.
 *
 * Reference:	3GPP TS 45.002, clause 7, Table 5 and Figure 8a
 *		(BCCH + CCCH on timeslot 0 of the 51-multiframe).
 *
 * Description:	The 51-multiframe repeats in 10 frame groups, each with
 *		FCCH and SCH in the first two frames.  After BCCH in frames
 *		2-5 come nine 4 frame CCCH blocks.  Frame 50 is idle.
 *
 *		 0 F   1 S   2- 5 BCCH   6- 9 C0
 *		10 F  11 S  12-15 C1    16-19 C2
 *		20 F  21 S  22-25 C3    26-29 C4
 *		30 F  31 S  32-35 C5    36-39 C6
 *		40 F  41 S  42-45 C7    46-49 C8    50 idle
 *
 *------------------------------------------------------------------*/

// CCCHBlockNone is what FNToCCCHBlock returns for a frame outside any CCCH
// block.  It is not an error, most frames are like that.
const CCCHBlockNone = -1

const CCCHBlocksPer51 = 9

// First frame of each CCCH block within the 51-multiframe.
var ccchBlockFirst = [CCCHBlocksPer51]uint8{6, 12, 16, 22, 26, 32, 36, 42, 46}

const ccchBlockLen = 4

// FNToCCCHBlock returns the CCCH block index, 0 .. 8, for fn, or
// CCCHBlockNone.
func FNToCCCHBlock(fn uint32) int {
	var fn51 = uint8(fn % Multiframe51)

	for i, first := range ccchBlockFirst {
		if fn51 >= first && fn51 < first+ccchBlockLen {
			return i
		}
	}

	return CCCHBlockNone
}

// CCCHBlockFirstFN returns the offset within the 51-multiframe of the first
// frame of CCCH block n.
func CCCHBlockFirstFN(n int) uint32 {
	Assert(n >= 0 && n < CCCHBlocksPer51)

	return uint32(ccchBlockFirst[n])
}
