package gsm0502

/*------------------------------------------------------------------
 *
 * Purpose:	Frequency hopping sequence generation.
 *
 * Reference:	3GPP TS 45.002, 6.2.3 Hopping sequence generation, and
 *		Table 14 (RNTABLE).
 *
 * Description:	For every TDMA frame pick the Mobile Allocation Index
 *		(MAI), that is which entry of the mobile allocation the
 *		transceiver tunes to.  Both ends of the link must get the
 *		same answer, so the table and the arithmetic have to match
 *		the standard bit for bit.
 *
 *------------------------------------------------------------------*/

import "math/bits"

// HSN 0 is cyclic hopping, anything else pseudo random.
const MaxHSN = 63

// RNTABLE, 45.002 Table 14.  Indexed by (HSN xor T1R) + T3, at most 63 + 50.
var rntable = [114]uint8{
	48, 98, 63, 1, 36, 95, 78, 102, 94, 73,
	0, 64, 25, 81, 76, 59, 124, 23, 104, 100,
	101, 47, 118, 85, 18, 56, 96, 86, 54, 2,
	80, 34, 127, 13, 6, 89, 57, 103, 12, 74,
	55, 111, 75, 38, 109, 71, 112, 29, 11, 88,
	87, 19, 3, 68, 110, 26, 33, 31, 8, 45,
	82, 58, 40, 107, 32, 5, 106, 92, 62, 67,
	77, 108, 122, 37, 60, 66, 121, 42, 51, 126,
	117, 114, 4, 90, 43, 52, 53, 113, 120, 72,
	16, 49, 7, 79, 119, 61, 22, 84, 9, 97,
	91, 15, 21, 24, 46, 39, 93, 105, 65, 70,
	125, 99, 17, 123,
}

/*------------------------------------------------------------------
 *
 * Name:	HopIndex
 *
 * Purpose:	Compute the MAI for one frame.
 *
 * Inputs:	t	- Frame time, as from FNToGSMTime.
 *
 *		hsn	- Hopping sequence number, 0 .. 63.
 *
 *		maio	- Mobile allocation index offset, less than n.
 *
 *		n	- Number of frequencies in the mobile allocation.
 *
 * Returns:	Index into the mobile allocation, 0 .. n-1.
 *
 * Description:	HSN 0 is cyclic:  MAI = (FN + MAIO) mod N.
 *
 *		Otherwise
 *			M  = T2 + RNTABLE((HSN xor T1R) + T3)
 *			M' = M mod 2^NBIN
 *			T' = T3 mod 2^NBIN
 *			S  = M'                 if M' < N
 *			     (M' + T') mod N    otherwise
 *			MAI = (S + MAIO) mod N
 *
 *		where T1R = T1 mod 64 and NBIN = INTEGER(log2(N) + 1).
 *
 *------------------------------------------------------------------*/

func HopIndex(t GSMTime, hsn uint8, maio uint8, n int) int {
	Assert(n > 0)
	Assert(int(maio) < n)
	Assert(hsn <= MaxHSN)

	if hsn == 0 {
		return int((uint64(t.FN) + uint64(maio)) % uint64(n))
	}

	var t1r = uint8(t.T1 % 64)
	var m = int(t.T2) + int(rntable[int(hsn^t1r)+int(t.T3)])

	// 2^NBIN - 1, NBIN being the bit length of n.
	var mask = 1<<bits.Len(uint(n)) - 1
	var mPrime = m & mask
	var tPrime = int(t.T3) & mask

	var s int
	if mPrime < n {
		s = mPrime
	} else {
		s = (mPrime + tPrime) % n
	}

	return (s + int(maio)) % n
}

// HopSeqGen is HopIndex looked up in the mobile allocation ma, returning the
// ARFCN to use for frame t.  ma is only read.
func HopSeqGen(t GSMTime, hsn uint8, maio uint8, ma []uint16) uint16 {
	return ma[HopIndex(t, hsn, maio, len(ma))]
}
