// Package gsm0502 holds the GSM air interface timing and frequency hopping
// primitives of 3GPP TS 45.002 (formerly GSM 05.02).
//
// Everything here is a pure function of its arguments.  Nothing keeps state
// between calls, so any function may be used from any number of goroutines.
package gsm0502

/*------------------------------------------------------------------
 *
 * Purpose:	TDMA frame number constants and modular arithmetic.
 *
 * Reference:	3GPP TS 45.002, 4.3.3 TDMA frame number.
 *
 * Description:	The frame number counts up once per burst period and
 *		wraps at the hyperframe boundary.  Callers pass in values
 *		already reduced modulo Hyperframe; nothing here checks.
 *
 *------------------------------------------------------------------*/

import "time"

const (
	FNDurationNs = 4615384 // in 1e-9 seconds (approx)
	FNDurationUs = 4615    // in 1e-6 seconds (approx)

	FNDuration = time.Duration(FNDurationNs) * time.Nanosecond
)

const (
	Multiframe26 = 26
	Multiframe51 = 51

	Superframe = Multiframe26 * Multiframe51
	Hyperframe = 2048 * Superframe
)

// FNSum returns the sum of two frame numbers.
func FNSum(a, b uint32) uint32 {
	return (a + b) % Hyperframe
}

// FNSub returns a - b.
func FNSub(a, b uint32) uint32 {
	return (a + Hyperframe - b) % Hyperframe
}

// FNDiff returns the shortest circular distance between a and b.
// The result is never more than Hyperframe / 2.
func FNDiff(a, b uint32) uint32 {
	return min(FNSub(a, b), FNSub(b, a))
}

// FNInc is like ++fn.
func FNInc(fn uint32) uint32 {
	return FNSum(fn, 1)
}

// FNDec is like --fn.
func FNDec(fn uint32) uint32 {
	return FNSub(fn, 1)
}

// GSMTime is a frame number split into the counters of 45.002 4.3.3.
type GSMTime struct {
	FN uint32 // 0 .. Hyperframe-1
	T1 uint16 // superframe count, 0 .. 2047
	T2 uint8  // position in the 26-multiframe
	T3 uint8  // position in the 51-multiframe
	TC uint8  // (FN / 51) mod 8, the BCCH block cycle
}

/*------------------------------------------------------------------
 *
 * Name:	FNToGSMTime
 *
 * Purpose:	Decompose a frame number into T1, T2, T3 and TC.
 *
 * Inputs:	fn	- Frame number, already reduced mod Hyperframe.
 *
 *------------------------------------------------------------------*/

func FNToGSMTime(fn uint32) GSMTime {
	return GSMTime{
		FN: fn,
		T1: uint16(fn / Superframe),
		T2: uint8(fn % Multiframe26),
		T3: uint8(fn % Multiframe51),
		TC: uint8((fn / Multiframe51) % 8),
	}
}

/*------------------------------------------------------------------
 *
 * Name:	GSMTimeToFN
 *
 * Purpose:	Rebuild a frame number from its T1, T2 and T3 counters.
 *
 * Description:	45.002 3.3.2.2.1.  T2 and T3 alone do not identify a
 *		position in the superframe; the difference (T3 - T2) mod 26
 *		tells how many 51-multiframes have gone by.
 *
 *------------------------------------------------------------------*/

func GSMTimeToFN(t1 uint16, t2 uint8, t3 uint8) uint32 {
	var t = (int(t3) - int(t2)) % Multiframe26
	if t < 0 {
		t += Multiframe26
	}

	return uint32(Multiframe51*t+int(t3)) + Superframe*uint32(t1)
}
