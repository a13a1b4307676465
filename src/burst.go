package gsm0502

/*------------------------------------------------------------------
 *
 * Purpose:	Bit layout of the four burst types.
 *
 * Reference:	3GPP TS 45.002, 5.2.3 - 5.2.7.
 *
 * Description:	All counts are in bits and leave out the guard period.
 *		8-PSK carries 3 bits per symbol so each field is 3 times
 *		the GMSK one.  Only the normal burst exists in 8-PSK.
 *
 *------------------------------------------------------------------*/

// 5.2.3.1 Normal burst for GMSK (1 bit per symbol)
const (
	NBitsNBGMSKTail     = 3
	NBitsNBGMSKPayload  = 2 * 58
	NBitsNBGMSKTrainSeq = 26
	NBitsNBGMSKBurst    = 148
)

// 5.2.3.3 Normal burst for 8-PSK (3 bits per symbol)
const (
	NBits8PSKFactor = 3

	NBitsNB8PSKTail     = NBitsNBGMSKTail * NBits8PSKFactor
	NBitsNB8PSKPayload  = NBitsNBGMSKPayload * NBits8PSKFactor
	NBitsNB8PSKTrainSeq = NBitsNBGMSKTrainSeq * NBits8PSKFactor
	NBitsNB8PSKBurst    = NBitsNBGMSKBurst * NBits8PSKFactor
)

// 5.2.5 Synchronization burst (also GMSK)
const (
	NBitsSBGMSKTail      = NBitsNBGMSKTail
	NBitsSBGMSKPayload   = 2 * 39
	NBitsSBGMSKETrainSeq = 64
	NBitsSBGMSKBurst     = NBitsNBGMSKBurst
)

// 5.2.6 Dummy burst (also GMSK)
const (
	NBitsDBGMSKTail  = NBitsNBGMSKTail
	NBitsDBGMSKMixed = 142
	NBitsDBGMSKBurst = NBitsNBGMSKBurst
)

// 5.2.7 Access burst (also GMSK)
const (
	NBitsABGMSKETail    = 8
	NBitsABGMSKSynchSeq = 41
	NBitsABGMSKPayload  = 36
	NBitsABGMSKTail     = NBitsNBGMSKTail
	NBitsABGMSKBurst    = NBitsNBGMSKBurst
)

type BurstKind int

const (
	BurstNormal BurstKind = iota
	BurstSync
	BurstDummy
	BurstAccess
)

var burstKindName = [...]string{
	BurstNormal: "normal",
	BurstSync:   "synchronization",
	BurstDummy:  "dummy",
	BurstAccess: "access",
}

func (k BurstKind) String() string {
	if k < 0 || int(k) >= len(burstKindName) {
		return "unknown"
	}
	return burstKindName[k]
}

type Modulation int

const (
	ModGMSK Modulation = iota
	Mod8PSK
)

func (m Modulation) String() string {
	switch m {
	case ModGMSK:
		return "GMSK"
	case Mod8PSK:
		return "8-PSK"
	default:
		return "unknown"
	}
}

// BurstLayout describes one burst kind for one modulation.
//
// Tail is the tail field at each end.  The access burst is the odd one out,
// with a long tail (ExtTail) in front and a normal one behind.  Payload is
// the data field (the mixed bits for a dummy burst) and TrainSeq the
// training or synchronization sequence.
type BurstLayout struct {
	Kind       BurstKind
	Modulation Modulation
	Tail       int
	ExtTail    int
	Payload    int
	TrainSeq   int
	Burst      int
}

// UsedBits is the number of bits laid out in the burst.  The rest, if any,
// belongs to the extended guard period of the access burst.
func (b BurstLayout) UsedBits() int {
	if b.ExtTail > 0 {
		return b.ExtTail + b.TrainSeq + b.Payload + b.Tail
	}

	return 2*b.Tail + b.TrainSeq + b.Payload
}

var BurstLayouts = [...]BurstLayout{
	{
		Kind:       BurstNormal,
		Modulation: ModGMSK,
		Tail:       NBitsNBGMSKTail,
		Payload:    NBitsNBGMSKPayload,
		TrainSeq:   NBitsNBGMSKTrainSeq,
		Burst:      NBitsNBGMSKBurst,
	},
	{
		Kind:       BurstNormal,
		Modulation: Mod8PSK,
		Tail:       NBitsNB8PSKTail,
		Payload:    NBitsNB8PSKPayload,
		TrainSeq:   NBitsNB8PSKTrainSeq,
		Burst:      NBitsNB8PSKBurst,
	},
	{
		Kind:       BurstSync,
		Modulation: ModGMSK,
		Tail:       NBitsSBGMSKTail,
		Payload:    NBitsSBGMSKPayload,
		TrainSeq:   NBitsSBGMSKETrainSeq,
		Burst:      NBitsSBGMSKBurst,
	},
	{
		Kind:       BurstDummy,
		Modulation: ModGMSK,
		Tail:       NBitsDBGMSKTail,
		Payload:    NBitsDBGMSKMixed,
		Burst:      NBitsDBGMSKBurst,
	},
	{
		Kind:       BurstAccess,
		Modulation: ModGMSK,
		Tail:       NBitsABGMSKTail,
		ExtTail:    NBitsABGMSKETail,
		Payload:    NBitsABGMSKPayload,
		TrainSeq:   NBitsABGMSKSynchSeq,
		Burst:      NBitsABGMSKBurst,
	},
}

// LookupBurst returns the layout for kind in modulation mod.  There is no
// 8-PSK layout for anything but the normal burst.
func LookupBurst(kind BurstKind, mod Modulation) (BurstLayout, bool) {
	for _, b := range BurstLayouts {
		if b.Kind == kind && b.Modulation == mod {
			return b, true
		}
	}

	return BurstLayout{}, false //nolint:exhaustruct
}
