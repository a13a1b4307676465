package gsm0502

/*------------------------------------------------------------------
 *
 * Purpose:	Work out which paging block a mobile has to listen to.
 *
 * Reference:	3GPP TS 45.002, 6.5.2 and Table 5 of clause 7.
 *		3GPP TS 48.058, 9.3.6 for the CCCH_CONF coding.
 *
 * Description:	The IMSI (only its value mod 1000 matters) picks one of
 *		BS_CC_CHANS CCCH timeslots and one paging block on it.
 *
 *------------------------------------------------------------------*/

// CCCHConf is the CCCH_CONF field of the control channel description.
type CCCHConf uint8

const (
	CCCHConf1NC CCCHConf = 0x00 // one basic physical channel, not combined with SDCCHs
	CCCHConf1C  CCCHConf = 0x01 // one basic physical channel, combined with SDCCHs
	CCCHConf2NC CCCHConf = 0x02
	CCCHConf3NC CCCHConf = 0x04
	CCCHConf4NC CCCHConf = 0x06
)

func (c CCCHConf) String() string {
	switch c {
	case CCCHConf1NC:
		return "1_NC"
	case CCCHConf1C:
		return "1_C"
	case CCCHConf2NC:
		return "2_NC"
	case CCCHConf3NC:
		return "3_NC"
	case CCCHConf4NC:
		return "4_NC"
	default:
		return "unknown"
	}
}

// ControlChannelDescr carries the parts of the Control Channel Description
// (3GPP TS 44.018, 10.5.2.11) that paging depends on.
type ControlChannelDescr struct {
	CCCHConf    CCCHConf
	BsAgBlksRes uint8 // blocks reserved for access grant, 0..7
	BsPaMfrms   uint8 // coded: 0 means 2 multiframes, up to 7 meaning 9
}

// BsCcChans returns the number of basic physical channels supporting a CCCH
// for a CCCH_CONF value, or 0 if conf is not a valid coding.
func BsCcChans(conf CCCHConf) int {
	switch conf {
	case CCCHConf1NC, CCCHConf1C:
		return 1
	case CCCHConf2NC:
		return 2
	case CCCHConf3NC:
		return 3
	case CCCHConf4NC:
		return 4
	default:
		return 0
	}
}

/*------------------------------------------------------------------
 *
 * Name:	NPagBlocks
 *
 * Purpose:	Number of paging blocks in one 51-multiframe on one CCCH.
 *
 * Description:	Table 5 of clause 7.  A combined CCCH has 3 blocks, a
 *		non-combined one has 9, less those reserved for AGCH.
 *		BsAgBlksRes too large for the configuration is a broken
 *		cell setup and is not caught here.
 *
 *------------------------------------------------------------------*/

func NPagBlocks(d ControlChannelDescr) int {
	if d.CCCHConf == CCCHConf1C {
		return 3 - int(d.BsAgBlksRes)
	}

	return 9 - int(d.BsAgBlksRes)
}

// NumPagingSubchannels is N of 6.5.2: paging blocks per 51-multiframe times
// the number of multiframes between transmissions of paging messages.
func NumPagingSubchannels(d ControlChannelDescr) int {
	return max(1, NPagBlocks(d)) * (int(d.BsPaMfrms) + 2)
}

// CCCHGroup returns the CCCH_GROUP, that is which of the bsCcChans CCCH
// timeslots carries the paging for imsi.
func CCCHGroup(imsi uint64, bsCcChans int, nPagBlocks int) int {
	Assert(bsCcChans > 0 && nPagBlocks > 0)

	return int((imsi%1000)%uint64(bsCcChans*nPagBlocks)) / nPagBlocks
}

// PagingGroup returns the PAGING_GROUP within the CCCH_GROUP.
func PagingGroup(imsi uint64, bsCcChans int, nPagBlocks int) int {
	Assert(bsCcChans > 0 && nPagBlocks > 0)

	return int((imsi%1000)%uint64(bsCcChans*nPagBlocks)) % nPagBlocks
}

/*------------------------------------------------------------------
 *
 * Name:	CalcPagingGroup
 *
 * Purpose:	Paging group for imsi under the given control channel
 *		description.
 *
 * Inputs:	d	- Control channel description.  BS_CC_CHANS
 *			  comes from d.CCCHConf, which has to be one of
 *			  the defined codings.
 *
 *		imsi	- Subscriber identity as a number.
 *
 *------------------------------------------------------------------*/

func CalcPagingGroup(d ControlChannelDescr, imsi uint64) int {
	return CalcPagingGroupWith(d, imsi, BsCcChans(d.CCCHConf))
}

// CalcPagingGroupWith is CalcPagingGroup with BS_CC_CHANS supplied by the
// caller, for instance from system information rather than CCCH_CONF.
func CalcPagingGroupWith(d ControlChannelDescr, imsi uint64, bsCcChans int) int {
	return PagingGroup(imsi, bsCcChans, NPagBlocks(d))
}
