/* Work out the CCCH group and paging group for one or more IMSIs */
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	gsm0502 "github.com/doismellburning/gsm0502/src"
	"github.com/doismellburning/gsm0502/src/profile"
)

var errUsage = errors.New("usage")

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "gsm-paging"}) //nolint:exhaustruct

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "%s\n\n", err)
			usage(os.Stdout)
			os.Exit(1)
		}
		logger.Fatal("paging group failed", "err", err)
	}
}

func run(args []string, out io.Writer) error {
	var flags = pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var configFile = flags.StringP("config", "c", "", "Cell profile (YAML).")
	var ccchConf = flags.String("ccch-conf", "1_NC", "CCCH_CONF: 1_NC, 1_C, 2_NC, 3_NC or 4_NC.")
	var bsAgBlksRes = flags.Uint8("bs-ag-blks-res", 0, "Blocks reserved for access grant.")
	var bsPaMfrms = flags.Uint8("bs-pa-mfrms", 0, "BS_PA_MFRMS as coded, 0 meaning 2 multiframes.")
	var bsCcChans = flags.Int("bs-cc-chans", 0, "Number of CCCH timeslots.  0 to derive from CCCH_CONF.")
	var debug = flags.BoolP("debug", "d", false, "Debug logging.")

	if err := flags.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	if flags.NArg() == 0 {
		return fmt.Errorf("%w: at least one IMSI required", errUsage)
	}

	var p = &profile.Profile{ //nolint:exhaustruct
		MA: []uint16{0}, // unused here, but Validate wants one
	}
	if *configFile != "" {
		var loaded, err = profile.Load(*configFile)
		if err != nil {
			return err
		}
		p = loaded
	}

	if *configFile == "" || flags.Changed("ccch-conf") {
		p.ControlChannel.CCCHConf = *ccchConf
	}
	if *configFile == "" || flags.Changed("bs-ag-blks-res") {
		p.ControlChannel.BsAgBlksRes = *bsAgBlksRes
	}
	if *configFile == "" || flags.Changed("bs-pa-mfrms") {
		p.ControlChannel.BsPaMfrms = *bsPaMfrms
	}
	if *configFile == "" || flags.Changed("bs-cc-chans") {
		p.BsCcChans = *bsCcChans
	}

	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	var descr, _ = p.Descr()
	var chans = p.CCCHChans()
	var nPag = gsm0502.NPagBlocks(descr)

	logger.Debug("control channel", "ccch_conf", descr.CCCHConf, "bs_cc_chans", chans,
		"n_pag_blocks", nPag, "paging_subchannels", gsm0502.NumPagingSubchannels(descr))

	for _, arg := range flags.Args() {
		var imsi, err = strconv.ParseUint(arg, 10, 64)
		if err != nil || len(arg) > 15 {
			return fmt.Errorf("%w: bad IMSI %q", errUsage, arg)
		}

		fmt.Fprintf(out, "imsi=%s ccch_group=%d paging_group=%d\n", arg,
			gsm0502.CCCHGroup(imsi, chans, nPag),
			gsm0502.CalcPagingGroupWith(descr, imsi, chans))
	}

	return nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "gsm-paging - Find the CCCH group and paging group of a subscriber.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:	gsm-paging [options] IMSI ...")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "	-c, --config FILE	Cell profile (YAML).")
	fmt.Fprintln(w, "	--ccch-conf CONF	1_NC, 1_C, 2_NC, 3_NC or 4_NC.")
	fmt.Fprintln(w, "	--bs-ag-blks-res N	Blocks reserved for access grant.")
	fmt.Fprintln(w, "	--bs-pa-mfrms N		Coded BS_PA_MFRMS.")
	fmt.Fprintln(w, "	--bs-cc-chans N		CCCH timeslots, 0 to derive from CCCH_CONF.")
	fmt.Fprintln(w, "	-d			Debug logging.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "	gsm-paging --ccch-conf 2_NC --bs-ag-blks-res 1 262420123456789")
}
