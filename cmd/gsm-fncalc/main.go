/* TDMA frame number calculator */
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	gsm0502 "github.com/doismellburning/gsm0502/src"
)

var errUsage = errors.New("usage")

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "gsm-fncalc"}) //nolint:exhaustruct

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "%s\n\n", err)
			usage(os.Stdout)
			os.Exit(1)
		}
		logger.Fatal("failed", "err", err)
	}
}

// Names accepted for a RemapChannel, besides its number.
var channelNames = map[string]gsm0502.RemapChannel{
	"tch_f":    gsm0502.FNRemapTCHF,
	"tch_h0":   gsm0502.FNRemapTCHH0,
	"tch_h1":   gsm0502.FNRemapTCHH1,
	"facch_f":  gsm0502.FNRemapFACCHF,
	"facch_h0": gsm0502.FNRemapFACCHH0,
	"facch_h1": gsm0502.FNRemapFACCHH1,
}

// Number of operands each command takes.
var commands = map[string]int{
	"sum":   2,
	"sub":   2,
	"diff":  2,
	"inc":   1,
	"dec":   1,
	"time":  1,
	"fn":    3,
	"ccch":  1,
	"remap": 2,
	"block": 2,
}

func run(args []string, out io.Writer) error {
	var flags = pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var debug = flags.BoolP("debug", "d", false, "Debug logging.")

	if err := flags.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	if flags.NArg() == 0 {
		return fmt.Errorf("%w: no command", errUsage)
	}

	var cmd = flags.Arg(0)
	var operands = flags.Args()[1:]

	var want, ok = commands[cmd]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	if len(operands) != want {
		return fmt.Errorf("%w: %s takes %d operands", errUsage, cmd, want)
	}

	logger.Debug("calculating", "command", cmd, "operands", operands)

	switch cmd {
	case "sum", "sub", "diff":
		var a, errA = parseFN(operands[0])
		var b, errB = parseFN(operands[1])
		if err := errors.Join(errA, errB); err != nil {
			return err
		}
		var f = map[string]func(a, b uint32) uint32{
			"sum":  gsm0502.FNSum,
			"sub":  gsm0502.FNSub,
			"diff": gsm0502.FNDiff,
		}[cmd]
		fmt.Fprintf(out, "%d\n", f(a, b))

	case "inc", "dec":
		var fn, err = parseFN(operands[0])
		if err != nil {
			return err
		}
		if cmd == "inc" {
			fmt.Fprintf(out, "%d\n", gsm0502.FNInc(fn))
		} else {
			fmt.Fprintf(out, "%d\n", gsm0502.FNDec(fn))
		}

	case "time":
		var fn, err = parseFN(operands[0])
		if err != nil {
			return err
		}
		var t = gsm0502.FNToGSMTime(fn)
		fmt.Fprintf(out, "fn=%d t1=%d t2=%d t3=%d tc=%d\n", t.FN, t.T1, t.T2, t.T3, t.TC)

	case "fn":
		var t1, err1 = strconv.ParseUint(operands[0], 10, 16)
		var t2, err2 = strconv.ParseUint(operands[1], 10, 8)
		var t3, err3 = strconv.ParseUint(operands[2], 10, 8)
		if errors.Join(err1, err2, err3) != nil || t1 > 2047 || t2 >= gsm0502.Multiframe26 || t3 >= gsm0502.Multiframe51 {
			return fmt.Errorf("%w: need T1 0-2047, T2 0-25, T3 0-50", errUsage)
		}
		fmt.Fprintf(out, "%d\n", gsm0502.GSMTimeToFN(uint16(t1), uint8(t2), uint8(t3)))

	case "ccch":
		var fn, err = parseFN(operands[0])
		if err != nil {
			return err
		}
		var block = gsm0502.FNToCCCHBlock(fn)
		if block == gsm0502.CCCHBlockNone {
			fmt.Fprintln(out, "none")
		} else {
			fmt.Fprintf(out, "%d\n", block)
		}

	case "remap", "block":
		var fn, err = parseFN(operands[0])
		if err != nil {
			return err
		}
		var channel, chErr = parseChannel(operands[1])
		if chErr != nil {
			return chErr
		}
		if cmd == "remap" {
			fmt.Fprintf(out, "%d\n", gsm0502.RemapFN(fn, channel))
		} else {
			fmt.Fprintf(out, "%d\n", gsm0502.BlockStartFN(fn, channel))
		}
	}

	return nil
}

func parseFN(s string) (uint32, error) {
	var fn, err = strconv.ParseUint(s, 10, 32)
	if err != nil || fn >= gsm0502.Hyperframe {
		return 0, fmt.Errorf("%w: frame number %q not in 0-%d", errUsage, s, gsm0502.Hyperframe-1)
	}
	return uint32(fn), nil
}

func parseChannel(s string) (gsm0502.RemapChannel, error) {
	if ch, ok := channelNames[strings.ToLower(s)]; ok {
		return ch, nil
	}

	var n, err = strconv.Atoi(s)
	if err == nil && gsm0502.RemapChannel(n).Valid() {
		return gsm0502.RemapChannel(n), nil
	}

	return 0, fmt.Errorf("%w: unknown channel %q", errUsage, s)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "gsm-fncalc - TDMA frame number calculator.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:	gsm-fncalc [-d] COMMAND OPERANDS")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "	sum A B		(A + B) mod hyperframe")
	fmt.Fprintln(w, "	sub A B		(A - B) mod hyperframe")
	fmt.Fprintln(w, "	diff A B	Shortest distance between A and B")
	fmt.Fprintln(w, "	inc FN		Next frame")
	fmt.Fprintln(w, "	dec FN		Previous frame")
	fmt.Fprintln(w, "	time FN		Split into T1, T2, T3, TC")
	fmt.Fprintln(w, "	fn T1 T2 T3	Frame number from T1, T2, T3")
	fmt.Fprintln(w, "	ccch FN		CCCH block index, or none")
	fmt.Fprintln(w, "	remap FN CHAN	Frame number seen by a logical channel")
	fmt.Fprintln(w, "	block FN CHAN	First frame of the block ending at FN")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "CHAN is one of tch_f, tch_h0, tch_h1, facch_f, facch_h0, facch_h1.")
}
