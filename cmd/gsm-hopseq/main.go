/* Print the frequency hopping schedule of a channel over a range of frames */
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"

	gsm0502 "github.com/doismellburning/gsm0502/src"
	"github.com/doismellburning/gsm0502/src/profile"
)

var errUsage = errors.New("usage")

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "gsm-hopseq"}) //nolint:exhaustruct

type options struct {
	hsn             uint8
	maio            uint8
	ma              []uint16
	startFN         uint32
	count           int
	timestampFormat string
	epoch           time.Time
	logFile         string
	logDir          string
}

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "%s\n\n", err)
			usage(os.Stdout)
			os.Exit(1)
		}
		logger.Fatal("hop schedule failed", "err", err)
	}
}

/*-------------------------------------------------------------------
 *
 * Name:        run
 *
 * Purpose:     Parse the command line, work out the hopping parameters
 *		and print one line per frame.
 *
 * Inputs:	args	- Command line, program name first.
 *
 *		out	- Where the schedule goes.
 *
 * Description:	Parameters come from the profile given with -c, then
 *		any of --hsn, --maio and --ma override it.  Without a
 *		profile all three have to be there (maio defaults to 0).
 *
 *--------------------------------------------------------------------*/

func run(args []string, out io.Writer) error {
	var flags = pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var configFile = flags.StringP("config", "c", "", "Cell profile (YAML).")
	var hsn = flags.Uint8("hsn", 0, "Hopping sequence number, 0-63.  0 is cyclic hopping.")
	var maio = flags.Uint8("maio", 0, "Mobile allocation index offset.")
	var maList = flags.String("ma", "", "Mobile allocation, comma separated ARFCNs.")
	var startFN = flags.Uint32P("start-fn", "f", 0, "First frame number.")
	var count = flags.IntP("count", "n", gsm0502.Multiframe26, "Number of frames.")
	var timestampFormat = flags.StringP("timestamp-format", "T", "", "Precede each frame with 'strftime' format time stamp.")
	var epochStr = flags.String("epoch", "1970-01-01T00:00:00Z", "Wall clock time of frame 0, RFC 3339, for -T.")
	var logFile = flags.StringP("log-file", "L", "", "CSV log file name.")
	var logDir = flags.StringP("log-dir", "l", "", "Directory for daily CSV log files.")
	var debug = flags.BoolP("debug", "d", false, "Debug logging.")

	if err := flags.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	var opts = options{ //nolint:exhaustruct
		startFN:         *startFN,
		count:           *count,
		timestampFormat: *timestampFormat,
		logFile:         *logFile,
		logDir:          *logDir,
	}

	if *configFile != "" {
		var p, err = profile.Load(*configFile)
		if err != nil {
			return err
		}
		logger.Debug("loaded profile", "name", p.Name, "frequencies", len(p.MA), "hsn", p.HSN, "maio", p.MAIO)
		opts.hsn = p.HSN
		opts.maio = p.MAIO
		opts.ma = p.MA
	}

	if flags.Changed("hsn") {
		opts.hsn = *hsn
	}
	if flags.Changed("maio") {
		opts.maio = *maio
	}
	if flags.Changed("ma") {
		var ma, err = parseMA(*maList)
		if err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		opts.ma = ma
	}

	var epoch, epochErr = time.Parse(time.RFC3339, *epochStr)
	if epochErr != nil {
		return fmt.Errorf("%w: bad --epoch: %w", errUsage, epochErr)
	}
	opts.epoch = epoch

	if err := opts.check(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	return schedule(opts, out)
}

// Same rules as a profile, so a bad command line is reported instead of
// tripping an assertion in gsm0502.
func (o *options) check() error {
	var p = profile.Profile{MA: o.ma, HSN: o.hsn, MAIO: o.maio} //nolint:exhaustruct
	p.ControlChannel.CCCHConf = gsm0502.CCCHConf1NC.String()
	if err := p.Validate(); err != nil {
		return err
	}

	if o.startFN >= gsm0502.Hyperframe {
		return fmt.Errorf("start frame %d beyond hyperframe", o.startFN)
	}

	if o.count < 0 {
		return fmt.Errorf("negative count %d", o.count)
	}

	if o.logFile != "" && o.logDir != "" {
		return errors.New("use only one of --log-file and --log-dir")
	}

	return nil
}

func schedule(opts options, out io.Writer) error {
	var csvLog *hopLog
	switch {
	case opts.logDir != "":
		csvLog = newHopLog(true, opts.logDir)
	case opts.logFile != "":
		csvLog = newHopLog(false, opts.logFile)
	}
	defer csvLog.close()

	var fn = opts.startFN
	for range opts.count {
		var t = gsm0502.FNToGSMTime(fn)
		var mai = gsm0502.HopIndex(t, opts.hsn, opts.maio, len(opts.ma))
		var arfcn = opts.ma[mai]
		var when = frameTime(opts.epoch, fn)

		var prefix = ""
		if opts.timestampFormat != "" {
			var ts, err = strftime.Format(opts.timestampFormat, when)
			if err != nil {
				return fmt.Errorf("timestamp format %q: %w", opts.timestampFormat, err)
			}
			prefix = ts + " "
		}

		fmt.Fprintf(out, "%sfn=%d t1=%d t2=%d t3=%d mai=%d arfcn=%d\n", prefix, fn, t.T1, t.T2, t.T3, mai, arfcn)

		if err := csvLog.write(when, t, opts.hsn, opts.maio, mai, arfcn); err != nil {
			return err
		}

		fn = gsm0502.FNInc(fn)
	}

	return nil
}

// Wall clock time of frame fn, counting from epoch at frame 0.  Frame
// numbers wrap about every 3 h 28 min so this is only ever within one
// hyperframe of epoch.
func frameTime(epoch time.Time, fn uint32) time.Time {
	return epoch.Add(time.Duration(fn) * gsm0502.FNDuration).UTC()
}

func parseMA(s string) ([]uint16, error) {
	var ma []uint16
	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var n, err = strconv.ParseUint(field, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("bad ARFCN %q", field)
		}
		ma = append(ma, uint16(n))
	}
	return ma, nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "gsm-hopseq - Print the frequency hopping schedule of a channel.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:	gsm-hopseq [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "	-c, --config FILE	Cell profile (YAML).")
	fmt.Fprintln(w, "	--hsn N			Hopping sequence number, 0-63.  0 is cyclic.")
	fmt.Fprintln(w, "	--maio N		Mobile allocation index offset.")
	fmt.Fprintln(w, "	--ma LIST		Mobile allocation, e.g. 17,29,41,53")
	fmt.Fprintln(w, "	-f, --start-fn N	First frame number.")
	fmt.Fprintln(w, "	-n, --count N		Number of frames, default 26.")
	fmt.Fprintln(w, "	-T FORMAT		Precede each frame with 'strftime' format time stamp.")
	fmt.Fprintln(w, "	--epoch TIME		Time of frame 0 for -T, RFC 3339.")
	fmt.Fprintln(w, "	-L FILE			CSV log file.")
	fmt.Fprintln(w, "	-l DIR			Directory for daily CSV log files.")
	fmt.Fprintln(w, "	-d			Debug logging.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "	gsm-hopseq --hsn 12 --maio 1 --ma 17,29,41,53 -f 1000 -n 8")
}
