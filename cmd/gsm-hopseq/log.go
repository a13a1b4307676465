package main

/*------------------------------------------------------------------
 *
 * Purpose:	Save the computed hops to a log file.
 *
 * Description: One CSV line per frame, for easy reading into a
 *		spreadsheet or comparing against a capture.
 *
 *		There are two alternatives here.
 *
 *		-L logfile		Specify full file path.
 *
 *		-l logdir		Daily names will be created here.
 *
 *		Use one or the other but not both.  Daily names go by the
 *		frame's own time stamp (see --epoch), UTC, not the time the
 *		program ran.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	gsm0502 "github.com/doismellburning/gsm0502/src"
)

const hopLogHeader = "fn,t1,t2,t3,isotime,hsn,maio,mai,arfcn\n"

type hopLog struct {
	dailyNames bool
	path       string // directory for daily names, otherwise the file
	fp         *os.File
	openName   string
}

/*------------------------------------------------------------------
 *
 * Function:	newHopLog
 *
 * Inputs:	dailyNames	- True if daily names should be generated.
 *				  In this case path is a directory.
 *				  When false, path would be the file name.
 *
 *		path		- Log file name or just directory.
 *
 *------------------------------------------------------------------*/

func newHopLog(dailyNames bool, path string) *hopLog {
	var l = &hopLog{dailyNames: dailyNames, path: path} //nolint:exhaustruct

	if !dailyNames {
		logger.Info("logging hops", "file", path)
		return l
	}

	var stat, statErr = os.Stat(path)
	if statErr == nil {
		if !stat.IsDir() {
			logger.Error("log file location is not a directory, using current working directory instead", "path", path)
			l.path = "."
		}
		return l
	}

	// Doesn't exist.  Try to create it.
	// We don't create multiple levels like "mkdir -p"
	var mkdirErr = os.Mkdir(path, 0o755)
	if mkdirErr != nil {
		logger.Error("failed to create log file location, using current working directory instead", "path", path, "err", mkdirErr)
		l.path = "."
		return l
	}

	logger.Info("created log file location", "path", path)
	return l
}

func (l *hopLog) open(name string) error {
	// See if file already exists and not empty.
	// Write a header only if this will be the first line.
	var stat, statErr = os.Stat(name)
	var alreadyThere = statErr == nil && stat.Size() > 0

	logger.Debug("opening log file", "file", name)

	var f, err = os.OpenFile(name, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("can't open log file %q for write: %w", name, err)
	}
	l.fp = f

	if !alreadyThere {
		if _, err := fmt.Fprint(l.fp, hopLogHeader); err != nil {
			return fmt.Errorf("log header: %w", err)
		}
	}

	return nil
}

// write appends one frame.  A nil log does nothing.
func (l *hopLog) write(when time.Time, t gsm0502.GSMTime, hsn uint8, maio uint8, mai int, arfcn uint16) error {
	if l == nil {
		return nil
	}

	if l.dailyNames {
		var fname = when.UTC().Format("2006-01-02.log")

		// Close current file if name has changed
		if l.fp != nil && fname != l.openName {
			l.close()
		}

		if l.fp == nil {
			if err := l.open(filepath.Join(l.path, fname)); err != nil {
				return err
			}
			l.openName = fname
		}
	} else if l.fp == nil {
		if err := l.open(l.path); err != nil {
			return err
		}
	}

	var w = csv.NewWriter(l.fp)
	if err := w.Write([]string{
		strconv.FormatUint(uint64(t.FN), 10),
		strconv.Itoa(int(t.T1)), strconv.Itoa(int(t.T2)), strconv.Itoa(int(t.T3)),
		when.UTC().Format("2006-01-02T15:04:05.000Z"),
		strconv.Itoa(int(hsn)), strconv.Itoa(int(maio)),
		strconv.Itoa(mai), strconv.Itoa(int(arfcn)),
	}); err != nil {
		return fmt.Errorf("CSV write: %w", err)
	}
	w.Flush()

	return w.Error()
}

func (l *hopLog) close() {
	if l == nil || l.fp == nil {
		return
	}

	if err := l.fp.Close(); err != nil {
		logger.Warn("closing log file", "file", l.fp.Name(), "err", err)
	}
	l.fp = nil
	l.openName = ""
}
