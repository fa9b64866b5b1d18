package process_stat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"myps/process"
)

// Fields of /proc/[pid]/stat that the listing does not show, in record order.
var (
	skippedAfterPPID = []string{"pgrp", "session", "tty_nr", "tpgid", "flags", "minflt", "cminflt", "majflt", "cmajflt"}
	skippedAfterTime = []string{"cutime", "cstime", "priority", "nice"}
)

// ParseStatFile reads and parses the stat record at path. The file is closed
// before returning.
func ParseStatFile(path string) (*process.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", process.ErrSourceUnavailable, err)
	}
	defer f.Close()

	return ParseStat(f, path)
}

// ParseStatString parses an in-memory stat record. source is stored on the
// entry as its StatPath.
func ParseStatString(text, source string) (*process.Entry, error) {
	return ParseStat(strings.NewReader(text), source)
}

// ParseStat parses one stat record from r.
//
// The record is split on runs of whitespace. The comm field is the token that
// starts with '(' plus every following token up to and including the first one
// that ends with ')', joined by single spaces. Fields after num_threads are not read.
func ParseStat(r io.Reader, source string) (*process.Entry, error) {
	rr := newRecordReader(r, source)
	entry := process.NewEntry()

	pid, err := rr.nextInt("pid")
	if err != nil {
		return nil, err
	}
	if pid < 0 {
		return nil, rr.malformed("pid", "is negative")
	}

	name, err := rr.nextName()
	if err != nil {
		return nil, err
	}

	state, err := rr.next("state")
	if err != nil {
		return nil, err
	}
	if len(state) != 1 {
		return nil, rr.malformed("state", fmt.Sprintf("%q is not a single character", state))
	}

	ppid, err := rr.nextInt("ppid")
	if err != nil {
		return nil, err
	}

	if err := rr.skip(skippedAfterPPID); err != nil {
		return nil, err
	}

	utime, err := rr.nextUint("utime")
	if err != nil {
		return nil, err
	}
	stime, err := rr.nextUint("stime")
	if err != nil {
		return nil, err
	}

	if err := rr.skip(skippedAfterTime); err != nil {
		return nil, err
	}

	threads, err := rr.nextInt("num_threads")
	if err != nil {
		return nil, err
	}

	entry.PID = process.ProcessID(pid)
	entry.Name = name
	entry.State = process.ProcessState(state[0])
	entry.PPID = process.ProcessID(ppid)
	entry.UTime = utime
	entry.STime = stime
	entry.Threads = threads
	entry.StatPath = source

	return entry, nil
}

// recordReader hands out whitespace separated tokens and builds errors that
// name the source and field.
type recordReader struct {
	sc     *bufio.Scanner
	source string
}

func newRecordReader(r io.Reader, source string) *recordReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &recordReader{sc: sc, source: source}
}

func (rr *recordReader) malformed(field, reason string) error {
	return fmt.Errorf("%w: %s: %s %s", process.ErrMalformedRecord, rr.source, field, reason)
}

func (rr *recordReader) next(field string) (string, error) {
	if rr.sc.Scan() {
		return rr.sc.Text(), nil
	}
	if err := rr.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", rr.malformed(field, "is too long")
		}
		return "", fmt.Errorf("%w: %s: %w", process.ErrSourceUnavailable, rr.source, err)
	}
	return "", rr.malformed(field, "is missing")
}

func (rr *recordReader) nextInt(field string) (int64, error) {
	tok, err := rr.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, rr.malformed(field, fmt.Sprintf("%q is not an integer", tok))
	}
	return v, nil
}

func (rr *recordReader) nextUint(field string) (uint64, error) {
	tok, err := rr.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, rr.malformed(field, fmt.Sprintf("%q is not an unsigned integer", tok))
	}
	return v, nil
}

func (rr *recordReader) skip(fields []string) error {
	for _, field := range fields {
		if _, err := rr.nextInt(field); err != nil {
			return err
		}
	}
	return nil
}

func (rr *recordReader) nextName() (string, error) {
	name, err := rr.next("comm")
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(name, "(") {
		return "", rr.malformed("comm", fmt.Sprintf("%q does not start with '('", name))
	}

	// comm may contain spaces, keep reading until the closing parenthesis
	for !strings.HasSuffix(name, ")") {
		tok, err := rr.next("comm")
		if err != nil {
			return "", err
		}
		name += " " + tok
	}
	return name, nil
}
