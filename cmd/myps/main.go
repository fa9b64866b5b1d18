package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"myps/config"
	"myps/process"
	"myps/process_stat"
	"myps/report"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/google/uuid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.ParseArgs(args, stdout, stderr)
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	cmp, err := process.ComparatorFor(cfg.Order)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	var log *logger.Logger
	if cfg.Verbose {
		log = newLogger()
	}

	clockTicks := cfg.ClockTicks
	if clockTicks == 0 {
		clockTicks = process_stat.ClockTicks()
	}

	scanner := process_stat.NewScanner(cfg.BaseDir)
	scanner.SkipMalformed = cfg.SkipMalformed
	scanner.Log = log

	p := &report.Pipeline{
		Scanner:    scanner,
		Comparator: cmp,
		Reporter: &report.Reporter{
			Out:         stdout,
			ZombiesOnly: cfg.ZombiesOnly,
			ClockTicks:  clockTicks,
		},
		Log: log,
	}

	summary, err := p.Run()
	if summary.Count() > 0 {
		fmt.Fprintln(stderr, "Warning:", summary)
		for _, s := range summary.Skipped {
			fmt.Fprintf(stderr, "\t%s: %v\n", s.Path, s.Err)
		}
	}

	switch {
	case errors.Is(err, process.ErrEmptyReport):
		fmt.Fprintln(stderr, "Error:", err)
		return 0
	case err != nil:
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func newLogger() *logger.Logger {
	runID := uuid.New().String()[:8]
	return logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "myps-"+runID))
}
