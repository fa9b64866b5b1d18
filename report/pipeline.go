package report

import (
	"myps/process"
	"myps/process_stat"

	"github.com/Moonlight-Companies/gologger/logger"
)

// Pipeline collects entries, sorts them with one comparator and prints them.
// It runs start to finish on the calling goroutine.
type Pipeline struct {
	Scanner    *process_stat.Scanner
	Comparator process.Comparator
	Reporter   *Reporter
	Log        *logger.Logger
}

// Run lists the scanner's base directory and reports every process in it.
// The summary is only non-empty when the scanner skips malformed records.
func (p *Pipeline) Run() (process_stat.SkipSummary, error) {
	entries, summary, err := p.Scanner.Collect()
	if err != nil {
		return summary, err
	}
	return summary, p.report(entries)
}

// RunFrom reports the processes read from the given stat files
func (p *Pipeline) RunFrom(paths []string) (process_stat.SkipSummary, error) {
	entries, summary, err := p.Scanner.CollectFrom(paths)
	if err != nil {
		return summary, err
	}
	return summary, p.report(entries)
}

func (p *Pipeline) report(entries []*process.Entry) error {
	cmp := p.Comparator
	if cmp == nil {
		cmp = process.ByPID{}
	}
	process.SortEntries(entries, cmp)

	if p.Log != nil {
		p.Log.Debugln("Sorted", len(entries), "entries by", cmp.Name())
	}

	return p.Reporter.Print(entries)
}
