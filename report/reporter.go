// Package report sorts collected process entries and prints them as a table.
package report

import (
	"io"

	"myps/process"
)

// Reporter prints entries in the fixed column layout of process.Columns
type Reporter struct {
	Out io.Writer

	// ZombiesOnly restricts the rows to processes in the zombie state
	ZombiesOnly bool

	// ClockTicks converts tick counts to seconds, 0 means process.DefaultClockTicks
	ClockTicks uint64
}

// Print writes the header and one row per entry in the order given. Nothing is
// written when entries is empty.
func (r *Reporter) Print(entries []*process.Entry) error {
	if len(entries) == 0 {
		return process.ErrEmptyReport
	}

	rows := entries
	if r.ZombiesOnly {
		rows = FilterZombies(entries)
	}

	if err := process.Columns.RenderHeader(r.Out); err != nil {
		return err
	}
	for _, e := range rows {
		if err := process.Columns.RenderRow(r.Out, e.Cells(r.ClockTicks)...); err != nil {
			return err
		}
	}
	return nil
}

// FilterZombies returns the zombie entries, in their original order
func FilterZombies(entries []*process.Entry) []*process.Entry {
	var out []*process.Entry
	for _, e := range entries {
		if e.IsZombie() {
			out = append(out, e)
		}
	}
	return out
}
