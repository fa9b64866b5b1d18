package process

import (
	"strconv"

	"myps/table"
)

const (
	// DefaultClockTicks is USER_HZ, the tick rate the kernel uses for the
	// time fields of /proc/[pid]/stat on every mainstream architecture.
	DefaultClockTicks uint64 = 100
)

// ProcessID represents a unique identifier for a process
type ProcessID int

// Entry is one parsed /proc/[pid]/stat record
type Entry struct {
	PID      ProcessID    // Process ID
	PPID     ProcessID    // Parent Process ID, 0 for none
	Name     string       // comm as it appears in the record, parentheses included, stored whole
	State    ProcessState // Process state (R, S, D, Z, etc.)
	UTime    uint64       // User mode time in clock ticks
	STime    uint64       // Kernel mode time in clock ticks
	Threads  int64        // Number of threads
	StatPath string       // File the record was read from
}

// NewEntry returns an entry with every field zeroed. The parser fills it in.
func NewEntry() *Entry {
	return &Entry{}
}

// IsZombie reports whether the process has exited but not been reaped
func (e *Entry) IsZombie() bool {
	return e != nil && e.State == ProcessZombie
}

// UserSeconds returns UTime converted to whole seconds
func (e *Entry) UserSeconds(clockTicks uint64) uint64 {
	return e.UTime / tickRate(clockTicks)
}

// SystemSeconds returns STime converted to whole seconds
func (e *Entry) SystemSeconds(clockTicks uint64) uint64 {
	return e.STime / tickRate(clockTicks)
}

func tickRate(clockTicks uint64) uint64 {
	if clockTicks == 0 {
		return DefaultClockTicks
	}
	return clockTicks
}

// Columns is the fixed layout shared by the listing header and every row.
// CMD and STAT_FILE are cut to their width. Names are stored whole and expected
// to stay within 99 bytes; that bound only matters for display.
var Columns = table.New(
	table.ColumnSpec{Header: "PID", Width: 7, Align: table.AlignRight},
	table.ColumnSpec{Header: "PPID", Width: 7, Align: table.AlignRight},
	table.ColumnSpec{Header: "STATE", Width: 5, Align: table.AlignRight},
	table.ColumnSpec{Header: "UTIME", Width: 5, Align: table.AlignRight},
	table.ColumnSpec{Header: "STIME", Width: 5, Align: table.AlignRight},
	table.ColumnSpec{Header: "THREADS", Width: 7, Align: table.AlignRight},
	table.ColumnSpec{Header: "CMD", Width: 25, Align: table.AlignLeft, Truncate: true},
	table.ColumnSpec{Header: "STAT_FILE", Width: 20, Align: table.AlignLeft, Truncate: true},
)

// Cells returns the row values in column order, times already in seconds
func (e *Entry) Cells(clockTicks uint64) []string {
	return []string{
		strconv.Itoa(int(e.PID)),
		strconv.Itoa(int(e.PPID)),
		e.State.String(),
		strconv.FormatUint(e.UserSeconds(clockTicks), 10),
		strconv.FormatUint(e.SystemSeconds(clockTicks), 10),
		strconv.FormatInt(e.Threads, 10),
		e.Name,
		e.StatPath,
	}
}

// Render formats the entry as one listing row without a trailing newline.
func (e *Entry) Render(clockTicks uint64) string {
	if e == nil {
		return ""
	}
	return Columns.FormatRow(e.Cells(clockTicks)...)
}
