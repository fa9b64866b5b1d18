package process_stat

import (
	"myps/process"

	"github.com/tklauser/go-sysconf"
)

// ClockTicks returns the system clock tick rate (sysconf(_SC_CLK_TCK)),
// or process.DefaultClockTicks when it cannot be determined.
func ClockTicks() uint64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		return process.DefaultClockTicks
	}
	return uint64(hz)
}
