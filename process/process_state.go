package process

// ProcessState is the single-character state code from /proc/[pid]/stat
type ProcessState byte

const (
	ProcessRunning    ProcessState = 'R' // Running
	ProcessSleeping   ProcessState = 'S' // Sleeping in an interruptible wait
	ProcessWaiting    ProcessState = 'D' // Waiting in uninterruptible disk sleep
	ProcessZombie     ProcessState = 'Z' // Zombie
	ProcessStopped    ProcessState = 'T' // Stopped (on a signal)
	ProcessTracingStp ProcessState = 't' // Tracing stop
	ProcessPaging     ProcessState = 'W' // Paging
	ProcessDead       ProcessState = 'X' // Dead
	ProcessDeadOld    ProcessState = 'x' // Dead (2.6.33 to 3.13)
	ProcessWakekill   ProcessState = 'K' // Wakekill
	ProcessParked     ProcessState = 'P' // Parked
	ProcessIdle       ProcessState = 'I' // Idle kernel thread
)

var stateDescriptions = map[ProcessState]string{
	ProcessRunning:    "running",
	ProcessSleeping:   "sleeping",
	ProcessWaiting:    "disk sleep",
	ProcessZombie:     "zombie",
	ProcessStopped:    "stopped",
	ProcessTracingStp: "tracing stop",
	ProcessPaging:     "paging",
	ProcessDead:       "dead",
	ProcessDeadOld:    "dead",
	ProcessWakekill:   "wakekill",
	ProcessParked:     "parked",
	ProcessIdle:       "idle",
}

func (s ProcessState) String() string {
	return string(rune(s))
}

// Description returns a human readable name for the state, or "unknown".
// The kernel adds codes over time so an unknown code is not an error.
func (s ProcessState) Description() string {
	if d, ok := stateDescriptions[s]; ok {
		return d
	}
	return "unknown"
}
