package config

// Flags follow getopt conventions on top of the flag package: short flags can
// be bundled (-zc), a value can be attached (-d/tmp/proc), unknown flags print
// usage to stderr and parsing carries on with the next argument.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"myps/process"
)

// ErrHelp is returned by ParseArgs after the usage text was printed for -h
var ErrHelp = errors.New("help requested")

const programName = "myps"

// flags that consume the next argument
var valueFlags = map[byte]bool{'d': true, 't': true, 'f': true}

// ParseArgs builds a Config from the defaults, the optional -f config file and
// the command line flags, in that order of precedence. The last of -p and -c wins.
func ParseArgs(args []string, stdout, stderr io.Writer) (Config, error) {
	cfg := DefaultConfig()

	var (
		configFile string
		showHelp   bool
		setters    []func(*Config)
	)
	set := func(f func(*Config)) {
		setters = append(setters, f)
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs.Output()) }

	fs.Func("d", "Directory containing proc entries", func(v string) error {
		set(func(c *Config) { c.BaseDir = v })
		return nil
	})
	fs.BoolFunc("p", "Sort by pid", func(v string) error {
		return onBool(v, func(b bool) {
			if b {
				set(func(c *Config) { c.Order = process.OrderPID })
			}
		})
	})
	fs.BoolFunc("c", "Sort by command", func(v string) error {
		return onBool(v, func(b bool) {
			if b {
				set(func(c *Config) { c.Order = process.OrderName })
			}
		})
	})
	fs.BoolFunc("z", "Only zombies", func(v string) error {
		return onBool(v, func(b bool) { set(func(c *Config) { c.ZombiesOnly = b }) })
	})
	fs.BoolFunc("s", "Skip unreadable or malformed records", func(v string) error {
		return onBool(v, func(b bool) { set(func(c *Config) { c.SkipMalformed = b }) })
	})
	fs.BoolFunc("v", "Verbose logging", func(v string) error {
		return onBool(v, func(b bool) { set(func(c *Config) { c.Verbose = b }) })
	})
	fs.Func("t", "Clock ticks per second", func(v string) error {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			return fmt.Errorf("must be a positive integer")
		}
		set(func(c *Config) { c.ClockTicks = n })
		return nil
	})
	fs.StringVar(&configFile, "f", "", "TOML configuration file")
	fs.BoolVar(&showHelp, "h", false, "Display this help message")
	fs.BoolVar(&showHelp, "help", false, "Display this help message")

	rest := expandShortFlags(fs, args)
	for {
		err := fs.Parse(rest)
		next := fs.Args()
		if err == nil {
			if len(next) == 0 || endedWithTerminator(rest, next) {
				break
			}
			// positional arguments are ignored
			next = next[1:]
		} else if len(next) >= len(rest) {
			// flag reported the error without consuming the argument
			next = rest[1:]
		}
		rest = next
	}

	if showHelp {
		printUsage(stdout)
		return cfg, ErrHelp
	}

	if configFile != "" {
		if err := LoadFile(configFile, &cfg); err != nil {
			return cfg, err
		}
	}
	for _, f := range setters {
		f(&cfg)
	}

	return cfg, cfg.Validate()
}

func onBool(v string, f func(bool)) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	f(b)
	return nil
}

// endedWithTerminator reports whether parsing stopped at "--"
func endedWithTerminator(parsed, remaining []string) bool {
	consumed := len(parsed) - len(remaining)
	return consumed > 0 && parsed[consumed-1] == "--"
}

// expandShortFlags splits bundled short flags into separate arguments
func expandShortFlags(fs *flag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return append(out, args[i:]...)
		case len(a) == 2 && a[0] == '-' && valueFlags[a[1]]:
			out = append(out, a)
			if i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		case len(a) <= 2 || a[0] != '-' || a[1] == '-' || strings.Contains(a, "=") || fs.Lookup(a[1:]) != nil:
			out = append(out, a)
		default:
			out = append(out, splitCluster(a[1:])...)
		}
	}
	return out
}

func splitCluster(cluster string) []string {
	var out []string
	for j := 0; j < len(cluster); j++ {
		out = append(out, "-"+string(cluster[j]))
		if valueFlags[cluster[j]] {
			if rest := cluster[j+1:]; rest != "" {
				out = append(out, rest)
			}
			break
		}
	}
	return out
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [-d <path>] [-p] [-c] [-z] [-s] [-t <ticks>] [-f <file>] [-v] [-h]\n", programName)
	fmt.Fprintln(w, "\t-d <path>  Directory containing proc entries (default: /proc)")
	fmt.Fprintln(w, "\t-p         Display proc entries sorted by pid (default)")
	fmt.Fprintln(w, "\t-c         Display proc entries sorted by command lexicographically")
	fmt.Fprintln(w, "\t-z         Display ONLY proc entries in the zombie state")
	fmt.Fprintln(w, "\t-s         Skip unreadable or malformed stat files instead of failing")
	fmt.Fprintln(w, "\t-t <ticks> Clock ticks per second (default: sysconf(_SC_CLK_TCK))")
	fmt.Fprintln(w, "\t-f <file>  Read options from a TOML file, flags override it")
	fmt.Fprintln(w, "\t-v         Log progress")
	fmt.Fprintln(w, "\t-h         Display this help message")
}
