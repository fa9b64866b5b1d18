// Package config holds the listing options and reads them from a TOML file
// and the command line.
package config

import (
	"fmt"
	"sort"
	"strings"

	"myps/process"
	"myps/process_stat"

	"github.com/BurntSushi/toml"
)

// Config is the complete set of options for one listing
type Config struct {
	BaseDir       string            `toml:"base_dir"`
	Order         process.SortOrder `toml:"order"`
	ZombiesOnly   bool              `toml:"zombies_only"`
	ClockTicks    uint64            `toml:"clock_ticks"` // 0 asks the system
	SkipMalformed bool              `toml:"skip_malformed"`
	Verbose       bool              `toml:"verbose"`
}

// DefaultConfig returns the options used when nothing is given
func DefaultConfig() Config {
	return Config{
		BaseDir: process_stat.DefaultBaseDir,
		Order:   process.OrderPID,
	}
}

// LoadFile decodes the TOML file at path over cfg. Keys that do not map to a
// Config field are an error.
func LoadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks the values a flag or config file cannot rule out by type
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		return fmt.Errorf("base directory must not be empty")
	}
	if _, err := process.ComparatorFor(c.Order); err != nil {
		return err
	}
	return nil
}
