package process_stat

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"myps/process"

	"github.com/Moonlight-Companies/gologger/logger"
)

// DefaultBaseDir is where the kernel mounts procfs
const DefaultBaseDir = "/proc"

// StatPath returns the stat record path for the process directory name under baseDir
func StatPath(baseDir, name string) string {
	return filepath.Join(baseDir, name, "stat")
}

// ListSources returns the names of the process directories under baseDir:
// directories whose name starts with a digit. Order follows os.ReadDir.
func ListSources(baseDir string) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to scan directory: %w", process.ErrSourceUnavailable, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if name := e.Name(); name != "" && isDigit(name[0]) {
			names = append(names, name)
		}
	}
	return names, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// SkippedSource is a record left out of the listing
type SkippedSource struct {
	Path string
	Err  error
}

// SkipSummary lists the records that were skipped while collecting
type SkipSummary struct {
	Skipped []SkippedSource
}

// Count returns the number of skipped records
func (s SkipSummary) Count() int {
	return len(s.Skipped)
}

func (s SkipSummary) String() string {
	return fmt.Sprintf("skipped %d unreadable or malformed records", len(s.Skipped))
}

// Scanner turns the process directories of a base directory into entries
type Scanner struct {
	BaseDir string

	// SkipMalformed leaves out records that cannot be read or parsed instead
	// of failing the whole collection on the first one.
	SkipMalformed bool

	// Log receives debug and warning output. Nil disables logging.
	Log *logger.Logger
}

// NewScanner creates a scanner for baseDir, DefaultBaseDir when empty
func NewScanner(baseDir string) *Scanner {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return &Scanner{BaseDir: baseDir}
}

// Sources returns the stat paths of every process directory under the base directory
func (s *Scanner) Sources() ([]string, error) {
	if IsProcFS(s.BaseDir) {
		s.debugln("Reading live procfs at", s.BaseDir)
	} else {
		s.debugln("Reading", s.BaseDir, "as an emulated proc directory")
	}

	names, err := ListSources(s.BaseDir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = StatPath(s.BaseDir, name)
	}
	s.debugln("Found", len(paths), "process directories")
	return paths, nil
}

// Collect lists and parses every process under the base directory
func (s *Scanner) Collect() ([]*process.Entry, SkipSummary, error) {
	paths, err := s.Sources()
	if err != nil {
		return nil, SkipSummary{}, err
	}
	return s.CollectFrom(paths)
}

// CollectFrom parses the given stat files in order. Without SkipMalformed the
// first failure is returned and no entries are.
func (s *Scanner) CollectFrom(paths []string) ([]*process.Entry, SkipSummary, error) {
	var summary SkipSummary
	entries := make([]*process.Entry, 0, len(paths))

	for _, path := range paths {
		entry, err := ParseStatFile(path)
		if err != nil {
			if !s.SkipMalformed || !isRecordError(err) {
				return nil, summary, fmt.Errorf("could not gather data from all the files: %w", err)
			}
			s.warn("Skipping ", path, ": ", err)
			summary.Skipped = append(summary.Skipped, SkippedSource{Path: path, Err: err})
			continue
		}
		s.debugln("Parsed", path, "pid", entry.PID, entry.Name, entry.State.Description())
		entries = append(entries, entry)
	}

	return entries, summary, nil
}

func isRecordError(err error) bool {
	return errors.Is(err, process.ErrMalformedRecord) || errors.Is(err, process.ErrSourceUnavailable)
}

func (s *Scanner) debugln(args ...interface{}) {
	if s.Log != nil {
		s.Log.Debugln(args...)
	}
}

func (s *Scanner) warn(args ...interface{}) {
	if s.Log != nil {
		s.Log.Warn(args...)
	}
}
