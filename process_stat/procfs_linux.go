//go:build linux

package process_stat

import (
	"golang.org/x/sys/unix"
)

// IsProcFS reports whether dir is a mounted procfs rather than a copy of one
func IsProcFS(dir string) bool {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return false
	}
	return st.Type == unix.PROC_SUPER_MAGIC
}
