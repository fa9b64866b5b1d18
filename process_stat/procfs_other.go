//go:build !linux

package process_stat

// IsProcFS always reports false, procfs with this layout only exists on Linux
func IsProcFS(dir string) bool {
	return false
}
