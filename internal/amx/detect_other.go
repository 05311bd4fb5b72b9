//go:build !(darwin && arm64)

package amx

// Available always reports false outside darwin/arm64: there is no
// AMX coprocessor to detect.
func Available() bool { return false }

// PerformanceCores returns 1 on platforms without AMX; nothing in
// this package ever dispatches parallel work here.
func PerformanceCores() int { return 1 }
