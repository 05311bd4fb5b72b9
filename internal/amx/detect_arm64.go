//go:build darwin && arm64

package amx

import (
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

var (
	detectOnce sync.Once
	available  bool
	perfCores  int
)

func detect() {
	detectOnce.Do(func() {
		available = probeAvailable()
		perfCores = probePerformanceCores()
	})
}

// probeAvailable is a best-effort capability probe distinct from the
// root package's brand-string detection: it exists so the enable
// scope (§4.3) has its own one-shot gate, matching the teacher's
// per-package detect_amd64.go pattern rather than reaching across a
// package boundary into the root package's richer AMXVersion query.
func probeAvailable() bool {
	brand, err := syscall.Sysctl("machdep.cpu.brand_string")
	if err != nil || brand == "" {
		return false
	}
	return true
}

func probePerformanceCores() int {
	n, err := unix.SysctlUint32("hw.perflevel0.physicalcpu")
	if err != nil || n == 0 {
		return 1
	}
	if n > 16 {
		n = 16
	}
	return int(n)
}

// Available reports whether the AMX enable scope can be opened on
// this machine. Cached after the first call.
func Available() bool {
	detect()
	return available
}

// PerformanceCores returns the detected performance-core count,
// clamped to [1, 16].
func PerformanceCores() int {
	detect()
	return perfCores
}
