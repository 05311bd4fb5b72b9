//go:build darwin && arm64

package goamx

import (
	"strings"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// AMXVersion tags the Apple Silicon generation AMX detection found,
// or AMXNone if the coprocessor is not present at all (spec §6).
type AMXVersion int

const (
	// AMXNone means this is not Apple Silicon; AMX is not present.
	AMXNone AMXVersion = iota
	// AMXUnknown means Apple Silicon was detected but the generation
	// could not be matched against a known model string.
	AMXUnknown
	AMXM1
	AMXM2
	AMXM3
	AMXM4
)

func (v AMXVersion) String() string {
	switch v {
	case AMXNone:
		return "None"
	case AMXUnknown:
		return "Unknown"
	case AMXM1:
		return "M1"
	case AMXM2:
		return "M2"
	case AMXM3:
		return "M3"
	case AMXM4:
		return "M4"
	default:
		return "Unknown"
	}
}

var (
	versionOnce   sync.Once
	detectedVer   AMXVersion
	perfCoreCount int
)

func detectVersion() AMXVersion {
	brand, err := syscall.Sysctl("machdep.cpu.brand_string")
	if err != nil || !strings.Contains(brand, "Apple") {
		return AMXNone
	}
	switch {
	case strings.Contains(brand, "M1"):
		return AMXM1
	case strings.Contains(brand, "M2"):
		return AMXM2
	case strings.Contains(brand, "M3"):
		return AMXM3
	case strings.Contains(brand, "M4"):
		return AMXM4
	default:
		return AMXUnknown
	}
}

func detectPerfCores() int {
	n, err := unix.SysctlUint32("hw.perflevel0.physicalcpu")
	if err != nil || n == 0 {
		return 1
	}
	if n > MaxPerformanceCores {
		n = MaxPerformanceCores
	}
	return int(n)
}

func ensureDetected() {
	versionOnce.Do(func() {
		detectedVer = detectVersion()
		perfCoreCount = detectPerfCores()
	})
}

// Detect returns the cached AMX generation tag for this host.
func Detect() AMXVersion {
	ensureDetected()
	return detectedVer
}

// IsAMXAvailable reports whether Detect returned anything other than
// AMXNone.
func IsAMXAvailable() bool {
	return Detect() != AMXNone
}

// PerformanceCores returns the detected performance-core count,
// clamped to [1, MaxPerformanceCores].
func PerformanceCores() int {
	ensureDetected()
	return perfCoreCount
}
