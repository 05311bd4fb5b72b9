//go:build arm64

package goamx

import "golang.org/x/sys/cpu"

// CPUFeatures reports the SIMD capabilities golang.org/x/sys/cpu can
// see on this host. The scalar Matrix algebra (add/sub/scale/negate,
// spec §6) stays plain Go regardless — NEON is queried only so
// diagnostics and the CLI's detect command can report it.
type CPUFeatures struct {
	HasNEON bool
	HasFP16 bool
}

// DetectARM64Features reports NEON (ASIMD) and half-precision SIMD
// support.
func DetectARM64Features() (hasNEON, hasFP16 bool) {
	hasNEON = cpu.ARM64.HasASIMD
	hasFP16 = cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP
	return hasNEON, hasFP16
}

func getCPUFeatures() CPUFeatures {
	hasNEON, hasFP16 := DetectARM64Features()
	return CPUFeatures{HasNEON: hasNEON, HasFP16: hasFP16}
}

// Features returns the host's detected SIMD capabilities.
func Features() CPUFeatures {
	return getCPUFeatures()
}
