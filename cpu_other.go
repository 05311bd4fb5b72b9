//go:build !arm64

package goamx

// CPUFeatures reports the SIMD capabilities golang.org/x/sys/cpu can
// see on this host.
type CPUFeatures struct {
	HasNEON bool
	HasFP16 bool
}

func getCPUFeatures() CPUFeatures {
	return CPUFeatures{}
}

// Features returns the host's detected SIMD capabilities; always
// zero-valued outside arm64.
func Features() CPUFeatures {
	return getCPUFeatures()
}
