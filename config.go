package goamx

// Matrix storage and tiling constants (spec §3, §4.4, §4.7).
const (
	// TileSize is the output-tile dimension the AMX micro-kernel
	// computes in one call.
	TileSize = 16

	// StorageAlignment is the byte alignment required of every
	// Matrix's backing buffer.
	StorageAlignment = 64

	// MaxPerformanceCores clamps the worker count the tile scheduler
	// will ever use, independent of what the OS reports.
	MaxPerformanceCores = 16

	// SingleThreadRowCutoff is the row count at or below which the
	// scheduler runs a single inline worker instead of dispatching
	// across performance cores.
	SingleThreadRowCutoff = 64
)

// Numerical constants used by the testable-property checks (spec §8).
const (
	// Float32Epsilon is the machine epsilon for float32.
	Float32Epsilon = 1.192092896e-07

	// ScalarConsistencyTolerance is the absolute tolerance between the
	// AMX result and the scalar reference for inputs of magnitude <= 1.
	ScalarConsistencyTolerance = 1e-3
)
