// Package goamx exposes Apple's undocumented AMX (Apple Matrix
// Coprocessor) as a dense single-precision matrix engine.
//
// The public surface is a value-type Matrix and a Matmul entry point
// that dispatches to the AMX tile scheduler when the hardware and
// shape permit it, falling back to a scalar implementation otherwise.
// The AMX instruction issue, operand encoding, enable/disable scope,
// panel packing, and the 16x16xK micro-kernel live in
// internal/amx and are not part of this package's contract.
package goamx
