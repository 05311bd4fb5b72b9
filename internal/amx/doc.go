// Package amx drives Apple's undocumented AMX coprocessor to compute
// dense f32 matrix multiplies. It is split into a platform-independent
// layer (operand encoding, panel packing) and a darwin/arm64-only
// layer (raw opcode issue, the enable/disable scope, the micro-kernel,
// and the tile scheduler), with stand-ins on every other platform so
// the rest of the module always has something to call.
//
// Callers outside this module should use the root goamx package's
// Matmul, which falls back to a scalar implementation when this
// package reports the engine unavailable.
package amx
