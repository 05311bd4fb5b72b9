//go:build darwin && arm64

// Package amx issues Apple AMX coprocessor instructions directly and
// orchestrates the register-file traffic of a dense f32 matmul
// micro-kernel. Everything in this file binds a pre-encoded 64-bit
// operand to the architectural register the AMX opcode reads from;
// see raw_arm64.s for the actual instruction words.
package amx

// Ldx issues the AMX LDX opcode with the given pre-encoded operand.
func Ldx(operand uint64)

// Ldy issues the AMX LDY opcode with the given pre-encoded operand.
func Ldy(operand uint64)

// Stx issues the AMX STX opcode with the given pre-encoded operand.
func Stx(operand uint64)

// Sty issues the AMX STY opcode with the given pre-encoded operand.
func Sty(operand uint64)

// Ldz issues the AMX LDZ opcode with the given pre-encoded operand.
func Ldz(operand uint64)

// Stz issues the AMX STZ opcode with the given pre-encoded operand.
func Stz(operand uint64)

// Ldzi issues the AMX LDZI opcode with the given pre-encoded operand.
func Ldzi(operand uint64)

// Stzi issues the AMX STZI opcode with the given pre-encoded operand.
func Stzi(operand uint64)

// Extrx issues the AMX EXTRX opcode with the given pre-encoded operand.
func Extrx(operand uint64)

// Extry issues the AMX EXTRY opcode with the given pre-encoded operand.
func Extry(operand uint64)

// Fma64 issues the AMX FMA64 opcode with the given pre-encoded operand.
func Fma64(operand uint64)

// Fms64 issues the AMX FMS64 opcode with the given pre-encoded operand.
func Fms64(operand uint64)

// Fma32 issues the AMX FMA32 opcode with the given pre-encoded operand.
func Fma32(operand uint64)

// Fms32 issues the AMX FMS32 opcode with the given pre-encoded operand.
func Fms32(operand uint64)

// Mac16 issues the AMX MAC16 opcode with the given pre-encoded operand.
func Mac16(operand uint64)

// Fma16 issues the AMX FMA16 opcode with the given pre-encoded operand.
func Fma16(operand uint64)

// Fms16 issues the AMX FMS16 opcode with the given pre-encoded operand.
func Fms16(operand uint64)

// Vecint issues the AMX VECINT opcode with the given pre-encoded operand.
func Vecint(operand uint64)

// Vecfp issues the AMX VECFP opcode with the given pre-encoded operand.
func Vecfp(operand uint64)

// Matint issues the AMX MATINT opcode with the given pre-encoded operand.
func Matint(operand uint64)

// Matfp issues the AMX MATFP opcode with the given pre-encoded operand.
func Matfp(operand uint64)

// Genlut issues the AMX GENLUT opcode with the given pre-encoded operand.
func Genlut(operand uint64)

// Set enables the AMX coprocessor on the calling thread. Three no-ops
// precede the opcode to satisfy the documented pipeline hazard; callers
// must not reorder or merge them.
func Set()

// Clr disables the AMX coprocessor on the calling thread, with the
// same pipeline pad as Set.
func Clr()
