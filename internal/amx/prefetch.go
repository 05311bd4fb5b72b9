package amx

// prefetchR is a software prefetch hint for the address the k-loop
// will dereference eight steps from now. amx.c reaches this via
// __builtin_prefetch; Go's arm64 assembler has no stable PRFM mnemonic
// across toolchain versions to mirror that reliably, so this is a
// deliberate no-op rather than a fragile WORD-encoded guess. It stays
// a named call so the micro-kernel's control flow matches the source
// exactly, and so a real prefetch can be wired in later without
// touching the kernel.
func prefetchR(addr uintptr) {
	_ = addr
}
