// Package cpuid exposes the raw x86 capability-probe instructions.
//
// Two primitives are provided: Identify issues the CPUID instruction with
// explicit leaf and sub-leaf selectors and returns the four registers the
// instruction overwrites, and ReadXCR issues XGETBV to read an extended
// control register. The package returns raw register values only;
// interpreting the bits into named features is left entirely to the caller.
//
// On architectures without an assembly backend, and under the purego build
// tag, the operations return all-zero values. Supported reports whether a
// real backend is compiled in.
//
// The package also exposes the processor cycle counter (TSC on x86, the
// virtual counter on ARM64) for micro-benchmarking probe consumers.
package cpuid
