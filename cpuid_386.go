//go:build 386 && !purego

package cpuid

const hasAsm = true

// cpuid executes the CPUID instruction with the given EAX and ECX inputs.
// Returns EAX, EBX, ECX, EDX outputs.
// Defined in cpuid_386.s
//
//go:noescape
func cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

// xgetbv executes the XGETBV instruction with the XCR selector in ECX.
// Returns the low (EAX) and high (EDX) halves of the register.
// Defined in cpuid_386.s
//
//go:noescape
func xgetbv(selector uint32) (eax, edx uint32)
