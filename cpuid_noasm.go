//go:build (!amd64 && !386) || purego

package cpuid

const hasAsm = false

// cpuid fallback for builds without an assembly backend (non-x86
// architectures and purego). The CPUID instruction cannot be executed
// directly, so all registers read as zero.
func cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}

// xgetbv fallback for builds without an assembly backend.
func xgetbv(selector uint32) (eax, edx uint32) {
	return 0, 0
}
