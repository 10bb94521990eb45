package cpuid

// XCR0 selects the extended control register that governs which processor
// state components (x87, SSE, AVX, ...) the operating system has enabled
// for save and restore.
const XCR0 uint32 = 0

// Identify executes the CPUID instruction with leaf in EAX and subleaf in
// ECX and returns the four registers the instruction overwrites.
//
// EAX and ECX are input/output registers: their input values do not survive
// the call. EBX and EDX are pure outputs. CPUID cannot fault for any input
// value; leaves above the processor's reported maximum return defined
// (typically zero) values, so no validation is performed here. Pass
// subleaf 0 for leaves that are not subdivided.
func Identify(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return cpuid(leaf, subleaf)
}

// IdentifyLeaf is a convenience wrapper for leaves without sub-leaves.
// It forwards sub-leaf 0 to Identify.
func IdentifyLeaf(leaf uint32) (eax, ebx, ecx, edx uint32) {
	return cpuid(leaf, 0)
}

// ReadXCR executes the XGETBV instruction with the given selector in ECX
// and returns the 64-bit register value assembled from the EDX:EAX halves.
//
// Precondition: the processor and operating system must have enabled the
// XSAVE feature set (CPUID leaf 1, ECX bit 27, OSXSAVE) before XGETBV may
// be executed; otherwise the instruction raises an invalid-opcode fault at
// the hardware level. ReadXCR performs no check of its own — callers must
// verify the OSXSAVE bit via Identify first.
func ReadXCR(selector uint32) uint64 {
	eax, edx := xgetbv(selector)
	return uint64(edx)<<32 | uint64(eax)
}

// Supported reports whether an assembly backend for the probe instructions
// is compiled into this binary. When it returns false (non-x86
// architectures and purego builds), Identify and ReadXCR return all-zero
// values.
func Supported() bool {
	return hasAsm
}
