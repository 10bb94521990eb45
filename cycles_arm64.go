//go:build arm64 && !purego

package cpuid

// readCycleCounter reads the virtual counter (CNTVCT_EL0).
// Implemented in cycles_arm64.s
//
//go:noescape
func readCycleCounter() int64

// getCounterFrequencyHz reads the counter frequency register (CNTFRQ_EL0).
// Implemented in cycles_arm64.s
//
//go:noescape
func getCounterFrequencyHz() int64
