//go:build amd64 && !purego

package cpuid

// readCycleCounter reads the CPU timestamp counter using RDTSC.
// Implemented in cycles_amd64.s
//
//go:noescape
func readCycleCounter() int64

// getCounterFrequencyHz returns 0 on amd64: the TSC frequency is not
// architecturally readable, so conversion calibrates against wall time.
func getCounterFrequencyHz() int64 {
	return 0
}
