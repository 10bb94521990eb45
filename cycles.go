package cpuid

import (
	"sync"
	"time"
)

// ReadCycleCounter reads the CPU's cycle counter (TSC on x86, CNTVCT on
// ARM). This provides high-precision timing for micro-benchmarking.
// On platforms without assembly support, falls back to time.Now().
func ReadCycleCounter() int64 {
	return readCycleCounter()
}

// CyclesSince returns the number of cycles elapsed since the given start
// cycle count.
func CyclesSince(start int64) int64 {
	return readCycleCounter() - start
}

// CyclesToNanoseconds converts a cycle count to approximate nanoseconds.
// The conversion factor is determined on first use: ARM64 reads the
// hardware frequency register, AMD64 calibrates against wall time. The
// result is approximate and should only be used for reporting purposes.
func CyclesToNanoseconds(cycles int64) int64 {
	calibrateOnce.Do(calibrate)

	if counterFrequencyHz != 0 {
		// ARM64 path: counter runs at a fixed frequency (CNTFRQ_EL0)
		// nanoseconds = cycles * (1e9 / freqHz) = (cycles * 1e9) / freqHz
		return (cycles * 1_000_000_000) / counterFrequencyHz
	}

	if cyclesPerNanosecond == 0 {
		// Fallback when using time.Now() - cycles are already in nanoseconds
		return cycles
	}

	// AMD64 path: TSC runs at CPU frequency, calibrated on first use
	return cycles / cyclesPerNanosecond
}

var (
	calibrateOnce sync.Once

	// counterFrequencyHz is the counter frequency in Hz. Nonzero only on
	// platforms with a readable frequency register (ARM64).
	counterFrequencyHz int64

	// cyclesPerNanosecond is the calibrated CPU frequency in cycles/ns.
	// Used on AMD64.
	cyclesPerNanosecond int64
)

// calibrate determines the relationship between cycle counts and wall
// time. Runs once, on the first conversion, so that importing the package
// carries no startup cost.
func calibrate() {
	counterFrequencyHz = getCounterFrequencyHz()
	if counterFrequencyHz != 0 {
		return
	}

	// Measure cycles over a known time period.
	const calibrationDuration = 10 * time.Millisecond

	start := time.Now()
	startCycles := readCycleCounter()

	for time.Since(start) < calibrationDuration {
		// Spin
	}

	cycles := readCycleCounter() - startCycles
	nanoseconds := time.Since(start).Nanoseconds()

	if nanoseconds > 0 && cycles > 0 {
		cyclesPerNanosecond = cycles / nanoseconds
	}

	// If calibration failed or the time.Now() fallback is in use,
	// cyclesPerNanosecond remains 0 and conversion is a no-op.
}
