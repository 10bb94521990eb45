package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	cpuid "github.com/cwbudde/algo-cpuid"
)

func main() {
	var (
		leafArg    = flag.String("leaf", "", "dump a single leaf (accepts 0x prefix); default dumps all reported leaves")
		subleafArg = flag.Uint("subleaf", 0, "sub-leaf selector, used with -leaf")
		withXCR    = flag.Bool("xcr0", false, "also dump XCR0 when OSXSAVE is enabled")
	)
	flag.Parse()

	if !cpuid.Supported() {
		fmt.Fprintln(os.Stderr, "cpuidump: no CPUID backend on this platform")
		os.Exit(1)
	}

	if *leafArg != "" {
		leaf, err := strconv.ParseUint(*leafArg, 0, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cpuidump: bad -leaf %q: %v\n", *leafArg, err)
			os.Exit(2)
		}
		dump(uint32(leaf), uint32(*subleafArg))
	} else {
		maxBasic, _, _, _ := cpuid.IdentifyLeaf(0)
		for leaf := uint32(0); leaf <= maxBasic; leaf++ {
			dump(leaf, 0)
		}

		maxExt, _, _, _ := cpuid.IdentifyLeaf(0x80000000)
		for leaf := uint32(0x80000000); leaf >= 0x80000000 && leaf <= maxExt; leaf++ {
			dump(leaf, 0)
		}
	}

	if *withXCR {
		_, _, ecx, _ := cpuid.Identify(1, 0)
		if ecx&(1<<27) == 0 {
			fmt.Println("XCR0: unavailable (OSXSAVE not enabled)")
			return
		}
		fmt.Printf("XCR0: %#016x\n", cpuid.ReadXCR(cpuid.XCR0))
	}
}

// dump prints the raw register values for one leaf/sub-leaf pair.
// No interpretation of the bits is attempted.
func dump(leaf, subleaf uint32) {
	eax, ebx, ecx, edx := cpuid.Identify(leaf, subleaf)
	fmt.Printf("%#010x.%d  eax=%#010x ebx=%#010x ecx=%#010x edx=%#010x\n",
		leaf, subleaf, eax, ebx, ecx, edx)
}
