package selftest

import (
	"fmt"
	"strings"

	"github.com/klauspost/cpuid/v2"
	sha256simd "github.com/minio/sha256-simd"
)

// HostBanner describes the machine a self-test run executed on. The core
// arithmetic never branches on any of this; it is purely informational,
// since the library targets 32-bit embedded environments that a
// developer's own machine rarely matches.
func HostBanner() string {
	return fmt.Sprintf("host: %s, %d logical CPUs, features: %s",
		cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, featureList())
}

func featureList() string {
	var feats []string
	if cpuid.CPU.Supports(cpuid.SSE2) {
		feats = append(feats, "SSE2")
	}
	if cpuid.CPU.Supports(cpuid.AVX2) {
		feats = append(feats, "AVX2")
	}
	if cpuid.CPU.Supports(cpuid.SHA) {
		feats = append(feats, "SHA")
	}
	if len(feats) == 0 {
		return "none detected"
	}
	return strings.Join(feats, ",")
}

// Digest returns a SHA-256 fingerprint over the names of the vectors a
// self-test run covered, so a report records exactly which vector set
// produced a given pass/fail outcome.
func Digest(results []Result) [32]byte {
	h := sha256simd.New()
	for _, r := range results {
		h.Write([]byte(r.Name))
		h.Write([]byte{0})
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
