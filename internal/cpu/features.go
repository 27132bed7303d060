// Package cpu reports the processor features the transform kernels care
// about.
package cpu

import (
	"os"
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// ForceGenericEnv disables fused multiply-add and SIMD reporting when set to
// a non-empty value. Useful for comparing the scalar path on FMA hardware.
const ForceGenericEnv = "SRFFT_FORCE_GENERIC"

// Features describes the detected CPU capabilities.
type Features struct {
	HasFMA       bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasSSE2      bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features
)

// DetectFeatures reports the available CPU features for the current process.
// The result is computed once and cached.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
		if os.Getenv(ForceGenericEnv) != "" {
			detected.ForceGeneric = true
		}
	})

	return detected
}

// FusedMultiplyAdd reports whether math.FMA compiles to a hardware
// instruction. Without it math.FMA runs a slow exact software emulation.
func (f Features) FusedMultiplyAdd() bool {
	return f.HasFMA && !f.ForceGeneric
}

// VectorWidth returns the widest float64 lane count the CPU supports:
// 4 with AVX, 2 with SSE2 or NEON, 1 otherwise.
func (f Features) VectorWidth() int {
	switch {
	case f.ForceGeneric:
		return 1
	case f.HasAVX:
		return 4
	case f.HasSSE2, f.HasNEON:
		return 2
	default:
		return 1
	}
}

func detectFeaturesImpl() Features {
	return Features{
		HasFMA:       hasFMA(runtime.GOARCH),
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// hasFMA follows the compiler's intrinsic table for math.FMA: guarded by a
// CPUID check on amd64 and unconditional on the listed RISC targets.
func hasFMA(arch string) bool {
	switch arch {
	case "amd64":
		return cpu.X86.HasFMA
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		return true
	default:
		return false
	}
}
