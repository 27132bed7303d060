package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFeaturesCached(t *testing.T) {
	t.Parallel()

	a := DetectFeatures()
	b := DetectFeatures()

	assert.Equal(t, a, b)
	assert.Equal(t, runtime.GOARCH, a.Architecture)
}

func TestHasFMAByArchitecture(t *testing.T) {
	t.Parallel()

	assert.True(t, hasFMA("arm64"))
	assert.True(t, hasFMA("s390x"))
	assert.False(t, hasFMA("386"))
	assert.False(t, hasFMA("wasm"))
}

func TestForceGenericOverrides(t *testing.T) {
	t.Parallel()

	f := Features{HasFMA: true, HasAVX: true, HasSSE2: true}
	assert.True(t, f.FusedMultiplyAdd())
	assert.Equal(t, 4, f.VectorWidth())

	f.ForceGeneric = true
	assert.False(t, f.FusedMultiplyAdd())
	assert.Equal(t, 1, f.VectorWidth())
}

func TestVectorWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    Features
		want int
	}{
		{"none", Features{}, 1},
		{"sse2", Features{HasSSE2: true}, 2},
		{"neon", Features{HasNEON: true}, 2},
		{"avx", Features{HasAVX: true, HasSSE2: true}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.f.VectorWidth())
		})
	}
}
