//go:build amd64 && !noasm

package scanner

import "github.com/biggeezerdevelopment/simdescape/internal/buffer"

//go:noescape
func signalMaskSSE2(p *byte) uint32

//go:noescape
func signalMaskAVX2(p *byte) uint32

// SSE2 escapes s sixteen bytes per step. The CPU must support SSE2.
func SSE2(s string, buf *buffer.Buffer) {
	scanVector(s, buf, SSE2ChunkSize, signalMaskSSE2)
}

// AVX2 escapes s thirty-two bytes per step. Only call it when
// Supported(TierAVX2) reports true.
func AVX2(s string, buf *buffer.Buffer) {
	scanVector(s, buf, AVX2ChunkSize, signalMaskAVX2)
}
