//go:build !amd64 || noasm

package scanner

import "github.com/biggeezerdevelopment/simdescape/internal/buffer"

// hasAVX2 returns false for builds without the vector kernels
func hasAVX2() bool {
	return false
}

// hasSSE2 returns false for builds without the vector kernels
func hasSSE2() bool {
	return false
}

// SSE2 falls back to the portable scanner for builds without the vector kernels
func SSE2(s string, buf *buffer.Buffer) {
	Portable(s, buf)
}

// AVX2 falls back to the portable scanner for builds without the vector kernels
func AVX2(s string, buf *buffer.Buffer) {
	Portable(s, buf)
}
