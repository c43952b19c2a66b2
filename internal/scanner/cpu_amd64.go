//go:build amd64 && !noasm

package scanner

import (
	"golang.org/x/sys/cpu"
)

func hasAVX2() bool {
	return guaranteedAVX2 || cpu.X86.HasAVX2
}

func hasSSE2() bool {
	return cpu.X86.HasSSE2
}
