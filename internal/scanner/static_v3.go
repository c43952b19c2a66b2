//go:build amd64.v3 && !noasm

package scanner

// GOAMD64=v3 guarantees AVX2, so no runtime probe is needed.
const guaranteedAVX2 = true
