//go:build !amd64.v3 || noasm

package scanner

const guaranteedAVX2 = false
