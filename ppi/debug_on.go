//go:build ppidebug

package ppi

const debugOwnership = true
