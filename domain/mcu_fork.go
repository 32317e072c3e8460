//go:build !nrf51

package domain

// ForkCapable marks MCU as having the fork group. nRF51 PPI has none.
func (MCU) ForkCapable() {}
