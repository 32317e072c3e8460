//go:build !nrf51 && !(nrf52 && !nrf52840)

// nRF52840 is also the host default, so the simulator and tests run against
// the largest table.

package platform

import (
	"nrfppi/chip/nrf52840"
	"nrfppi/domain"
	"nrfppi/ppi"
)

func selectedTable() domain.Table         { return nrf52840.Table }
func selectedPool() *ppi.Pool[domain.MCU] { return nrf52840.NewMCUPool() }
