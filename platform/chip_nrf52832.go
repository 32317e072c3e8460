//go:build nrf52 && !nrf52840 && !nrf51

package platform

import (
	"nrfppi/chip/nrf52832"
	"nrfppi/domain"
	"nrfppi/ppi"
)

func selectedTable() domain.Table         { return nrf52832.Table }
func selectedPool() *ppi.Pool[domain.MCU] { return nrf52832.NewMCUPool() }
