//go:build nrf51

package platform

import (
	"nrfppi/chip/nrf51"
	"nrfppi/domain"
	"nrfppi/ppi"
)

func selectedTable() domain.Table         { return nrf51.Table }
func selectedPool() *ppi.Pool[domain.MCU] { return nrf51.NewMCUPool() }
