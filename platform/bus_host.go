//go:build !tinygo

package platform

import (
	"nrfppi/regs"
	"nrfppi/regs/sim"
)

func newBus() regs.Bus { return sim.NewBus() }
