//go:build tinygo

package platform

import "nrfppi/regs"

func newBus() regs.Bus { return regs.MMIO{} }
