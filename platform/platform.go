// Package platform picks the chip table and register bus for the build and
// installs the process-wide registry. Firmware calls MustInit once at boot.
package platform

import (
	"sync"

	"nrfppi/domain"
	"nrfppi/ppi"
	"nrfppi/regs"
)

var (
	once    sync.Once
	reg     *domain.Registry
	bus     regs.Bus
	pool    *ppi.Pool[domain.MCU]
	initErr error
)

// Init builds and installs the registry for the selected chip. Later calls
// return the first result.
func Init() (*domain.Registry, error) {
	once.Do(func() {
		bus = newBus()
		reg, initErr = domain.NewRegistry(selectedTable(), bus)
		if initErr == nil {
			domain.Install(reg)
			pool = selectedPool()
		}
	})
	return reg, initErr
}

// MustInit is Init for boot code.
func MustInit() *domain.Registry {
	r, err := Init()
	if err != nil {
		panic("platform: " + err.Error())
	}
	return r
}

// Bus returns the register bus the registry was built on. Peripheral
// configuration registers go through the same bus.
func Bus() regs.Bus {
	MustInit()
	return bus
}

// Chip names the selected chip table.
func Chip() string { return selectedTable().Chip }

// Pool returns the process-wide allocator for the configurable channels of
// the MCU domain. Every caller shares it, so no two claims get the same
// channel.
func Pool() *ppi.Pool[domain.MCU] {
	MustInit()
	return pool
}
