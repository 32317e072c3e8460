package nrf51

import (
	"testing"

	"nrfppi/domain"
	"nrfppi/regs"
	"nrfppi/regs/sim"
)

func TestTableBuildsRegistry(t *testing.T) {
	r, err := domain.NewRegistry(Table, sim.NewBus())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if r.Chip() != "nrf51" {
		t.Fatalf("chip = %q", r.Chip())
	}
	c, ok := r.Controller(domain.MCUID)
	if !ok {
		t.Fatal("no MCU controller")
	}
	if _, fork := c.(regs.ForkController); fork != false {
		t.Fatalf("fork controller = %v, want false", fork)
	}
	for _, m := range Table.Peripherals {
		if id, ok := r.DomainOf(m.Peripheral); !ok || id != domain.MCUID {
			t.Fatalf("DomainOf(%s) = %d, %v", m.Peripheral, id, ok)
		}
	}
}

func TestInstancesMatchTable(t *testing.T) {
	if uintptr(TIMER0.Base) != Table.Peripherals[4].Base || Table.Peripherals[4].Peripheral != "TIMER0" {
		t.Fatalf("TIMER0 base %#x disagrees with table", TIMER0.Base)
	}
	if got := NewMCUPool().Available(); got != 16 {
		t.Fatalf("pool size = %d, want 16", got)
	}
}
