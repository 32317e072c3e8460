//go:build !tinygo

package platform

import (
	"errors"
	"testing"

	"nrfppi/domain"
	"nrfppi/errcode"
	"nrfppi/periph"
	"nrfppi/ppi"
	"nrfppi/regs/sim"
)

func TestInitInstallsSelectedTable(t *testing.T) {
	r := MustInit()
	if r.Chip() != Chip() {
		t.Fatalf("registry chip %q, selected %q", r.Chip(), Chip())
	}
	if domain.Active() != r {
		t.Fatal("registry not installed")
	}
	again, err := Init()
	if err != nil || again != r {
		t.Fatalf("second Init = %p, %v", again, err)
	}
	if _, ok := Bus().(*sim.Bus); !ok {
		t.Fatalf("host bus is %T", Bus())
	}
}

func TestPoolWiring(t *testing.T) {
	MustInit()
	pool := Pool()
	ch, err := pool.Claim()
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	timer, err := periph.Lookup[domain.MCU]("TIMER1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	gpiote, err := periph.Lookup[domain.MCU]("GPIOTE")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	p := ppi.NewOneToOne(ch, periph.Timer[domain.MCU]{Instance: timer}.EventCompare(0), periph.GPIOTE[domain.MCU]{Instance: gpiote}.TaskOut(0))
	p.Enable()
	if !p.IsEnabled() {
		t.Fatal("channel not enabled")
	}
	p.Release()
	if pool.InUse(ch.Number()) {
		t.Fatal("release did not return the channel")
	}
}

func TestPoolIsShared(t *testing.T) {
	MustInit()
	if Pool() != Pool() {
		t.Fatal("Pool must return one allocator per process")
	}
	a, err := Pool().Claim()
	if err != nil {
		t.Fatalf("first Claim: %v", err)
	}
	b, err := Pool().Claim()
	if err != nil {
		t.Fatalf("second Claim: %v", err)
	}
	if a.Number() == b.Number() {
		t.Fatalf("two callers both got ch%d", a.Number())
	}
	Pool().Free(a)
	Pool().Free(b)

	var claimed []ppi.AnyChannel[domain.MCU]
	for {
		c, err := Pool().Claim()
		if err != nil {
			if !errors.Is(err, errcode.NoChannel) {
				t.Fatalf("exhausted pool err = %v", err)
			}
			break
		}
		claimed = append(claimed, c)
	}
	first, count := Pool().Range()
	if len(claimed) != count || claimed[0].Number() != first {
		t.Fatalf("claimed %d channels, pool covers %d", len(claimed), count)
	}
	for _, c := range claimed {
		Pool().Free(c)
	}
}
