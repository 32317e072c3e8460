package sim

import (
	"testing"

	"nrfppi/regs"
)

const base = 0x4001_F000

func TestSetClearAliases(t *testing.T) {
	b := NewBus()
	b.AddPPI(base)

	b.Store(base+regs.OffsetCHENSET, 1<<3)
	b.Store(base+regs.OffsetCHENSET, 1<<5)
	if got := b.Load(base + regs.OffsetCHEN); got != 1<<3|1<<5 {
		t.Fatalf("CHEN = %#x", got)
	}
	if got := b.Load(base + regs.OffsetCHENSET); got != 1<<3|1<<5 {
		t.Fatalf("CHENSET read = %#x, want CHEN mirror", got)
	}
	b.Store(base+regs.OffsetCHENCLR, 1<<3)
	if got := b.Load(base + regs.OffsetCHEN); got != 1<<5 {
		t.Fatalf("CHEN after clear = %#x", got)
	}
}

func TestPlainMemoryAndJournal(t *testing.T) {
	b := NewBus()
	if b.Load(0x1000) != 0 {
		t.Fatal("unwritten address should read zero")
	}
	b.Store(0x1000, 7)
	b.Store(0x1004, 9)
	if b.Load(0x1000) != 7 || b.Load(0x1004) != 9 {
		t.Fatal("store/load mismatch")
	}
	j := b.Journal()
	if len(j) != 2 || j[0] != (Access{Addr: 0x1000, Value: 7}) || j[1].Addr != 0x1004 {
		t.Fatalf("journal = %+v", j)
	}
	b.ResetJournal()
	if len(b.Journal()) != 0 {
		t.Fatal("journal not reset")
	}
}

func TestObserve(t *testing.T) {
	b := NewBus()
	var seen []uint32
	cancelA := b.Observe(func(addr uintptr, v uint32) {
		// Reading inside the callback must not deadlock.
		seen = append(seen, b.Load(addr))
	})
	hits := 0
	cancelB := b.Observe(func(uintptr, uint32) { hits++ })

	b.Store(0x10, 1)
	cancelA()
	b.Store(0x10, 2)
	cancelB()
	b.Store(0x10, 3)

	if len(seen) != 1 || seen[0] != 1 {
		t.Fatalf("observer A saw %v", seen)
	}
	if hits != 2 {
		t.Fatalf("observer B hits = %d", hits)
	}
}
