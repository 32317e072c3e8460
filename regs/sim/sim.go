// Package sim is a host-side register bus. Plain addresses behave like RAM;
// PPI controllers added with AddPPI get the write-one-to-set and
// write-one-to-clear behaviour of CHENSET and CHENCLR.
package sim

import (
	"sync"

	"nrfppi/regs"
)

// Access is one journalled store.
type Access struct {
	Addr  uintptr
	Value uint32
}

// Bus implements regs.Bus in memory.
type Bus struct {
	mu        sync.Mutex
	mem       map[uintptr]uint32
	alias     map[uintptr]alias
	journal   []Access
	observers []observer
	nextObs   uint64
}

type observer struct {
	id uint64
	fn func(addr uintptr, v uint32)
}

type aliasKind uint8

const (
	aliasSet aliasKind = iota + 1
	aliasClr
)

// alias redirects a set/clear register onto its bitmap.
type alias struct {
	kind   aliasKind
	target uintptr
}

// NewBus returns an empty bus; every address reads zero until written.
func NewBus() *Bus {
	return &Bus{
		mem:   make(map[uintptr]uint32),
		alias: make(map[uintptr]alias),
	}
}

// AddPPI gives the controller at base its CHENSET/CHENCLR semantics.
func (b *Bus) AddPPI(base uintptr) {
	b.mu.Lock()
	defer b.mu.Unlock()
	chen := base + regs.OffsetCHEN
	b.alias[base+regs.OffsetCHENSET] = alias{kind: aliasSet, target: chen}
	b.alias[base+regs.OffsetCHENCLR] = alias{kind: aliasClr, target: chen}
}

func (b *Bus) Load(addr uintptr) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a, ok := b.alias[addr]; ok {
		// Reading CHENSET/CHENCLR returns the channel enable state.
		return b.mem[a.target]
	}
	return b.mem[addr]
}

func (b *Bus) Store(addr uintptr, v uint32) {
	b.mu.Lock()
	if a, ok := b.alias[addr]; ok {
		switch a.kind {
		case aliasSet:
			b.mem[a.target] |= v
		case aliasClr:
			b.mem[a.target] &^= v
		}
	} else {
		b.mem[addr] = v
	}
	b.journal = append(b.journal, Access{Addr: addr, Value: v})
	obs := b.observers
	b.mu.Unlock()

	for _, o := range obs {
		o.fn(addr, v)
	}
}

// Observe registers fn to run after every store, outside the bus lock so it
// may read registers. The returned func removes it.
func (b *Bus) Observe(fn func(addr uintptr, v uint32)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextObs++
	id := b.nextObs
	// Copy on write: Store iterates a snapshot.
	next := make([]observer, 0, len(b.observers)+1)
	next = append(next, b.observers...)
	b.observers = append(next, observer{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		out := make([]observer, 0, len(b.observers))
		for _, o := range b.observers {
			if o.id != id {
				out = append(out, o)
			}
		}
		b.observers = out
	}
}

// Journal returns a copy of every store since the last reset.
func (b *Bus) Journal() []Access {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Access(nil), b.journal...)
}

// ResetJournal drops the recorded stores.
func (b *Bus) ResetJournal() {
	b.mu.Lock()
	b.journal = b.journal[:0]
	b.mu.Unlock()
}
