package domain

import (
	"sync/atomic"

	"nrfppi/errcode"
	"nrfppi/regs"
	"nrfppi/x/conv"
)

// Registry resolves domain IDs to controllers and peripherals to domains.
// It is immutable once built.
type Registry struct {
	chip    string
	specs   map[ID]Spec
	ids     []ID
	ctrl    map[ID]regs.Controller
	members map[string]Membership
	names   []string
}

// ppiMapper is implemented by buses that need to know where PPI blocks live
// (the simulator does, MMIO does not).
type ppiMapper interface {
	AddPPI(base uintptr)
}

// NewRegistry validates t and builds one controller per domain on bus.
func NewRegistry(t Table, bus regs.Bus) (*Registry, error) {
	const op = "domain.NewRegistry"
	r := &Registry{
		chip:    t.Chip,
		specs:   make(map[ID]Spec, len(t.Domains)),
		ctrl:    make(map[ID]regs.Controller, len(t.Domains)),
		members: make(map[string]Membership, len(t.Peripherals)),
	}
	if len(t.Domains) == 0 {
		return nil, errcode.New(errcode.UnknownDomain, op, "table "+t.Chip+" declares no domains")
	}
	for _, s := range t.Domains {
		if _, dup := r.specs[s.ID]; dup {
			return nil, errcode.New(errcode.DuplicateDomain, op, s.Name)
		}
		if s.Channels <= 0 || s.Channels > regs.MaxChannels {
			return nil, errcode.New(errcode.InvalidChannelCount, op, s.Name)
		}
		r.specs[s.ID] = s
		r.ids = append(r.ids, s.ID)
		if m, ok := bus.(ppiMapper); ok {
			m.AddPPI(s.Base)
		}
		if s.Fork {
			r.ctrl[s.ID] = regs.NewForkBlock(bus, s.Base, s.Channels)
		} else {
			r.ctrl[s.ID] = regs.NewBlock(bus, s.Base, s.Channels)
		}
	}
	for _, m := range t.Peripherals {
		if _, dup := r.members[m.Peripheral]; dup {
			return nil, errcode.New(errcode.DuplicatePeripheral, op, m.Peripheral)
		}
		if _, ok := r.specs[m.Domain]; !ok {
			return nil, errcode.New(errcode.UnknownDomain, op, m.Peripheral+" -> domain "+string(conv.AppendUint(nil, uint64(m.Domain))))
		}
		r.members[m.Peripheral] = m
		r.names = append(r.names, m.Peripheral)
	}
	return r, nil
}

// Chip returns the table's chip name.
func (r *Registry) Chip() string { return r.chip }

// Controller returns the register block of domain id.
func (r *Registry) Controller(id ID) (regs.Controller, bool) {
	c, ok := r.ctrl[id]
	return c, ok
}

// Spec returns the description of domain id.
func (r *Registry) Spec(id ID) (Spec, bool) {
	s, ok := r.specs[id]
	return s, ok
}

// Domains lists domain IDs in table order.
func (r *Registry) Domains() []ID { return append([]ID(nil), r.ids...) }

// DomainOf returns the domain of the named peripheral.
func (r *Registry) DomainOf(peripheral string) (ID, bool) {
	m, ok := r.members[peripheral]
	return m.Domain, ok
}

// Peripheral returns the membership entry of the named peripheral.
func (r *Registry) Peripheral(name string) (Membership, bool) {
	m, ok := r.members[name]
	return m, ok
}

// Peripherals lists peripheral names in table order.
func (r *Registry) Peripherals() []string { return append([]string(nil), r.names...) }

// ---- process-wide registry ----

var active atomic.Pointer[Registry]

// Install makes r the registry used by ControllerFor and returns the previous
// one (nil on first install).
func Install(r *Registry) (prev *Registry) { return active.Swap(r) }

// Active returns the installed registry or panics if none is installed.
func Active() *Registry {
	r := active.Load()
	if r == nil {
		panic("domain: " + string(errcode.RegistryNotInstalled))
	}
	return r
}

// ControllerFor returns the register block of domain D.
func ControllerFor[D Domain]() regs.Controller {
	var d D
	c, ok := Active().Controller(d.ID())
	if !ok {
		panic("domain: no controller for domain " + string(conv.AppendUint(nil, uint64(d.ID()))))
	}
	return c
}

// ForkControllerFor returns the register block of a fork-capable domain D.
// It panics if the installed table built D without the fork group.
func ForkControllerFor[D Forked]() regs.ForkController {
	c := ControllerFor[D]()
	fc, ok := c.(regs.ForkController)
	if !ok {
		panic("domain: controller has no fork group")
	}
	return fc
}
