// Package regs is the register-level view of a PPI controller. It treats the
// hardware as plain 32-bit words on a Bus so the same code drives real
// memory-mapped registers on TinyGo and the simulator on a host.
package regs

import "nrfppi/x/bitx"

// Bus performs 32-bit loads and stores at absolute addresses.
type Bus interface {
	Load(addr uintptr) uint32
	Store(addr uintptr, v uint32)
}

// Register is one 32-bit register on a Bus.
type Register struct {
	bus  Bus
	addr uintptr
}

// At returns the register at addr on bus.
func At(bus Bus, addr uintptr) Register { return Register{bus: bus, addr: addr} }

func (r Register) Addr() uintptr { return r.addr }
func (r Register) Get() uint32   { return r.bus.Load(r.addr) }
func (r Register) Set(v uint32)  { r.bus.Store(r.addr, v) }

// SetBits is a read-modify-write OR. Not safe against concurrent writers;
// use the dedicated set/clear registers for shared bitmaps.
func (r Register) SetBits(m uint32) { r.Set(r.Get() | m) }

// ClearBits is a read-modify-write AND NOT.
func (r Register) ClearBits(m uint32) { r.Set(r.Get() &^ m) }

func (r Register) HasBits(m uint32) bool { return r.Get()&m == m }

// Bit reports whether bit n is set.
func (r Register) Bit(n int) bool { return bitx.Has(r.Get(), n) }

// ChannelRegs is the CH[n] register pair.
type ChannelRegs struct {
	EEP Register // event endpoint
	TEP Register // task endpoint
}

// Controller is the register block every PPI variant has.
type Controller interface {
	Base() uintptr
	Channels() int
	Ch(n int) ChannelRegs
	CHEN() Register
	CHENSET() Register
	CHENCLR() Register
}

// ForkController is a Controller that also has the FORK[n].TEP group.
// nRF51 parts do not.
type ForkController interface {
	Controller
	Fork(n int) Register
}
