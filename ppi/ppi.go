// Package ppi connects peripheral events to peripheral tasks through the
// Programmable Peripheral Interconnect, so a task fires on an event with no
// CPU involvement.
//
// A Ppi is built already wired and disabled:
//
//	ch, err := pool.Claim()
//	...
//	p := ppi.NewOneToOne(ch, timer.EventCompare(0), gpiote.TaskOut(0))
//	defer p.Release()
//	p.Enable()
//
// Release disables the channel before it clears the endpoints, and must run on
// every exit path. Pair every constructor with a deferred Release.
package ppi

import (
	"nrfppi/domain"
	"nrfppi/regs"
	"nrfppi/x/bitx"
	"nrfppi/x/conv"
)

// Ppi is one wired channel in domain D with shape S.
type Ppi[D domain.Domain, S Shape] struct {
	ch       Channel[D]
	released bool
}

// NewZeroToOne configures ch to trigger task through FORK[n].TEP. Only
// available for domains with the fork group.
func NewZeroToOne[D domain.Forked](ch Channel[D], task Task[D]) *Ppi[D, ZeroToOne] {
	r := domain.ForkControllerFor[D]()
	n := ch.Number()
	bindClaim[D](ch)
	trackWire[D](n)
	r.Fork(n).Set(task.addr)
	return &Ppi[D, ZeroToOne]{ch: ch}
}

// NewOneToOne configures ch to trigger task on event.
func NewOneToOne[D domain.Domain](ch Configurable[D], event Event[D], task Task[D]) *Ppi[D, OneToOne] {
	r := domain.ControllerFor[D]()
	n := ch.Number()
	bindClaim[D](ch)
	trackWire[D](n)
	c := r.Ch(n)
	c.EEP.Set(event.addr)
	c.TEP.Set(task.addr)
	return &Ppi[D, OneToOne]{ch: ch}
}

// NewOneToTwo configures ch to trigger both task1 and task2 on event.
func NewOneToTwo[D domain.Forked](ch Configurable[D], event Event[D], task1, task2 Task[D]) *Ppi[D, OneToTwo] {
	r := domain.ForkControllerFor[D]()
	n := ch.Number()
	bindClaim[D](ch)
	trackWire[D](n)
	c := r.Ch(n)
	c.EEP.Set(event.addr)
	c.TEP.Set(task1.addr)
	r.Fork(n).Set(task2.addr)
	return &Ppi[D, OneToTwo]{ch: ch}
}

// Number returns the channel number.
func (p *Ppi[D, S]) Number() int { return p.ch.Number() }

// Enable starts forwarding. Enabling an enabled channel has no effect.
func (p *Ppi[D, S]) Enable() {
	p.live()
	domain.ControllerFor[D]().CHENSET().Set(bitx.Mask[uint32](p.ch.Number()))
}

// Disable stops forwarding. Disabling a disabled channel has no effect.
func (p *Ppi[D, S]) Disable() {
	p.live()
	disable[D](p.ch.Number())
}

// IsEnabled reads the channel's CHEN bit.
func (p *Ppi[D, S]) IsEnabled() bool {
	return domain.ControllerFor[D]().CHEN().Bit(p.ch.Number())
}

// Released reports whether Release has run.
func (p *Ppi[D, S]) Released() bool { return p.released }

// Release disables the channel and then clears EEP, TEP and, where the
// controller has it, FORK.TEP. Clearing first could let a still-enabled
// channel fire on endpoint 0. Release never fails and is idempotent; a
// pool-claimed channel returns to its pool. A Ppi whose claim has already
// ended leaves the registers alone.
func (p *Ppi[D, S]) Release() {
	if p.released {
		return
	}
	c, pooled := p.ch.(claim)
	if pooled && !c.current() {
		// The claim already ended; the channel belongs to someone else now.
		p.released = true
		return
	}
	n := p.ch.Number()
	r := domain.ControllerFor[D]()
	disable[D](n)

	ch := r.Ch(n)
	ch.EEP.Set(0)
	ch.TEP.Set(0)
	if fc, ok := r.(regs.ForkController); ok {
		fc.Fork(n).Set(0)
	}

	p.released = true
	trackRelease[D](n)
	if pooled {
		c.free()
	}
}

// String renders e.g. "ppi d0 ch3 1->1 enabled" without fmt.
func (p *Ppi[D, S]) String() string {
	var d D
	var s S
	b := make([]byte, 0, 32)
	b = append(b, "ppi d"...)
	b = conv.AppendUint(b, uint64(d.ID()))
	b = append(b, " ch"...)
	b = conv.AppendUint(b, uint64(p.ch.Number()))
	b = append(b, ' ')
	b = conv.AppendUint(b, uint64(s.Events()))
	b = append(b, "->"...)
	b = conv.AppendUint(b, uint64(s.Tasks()))
	switch {
	case p.released:
		b = append(b, " released"...)
	case p.IsEnabled():
		b = append(b, " enabled"...)
	default:
		b = append(b, " disabled"...)
	}
	return string(b)
}

func (p *Ppi[D, S]) live() {
	if p.released {
		panic("ppi: use of released channel")
	}
}

// bindClaim marks a pool claim as wired before any register is written.
func bindClaim[D domain.Domain](ch Channel[D]) {
	if c, ok := ch.(claim); ok {
		c.bind()
	}
}

func disable[D domain.Domain](n int) {
	domain.ControllerFor[D]().CHENCLR().Set(bitx.Mask[uint32](n))
}
