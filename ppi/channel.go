package ppi

import (
	"nrfppi/domain"
	"nrfppi/regs"
)

// Channel is exclusive ownership of one channel number in domain D.
type Channel[D domain.Domain] interface {
	domain.Member[D]
	Number() int
}

// Configurable is a Channel whose CH[n].EEP and CH[n].TEP are writable.
type Configurable[D domain.Domain] interface {
	Channel[D]
	configurable()
}

// StaticChannel is a pre-programmed channel (nRF52 channels 20..31). Its
// EEP/TEP are fixed in silicon; only the fork output can be set.
type StaticChannel[D domain.Domain] struct {
	domain.In[D]
	n uint8
}

// Fixed binds pre-programmed channel n. The caller owns n from here on.
func Fixed[D domain.Domain](n int) StaticChannel[D] {
	return StaticChannel[D]{n: checkNumber(n)}
}

func (c StaticChannel[D]) Number() int { return int(c.n) }

// AnyChannel is a configurable channel, either reserved at build time or
// claimed from a Pool. A claimed channel carries the generation of its claim
// so a stale copy cannot act on a later owner's channel.
type AnyChannel[D domain.Domain] struct {
	domain.In[D]
	n    uint8
	gen  uint32
	pool *Pool[D]
}

// Reserve binds configurable channel n for a fixed purpose. Numbers handed out
// by Reserve must not overlap any Pool range in the same domain.
func Reserve[D domain.Domain](n int) AnyChannel[D] {
	return AnyChannel[D]{n: checkNumber(n)}
}

func (c AnyChannel[D]) Number() int { return int(c.n) }
func (AnyChannel[D]) configurable() {}

func (c AnyChannel[D]) bind() {
	if c.pool != nil && !c.pool.bind(int(c.n), c.gen) {
		panic("ppi: channel not claimed or already wired")
	}
}

func (c AnyChannel[D]) current() bool {
	return c.pool == nil || c.pool.current(int(c.n), c.gen)
}

// free hands a pool-claimed channel back; reserved channels have no pool.
func (c AnyChannel[D]) free() {
	if c.pool != nil {
		c.pool.release(int(c.n), c.gen)
	}
}

// claim is implemented by channels whose ownership a Pool tracks.
type claim interface {
	bind()
	current() bool
	free()
}

func checkNumber(n int) uint8 {
	if n < 0 || n >= regs.MaxChannels {
		panic("ppi: channel number out of range")
	}
	return uint8(n)
}
