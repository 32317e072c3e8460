// Package domain maps PPI controller instances to domains and peripherals to
// the domain their events and tasks live in.
//
// A domain is a zero-sized tag type. Channels, events and tasks carry their
// domain as a type parameter, so wiring an endpoint of one controller into a
// channel of another does not compile. The tag resolves to a register block
// through the installed Registry, which is built once from a generated chip
// Table.
package domain

// ID identifies one controller instance within a chip.
type ID uint8

// MCUID is the ID of the single domain on single-domain chips.
const MCUID ID = 0

// Domain is implemented by zero-sized tag types, one per controller.
type Domain interface {
	ID() ID
}

// Forked is a Domain whose controller has the FORK[n].TEP group.
type Forked interface {
	Domain
	ForkCapable()
}

// Member is implemented by peripheral instances that belong to domain D.
type Member[D Domain] interface {
	Domain() D
}

// In is embedded in a peripheral type to declare its domain.
type In[D Domain] struct{}

func (In[D]) Domain() D {
	var d D
	return d
}

// Of returns the domain tag a peripheral belongs to.
func Of[D Domain](m Member[D]) D { return m.Domain() }

// MCU is the domain of single-domain chips.
type MCU struct{}

func (MCU) ID() ID { return MCUID }
