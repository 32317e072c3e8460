// Package periph derives PPI endpoints from nRF peripheral instances. An
// endpoint is the absolute address of a TASKS_x or EVENTS_x register, so each
// helper is the instance base plus a fixed offset.
package periph

import (
	"nrfppi/domain"
	"nrfppi/errcode"
	"nrfppi/ppi"
	"nrfppi/regs"
)

// Instance is one peripheral at Base in domain D.
type Instance[D domain.Domain] struct {
	domain.In[D]
	Name string
	Base uint32
}

// Event returns the EVENTS_x register at off as a PPI event.
func (p Instance[D]) Event(off uint32) ppi.Event[D] { return ppi.EventOf[D](p, p.Base+off) }

// Task returns the TASKS_x register at off as a PPI task.
func (p Instance[D]) Task(off uint32) ppi.Task[D] { return ppi.TaskOf[D](p, p.Base+off) }

// Reg returns a configuration register of the instance.
func (p Instance[D]) Reg(bus regs.Bus, off uint32) regs.Register {
	return regs.At(bus, uintptr(p.Base+off))
}

// Lookup finds a peripheral in the installed registry and checks at run time
// that it belongs to D. It serves callers that only know peripheral names,
// such as configuration-driven wiring.
func Lookup[D domain.Domain](name string) (Instance[D], error) {
	const op = "periph.Lookup"
	m, ok := domain.Active().Peripheral(name)
	if !ok {
		return Instance[D]{}, errcode.New(errcode.UnknownPeripheral, op, name)
	}
	var d D
	if m.Domain != d.ID() {
		return Instance[D]{}, errcode.New(errcode.UnknownDomain, op, name+" belongs to another domain")
	}
	return Instance[D]{Name: name, Base: uint32(m.Base)}, nil
}
