package ppi

import "nrfppi/domain"

// Event is a hardware signal source in domain D. Its value is the address of
// the peripheral's EVENTS_x register.
type Event[D domain.Domain] struct {
	addr uint32
}

// NewEvent wraps a raw EVENTS_x register address.
func NewEvent[D domain.Domain](addr uint32) Event[D] { return Event[D]{addr: addr} }

// EventOf is NewEvent with the domain taken from the owning peripheral.
func EventOf[D domain.Domain](_ domain.Member[D], addr uint32) Event[D] {
	return Event[D]{addr: addr}
}

// Addr returns the endpoint value written into CH[n].EEP.
func (e Event[D]) Addr() uint32 { return e.addr }

// Task is a hardware action sink in domain D. Its value is the address of
// the peripheral's TASKS_x register.
type Task[D domain.Domain] struct {
	addr uint32
}

// NewTask wraps a raw TASKS_x register address.
func NewTask[D domain.Domain](addr uint32) Task[D] { return Task[D]{addr: addr} }

// TaskOf is NewTask with the domain taken from the owning peripheral.
func TaskOf[D domain.Domain](_ domain.Member[D], addr uint32) Task[D] {
	return Task[D]{addr: addr}
}

// Addr returns the endpoint value written into CH[n].TEP or FORK[n].TEP.
func (t Task[D]) Addr() uint32 { return t.addr }
