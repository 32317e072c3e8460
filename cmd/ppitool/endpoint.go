package main

import (
	"fmt"
	"strconv"
	"strings"

	"nrfppi/errcode"
	"nrfppi/periph"
	"nrfppi/ppi"
)

// endpointRef is a parsed PERIPH.NAME[n], PERIPH+0xOFF or 0xADDR.
type endpointRef struct {
	periph string
	name   string
	index  int
	offset uint32
	raw    bool // offset is an absolute address
	byOff  bool
}

func parseEndpoint(s string) (endpointRef, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return endpointRef{}, fmt.Errorf("endpoint %q: %w", s, err)
		}
		return endpointRef{offset: uint32(v), raw: true}, nil
	}
	if p, off, ok := strings.Cut(s, "+"); ok {
		v, err := strconv.ParseUint(off, 0, 32)
		if err != nil {
			return endpointRef{}, fmt.Errorf("endpoint %q: %w", s, err)
		}
		return endpointRef{periph: strings.ToUpper(p), offset: uint32(v), byOff: true}, nil
	}
	p, name, ok := strings.Cut(s, ".")
	if !ok || p == "" || name == "" {
		return endpointRef{}, fmt.Errorf("endpoint %q: want PERIPH.NAME, PERIPH+0xOFF or 0xADDR", s)
	}
	name = strings.ToUpper(name)
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	ref := endpointRef{periph: strings.ToUpper(p), name: name[:i], index: -1}
	if i < len(name) {
		n, err := strconv.Atoi(name[i:])
		if err != nil {
			return endpointRef{}, fmt.Errorf("endpoint %q: index: %w", s, err)
		}
		ref.index = n
	}
	return ref, nil
}

// kindOf maps an instance name onto its peripheral family.
func kindOf(name string) string {
	for _, k := range []string{"TIMER", "RTC", "GPIOTE", "SAADC", "TWIM", "EGU"} {
		if strings.HasPrefix(name, k) {
			return k
		}
	}
	return ""
}

func (s *Shell) instance(ref endpointRef) (periph.Instance[mcu], error) {
	return periph.Lookup[mcu](ref.periph)
}

func (s *Shell) event(spec string) (ppi.Event[mcu], error) {
	ref, err := parseEndpoint(spec)
	if err != nil {
		return ppi.Event[mcu]{}, err
	}
	if ref.raw {
		return ppi.NewEvent[mcu](ref.offset), nil
	}
	inst, err := s.instance(ref)
	if err != nil {
		return ppi.Event[mcu]{}, err
	}
	if ref.byOff {
		return inst.Event(ref.offset), nil
	}
	n := max(ref.index, 0)
	switch kindOf(inst.Name) + "." + ref.name {
	case "TIMER.COMPARE":
		return periph.Timer[mcu]{Instance: inst}.EventCompare(n), nil
	case "RTC.TICK":
		return periph.RTC[mcu]{Instance: inst}.EventTick(), nil
	case "RTC.OVERFLOW", "RTC.OVRFLW":
		return periph.RTC[mcu]{Instance: inst}.EventOverflow(), nil
	case "RTC.COMPARE":
		return periph.RTC[mcu]{Instance: inst}.EventCompare(n), nil
	case "GPIOTE.IN":
		return periph.GPIOTE[mcu]{Instance: inst}.EventIn(n), nil
	case "GPIOTE.PORT":
		return periph.GPIOTE[mcu]{Instance: inst}.EventPort(), nil
	case "SAADC.STARTED":
		return periph.SAADC[mcu]{Instance: inst}.EventStarted(), nil
	case "SAADC.END":
		return periph.SAADC[mcu]{Instance: inst}.EventEnd(), nil
	case "SAADC.DONE":
		return periph.SAADC[mcu]{Instance: inst}.EventDone(), nil
	case "TWIM.STOPPED":
		return periph.TWIM[mcu]{Instance: inst}.EventStopped(), nil
	case "TWIM.ERROR":
		return periph.TWIM[mcu]{Instance: inst}.EventError(), nil
	case "TWIM.LASTRX":
		return periph.TWIM[mcu]{Instance: inst}.EventLastRx(), nil
	case "TWIM.LASTTX":
		return periph.TWIM[mcu]{Instance: inst}.EventLastTx(), nil
	case "EGU.TRIGGERED":
		return periph.EGU[mcu]{Instance: inst}.EventTriggered(n), nil
	}
	return ppi.Event[mcu]{}, errcode.New(errcode.Unsupported, "event", spec)
}

func (s *Shell) task(spec string) (ppi.Task[mcu], error) {
	ref, err := parseEndpoint(spec)
	if err != nil {
		return ppi.Task[mcu]{}, err
	}
	if ref.raw {
		return ppi.NewTask[mcu](ref.offset), nil
	}
	inst, err := s.instance(ref)
	if err != nil {
		return ppi.Task[mcu]{}, err
	}
	if ref.byOff {
		return inst.Task(ref.offset), nil
	}
	n := max(ref.index, 0)
	switch kindOf(inst.Name) + "." + ref.name {
	case "TIMER.START":
		return periph.Timer[mcu]{Instance: inst}.TaskStart(), nil
	case "TIMER.STOP":
		return periph.Timer[mcu]{Instance: inst}.TaskStop(), nil
	case "TIMER.COUNT":
		return periph.Timer[mcu]{Instance: inst}.TaskCount(), nil
	case "TIMER.CLEAR":
		return periph.Timer[mcu]{Instance: inst}.TaskClear(), nil
	case "TIMER.CAPTURE":
		return periph.Timer[mcu]{Instance: inst}.TaskCapture(n), nil
	case "RTC.START":
		return periph.RTC[mcu]{Instance: inst}.TaskStart(), nil
	case "RTC.STOP":
		return periph.RTC[mcu]{Instance: inst}.TaskStop(), nil
	case "RTC.CLEAR":
		return periph.RTC[mcu]{Instance: inst}.TaskClear(), nil
	case "GPIOTE.OUT":
		return periph.GPIOTE[mcu]{Instance: inst}.TaskOut(n), nil
	case "GPIOTE.SET":
		return periph.GPIOTE[mcu]{Instance: inst}.TaskSet(n), nil
	case "GPIOTE.CLR":
		return periph.GPIOTE[mcu]{Instance: inst}.TaskClr(n), nil
	case "SAADC.START":
		return periph.SAADC[mcu]{Instance: inst}.TaskStart(), nil
	case "SAADC.SAMPLE":
		return periph.SAADC[mcu]{Instance: inst}.TaskSample(), nil
	case "SAADC.STOP":
		return periph.SAADC[mcu]{Instance: inst}.TaskStop(), nil
	case "TWIM.STARTRX":
		return periph.TWIM[mcu]{Instance: inst}.TaskStartRx(), nil
	case "TWIM.STARTTX":
		return periph.TWIM[mcu]{Instance: inst}.TaskStartTx(), nil
	case "TWIM.STOP":
		return periph.TWIM[mcu]{Instance: inst}.TaskStop(), nil
	case "EGU.TRIGGER":
		return periph.EGU[mcu]{Instance: inst}.TaskTrigger(n), nil
	}
	return ppi.Task[mcu]{}, errcode.New(errcode.Unsupported, "task", spec)
}
