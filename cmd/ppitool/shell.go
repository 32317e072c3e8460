package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"nrfppi/chip/nrf51"
	"nrfppi/chip/nrf52832"
	"nrfppi/chip/nrf52840"
	"nrfppi/domain"
	"nrfppi/errcode"
	"nrfppi/internal/logger"
	"nrfppi/ppi"
	"nrfppi/regs"
	"nrfppi/regs/sim"
	"nrfppi/x/conv"
)

type mcu = domain.MCU

type chipEntry struct {
	table   domain.Table
	newPool func() *ppi.Pool[mcu]
}

var chips = map[string]chipEntry{
	"nrf51":    {table: nrf51.Table, newPool: nrf51.NewMCUPool},
	"nrf52832": {table: nrf52832.Table, newPool: nrf52832.NewMCUPool},
	"nrf52840": {table: nrf52840.Table, newPool: nrf52840.NewMCUPool},
}

func chipNames() []string {
	names := make([]string, 0, len(chips))
	for n := range chips {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// wired is what every ppi.Ppi shape offers.
type wired interface {
	Number() int
	Enable()
	Disable()
	IsEnabled() bool
	Release()
	String() string
}

// errQuit ends the shell loop.
var errQuit = errors.New("quit")

// Shell drives the channel connector against a simulated register bus.
type Shell struct {
	reg   *domain.Registry
	bus   *sim.Bus
	pool  *ppi.Pool[mcu]
	ctrl  regs.Controller
	chans map[int]wired
	out   io.Writer
	log   *logger.Logger
}

// NewShell installs a simulated registry for chip and returns a shell
// writing to out.
func NewShell(chip string, out io.Writer) (*Shell, error) {
	entry, ok := chips[chip]
	if !ok {
		return nil, fmt.Errorf("unknown chip %q (have %s)", chip, strings.Join(chipNames(), ", "))
	}
	bus := sim.NewBus()
	reg, err := domain.NewRegistry(entry.table, bus)
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	if ids := reg.Domains(); len(ids) != 1 || ids[0] != domain.MCUID {
		return nil, fmt.Errorf("chip %s: the simulator drives single-domain chips only", chip)
	}
	domain.Install(reg)
	return &Shell{
		reg:   reg,
		bus:   bus,
		pool:  entry.newPool(),
		ctrl:  domain.ControllerFor[mcu](),
		chans: make(map[int]wired),
		out:   out,
		log:   logger.Named("sim"),
	}, nil
}

// Exec runs one command line.
func (s *Shell) Exec(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("parsing command: %w", err)
	}
	if len(args) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(args[0]), args[1:]
	s.log.Debug().Str("cmd", cmd).Strs("args", args).Msg("exec")

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "chip":
		s.cmdChip()
	case "periph", "p":
		s.cmdPeriph()
	case "connect", "c":
		return s.cmdConnect(args)
	case "fire":
		return s.cmdFire(args)
	case "enable", "e":
		return s.withChannel(args, func(w wired) { w.Enable() })
	case "disable", "d":
		return s.withChannel(args, func(w wired) { w.Disable() })
	case "release", "r":
		return s.cmdRelease(args)
	case "show", "s":
		return s.cmdShow(args)
	case "trigger", "t":
		return s.cmdTrigger(args)
	case "journal", "j":
		s.cmdJournal(args)
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

// Close releases every wired channel.
func (s *Shell) Close() {
	for n, w := range s.chans {
		w.Release()
		delete(s.chans, n)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `Commands:
  chip                                  controllers of the simulated chip
  periph                                peripherals and their domains
  connect <ch> <event> <task> [task2]   wire 1->1 or 1->2 (fork)
  fire <ch> <task>                      wire 0->1 through the fork output
  enable|disable|release <ch>           channel lifecycle
  show [ch]                             register dump
  trigger <event>                       tasks an event would fire now
  journal [clear]                       register writes so far
  quit

Endpoints: PERIPH.NAME[n] (TIMER0.COMPARE0, GPIOTE.OUT1, RTC1.TICK),
PERIPH+0xOFF, or a raw 0xADDRESS.
`)
}

func (s *Shell) cmdChip() {
	fmt.Fprintf(s.out, "chip %s\n", s.reg.Chip())
	for _, id := range s.reg.Domains() {
		sp, _ := s.reg.Spec(id)
		fmt.Fprintf(s.out, "  domain %d %-8s base %s channels %d fork %v\n", id, sp.Name, conv.Hex32(uint32(sp.Base)), sp.Channels, sp.Fork)
	}
	fmt.Fprintf(s.out, "  pool: %d free configurable channels\n", s.pool.Available())
}

func (s *Shell) cmdPeriph() {
	for _, name := range s.reg.Peripherals() {
		m, _ := s.reg.Peripheral(name)
		fmt.Fprintf(s.out, "  %-8s domain %d base %s\n", name, m.Domain, conv.Hex32(uint32(m.Base)))
	}
}

func (s *Shell) cmdConnect(args []string) error {
	if len(args) != 3 && len(args) != 4 {
		return errors.New("usage: connect <ch> <event> <task> [task2]")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	ev, err := s.event(args[1])
	if err != nil {
		return err
	}
	t1, err := s.task(args[2])
	if err != nil {
		return err
	}
	var t2 ppi.Task[mcu]
	if len(args) == 4 {
		if !s.hasFork() {
			return errcode.New(errcode.Unsupported, "connect", "controller has no fork output")
		}
		if t2, err = s.task(args[3]); err != nil {
			return err
		}
	}

	ch, err := s.pool.ClaimNumber(n)
	if err != nil {
		return err
	}
	var w wired
	if len(args) == 4 {
		w = ppi.NewOneToTwo(ch, ev, t1, t2)
	} else {
		w = ppi.NewOneToOne(ch, ev, t1)
	}
	s.chans[n] = w
	fmt.Fprintln(s.out, w.String())
	return nil
}

func (s *Shell) cmdFire(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: fire <ch> <task>")
	}
	if !s.hasFork() {
		return errcode.New(errcode.Unsupported, "fire", "controller has no fork output")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	t, err := s.task(args[1])
	if err != nil {
		return err
	}
	var ch ppi.Channel[mcu]
	switch {
	case n < 0 || n >= s.ctrl.Channels():
		return errcode.New(errcode.UnknownChannel, "fire", "ch"+args[0])
	case !s.inPool(n):
		if _, busy := s.chans[n]; busy {
			return errcode.New(errcode.ChannelInUse, "fire", "ch"+args[0])
		}
		ch = ppi.Fixed[mcu](n)
	default:
		c, err := s.pool.ClaimNumber(n)
		if err != nil {
			return err
		}
		ch = c
	}
	w := ppi.NewZeroToOne(ch, t)
	s.chans[n] = w
	fmt.Fprintln(s.out, w.String())
	return nil
}

func (s *Shell) cmdRelease(args []string) error {
	return s.withChannel(args, func(w wired) {
		w.Release()
		delete(s.chans, w.Number())
	})
}

func (s *Shell) withChannel(args []string, fn func(wired)) error {
	if len(args) != 1 {
		return errors.New("expected one channel number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	w, ok := s.chans[n]
	if !ok {
		return errcode.New(errcode.UnknownChannel, "channel", "ch"+args[0]+" is not wired")
	}
	fn(w)
	fmt.Fprintln(s.out, w.String())
	return nil
}

func (s *Shell) cmdShow(args []string) error {
	var list []int
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 || n >= s.ctrl.Channels() {
			return errcode.New(errcode.UnknownChannel, "show", args[0])
		}
		list = []int{n}
	} else {
		for n := range s.chans {
			list = append(list, n)
		}
		sort.Ints(list)
	}
	fmt.Fprintf(s.out, "CHEN %s\n", conv.Hex32(s.ctrl.CHEN().Get()))
	fc, fork := s.ctrl.(regs.ForkController)
	for _, n := range list {
		ch := s.ctrl.Ch(n)
		fmt.Fprintf(s.out, "  ch%-2d en=%v EEP=%s TEP=%s", n, s.ctrl.CHEN().Bit(n), conv.Hex32(ch.EEP.Get()), conv.Hex32(ch.TEP.Get()))
		if fork {
			fmt.Fprintf(s.out, " FORK=%s", conv.Hex32(fc.Fork(n).Get()))
		}
		fmt.Fprintln(s.out)
	}
	return nil
}

// cmdTrigger lists the tasks the fabric would fire if the event occurred.
func (s *Shell) cmdTrigger(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: trigger <event>")
	}
	ev, err := s.event(args[0])
	if err != nil {
		return err
	}
	fc, fork := s.ctrl.(regs.ForkController)
	fired := 0
	for n := 0; n < s.ctrl.Channels(); n++ {
		ch := s.ctrl.Ch(n)
		if !s.ctrl.CHEN().Bit(n) || ch.EEP.Get() != ev.Addr() {
			continue
		}
		if tep := ch.TEP.Get(); tep != 0 {
			fmt.Fprintf(s.out, "  ch%d -> %s\n", n, conv.Hex32(tep))
			fired++
		}
		if fork {
			if tep := fc.Fork(n).Get(); tep != 0 {
				fmt.Fprintf(s.out, "  ch%d fork -> %s\n", n, conv.Hex32(tep))
				fired++
			}
		}
	}
	if fired == 0 {
		fmt.Fprintln(s.out, "  no enabled channel listens to", conv.Hex32(ev.Addr()))
	}
	return nil
}

func (s *Shell) cmdJournal(args []string) {
	if len(args) == 1 && args[0] == "clear" {
		s.bus.ResetJournal()
		return
	}
	for i, a := range s.bus.Journal() {
		fmt.Fprintf(s.out, "  %3d %s <- %s\n", i, conv.Hex32(uint32(a.Addr)), conv.Hex32(a.Value))
	}
}

func (s *Shell) hasFork() bool {
	_, ok := s.ctrl.(regs.ForkController)
	return ok
}

func (s *Shell) inPool(n int) bool {
	first, count := s.pool.Range()
	return n >= first && n < first+count
}
