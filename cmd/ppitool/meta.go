package main

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"nrfppi/domain"
	"nrfppi/errcode"
	"nrfppi/regs/sim"
)

// ChipMeta is one chip metadata file.
type ChipMeta struct {
	Chip        string           `yaml:"chip"`
	Package     string           `yaml:"package"`
	Description string           `yaml:"description"`
	Domains     []DomainMeta     `yaml:"domains"`
	Peripherals []PeripheralMeta `yaml:"peripherals"`
}

// DomainMeta describes one PPI controller.
type DomainMeta struct {
	ID           uint8  `yaml:"id"`
	Name         string `yaml:"name"`
	Tag          string `yaml:"tag"` // "MCU" reuses domain.MCU, anything else is declared
	Base         uint32 `yaml:"base"`
	Channels     int    `yaml:"channels"`
	Configurable int    `yaml:"configurable"`
	Fork         bool   `yaml:"fork"`
}

// PeripheralMeta places one peripheral instance.
type PeripheralMeta struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"` // timer, rtc, gpiote, saadc, twim, egu, generic
	Domain uint8  `yaml:"domain"`
	Base   uint32 `yaml:"base"`
}

var identRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

var knownKinds = map[string]string{
	"timer":   "Timer",
	"rtc":     "RTC",
	"gpiote":  "GPIOTE",
	"saadc":   "SAADC",
	"twim":    "TWIM",
	"egu":     "EGU",
	"generic": "",
}

// ParseChipMeta decodes and validates chip metadata.
func ParseChipMeta(data []byte) (*ChipMeta, error) {
	var m ChipMeta
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &errcode.E{C: errcode.InvalidMetadata, Op: "parse", Msg: "yaml", Err: err}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadChipMeta reads and parses a metadata file.
func LoadChipMeta(path string) (*ChipMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := ParseChipMeta(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// Validate checks what the Go output depends on, then builds a registry from
// the table so the generator rejects exactly what the runtime would.
func (m *ChipMeta) Validate() error {
	const op = "validate"
	bad := func(msg string) error { return errcode.New(errcode.InvalidMetadata, op, msg) }

	if m.Chip == "" {
		return bad("missing chip")
	}
	if !identRe.MatchString(m.Package) {
		return bad("invalid package name " + fmt.Sprintf("%q", m.Package))
	}
	tags := map[string]bool{}
	for _, d := range m.Domains {
		if !identRe.MatchString(d.Tag) {
			return bad(fmt.Sprintf("domain %d: invalid tag %q", d.ID, d.Tag))
		}
		if tags[d.Tag] {
			return bad("duplicate tag " + d.Tag)
		}
		tags[d.Tag] = true
		if d.Tag == "MCU" && d.ID != uint8(domain.MCUID) {
			return bad("tag MCU must have id 0")
		}
		if d.Configurable < 0 || d.Configurable > d.Channels {
			return bad(fmt.Sprintf("domain %s: configurable %d outside 0..%d", d.Name, d.Configurable, d.Channels))
		}
	}
	for _, p := range m.Peripherals {
		if !identRe.MatchString(p.Name) {
			return bad(fmt.Sprintf("invalid peripheral name %q", p.Name))
		}
		if _, ok := knownKinds[p.Kind]; !ok {
			return bad(fmt.Sprintf("%s: unknown kind %q", p.Name, p.Kind))
		}
	}
	if _, err := domain.NewRegistry(m.Table(), sim.NewBus()); err != nil {
		return fmt.Errorf("%s: %w", m.Chip, err)
	}
	return nil
}

// Table converts the metadata into the runtime table.
func (m *ChipMeta) Table() domain.Table {
	t := domain.Table{Chip: m.Chip}
	for _, d := range m.Domains {
		t.Domains = append(t.Domains, domain.Spec{
			ID:       domain.ID(d.ID),
			Name:     d.Name,
			Base:     uintptr(d.Base),
			Channels: d.Channels,
			Fork:     d.Fork,
		})
	}
	for _, p := range m.Peripherals {
		t.Peripherals = append(t.Peripherals, domain.Membership{
			Peripheral: p.Name,
			Domain:     domain.ID(p.Domain),
			Base:       uintptr(p.Base),
		})
	}
	return t
}
