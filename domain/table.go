package domain

// Spec describes one controller instance.
type Spec struct {
	ID       ID
	Name     string  // e.g. "ppi", "dppic20"
	Base     uintptr // register block base address
	Channels int
	Fork     bool // FORK[n].TEP present
}

// Membership places one peripheral instance in a domain.
type Membership struct {
	Peripheral string // e.g. "TIMER0"
	Domain     ID
	Base       uintptr
}

// Table is the generated per-chip configuration.
type Table struct {
	Chip        string
	Domains     []Spec
	Peripherals []Membership
}
