package ppi

// Shape is the event/task fan of a channel.
type Shape interface {
	Events() int
	Tasks() int
}

// ZeroToOne fires one task through the fork output with no event.
type ZeroToOne struct{}

func (ZeroToOne) Events() int { return 0 }
func (ZeroToOne) Tasks() int  { return 1 }

// OneToOne routes one event to one task.
type OneToOne struct{}

func (OneToOne) Events() int { return 1 }
func (OneToOne) Tasks() int  { return 1 }

// OneToTwo routes one event to two tasks, the second through the fork output.
type OneToTwo struct{}

func (OneToTwo) Events() int { return 1 }
func (OneToTwo) Tasks() int  { return 2 }
