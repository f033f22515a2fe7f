package game

// Cycler walks the seats of a table in either direction.
type Cycler struct {
	size    int
	current int
}

func NewCycler(size int) *Cycler {
	return &Cycler{size: size}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Size() int {
	return c.size
}

func (c *Cycler) ForEach(function func(seat int)) {
	for seat := 0; seat < c.size; seat++ {
		function(seat)
	}
}

// Peek returns the seat Next would move to.
func (c *Cycler) Peek(direction int) int {
	return ((c.current+direction)%c.size + c.size) % c.size
}

func (c *Cycler) Next(direction int) int {
	c.current = c.Peek(direction)
	return c.current
}
