package service

import "fmt"

// Cycler walks the seats of a table in turn order, wrapping around.
type Cycler struct {
	seats   []string
	current int
}

func NewCycler(seats []string) *Cycler {
	return &Cycler{seats: seats}
}

// Seats names n seats "seat 1" to "seat n".
func Seats(n int) []string {
	seats := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		seats = append(seats, fmt.Sprintf("seat %d", i))
	}
	return seats
}

func (c *Cycler) Current() string {
	return c.seats[c.current]
}

func (c *Cycler) Index() int {
	return c.current
}

func (c *Cycler) Len() int {
	return len(c.seats)
}

func (c *Cycler) Next() string {
	c.current = (c.current + 1) % len(c.seats)
	return c.seats[c.current]
}

// Jump makes index the current seat.
func (c *Cycler) Jump(index int) {
	c.current = ((index % len(c.seats)) + len(c.seats)) % len(c.seats)
}
