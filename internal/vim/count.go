package vim

import "math"

// Count accumulates a numeric prefix ahead of a motion. A leading '0' is
// never a count (it is the line-start motion); once active, further digits
// including '0' extend the value.
type Count struct {
	value  int
	active bool
}

// Active reports whether a prefix is being accumulated.
func (c *Count) Active() bool {
	return c.active
}

// Reset clears the accumulator.
func (c *Count) Reset() {
	c.value = 0
	c.active = false
}

// Accumulate feeds one rune into the accumulator. It returns false when
// the rune is not a digit, or is a leading '0', leaving state unchanged.
func (c *Count) Accumulate(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	digit := int(r - '0')
	if !c.active && digit == 0 {
		return false
	}

	c.active = true
	// Cap instead of overflowing on absurd prefixes.
	if c.value > (math.MaxInt-digit)/10 {
		c.value = math.MaxInt / 10
		return true
	}
	c.value = c.value*10 + digit
	return true
}

// Take returns the effective repeat count (1 when no prefix was entered)
// and resets the accumulator. A count is consumed by exactly one motion.
func (c *Count) Take() int {
	n := c.value
	c.Reset()
	if n <= 0 {
		return 1
	}
	return n
}
