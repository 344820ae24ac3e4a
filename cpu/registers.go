package cpu

// RegisterTag addresses one of the CPU's byte registers (spec §4.2).
type RegisterTag int

const (
	RegA RegisterTag = iota
	RegX
	RegY
	RegSP
	RegP
)

// Flag bits within P (spec §3). Only the flags manipulated by the
// in-scope opcodes are named; the remaining bits of P exist but are
// never toggled by this core.
type Flag uint8

const (
	FlagCarry    Flag = 1 << 0
	FlagZero     Flag = 1 << 1
	FlagDecimal  Flag = 1 << 3
	FlagNegative Flag = 1 << 7
)

// Get returns the current value of the named register.
func (c *CPU) Get(tag RegisterTag) uint8 {
	switch tag {
	case RegA:
		return c.A
	case RegX:
		return c.X
	case RegY:
		return c.Y
	case RegSP:
		return c.SP
	case RegP:
		return c.P
	}
	panic(InvalidCPUState{Reason: "Get: unknown register tag"})
}

// Set stores val into the named register.
func (c *CPU) Set(tag RegisterTag, val uint8) {
	switch tag {
	case RegA:
		c.A = val
	case RegX:
		c.X = val
	case RegY:
		c.Y = val
	case RegSP:
		c.SP = val
	case RegP:
		c.P = val
	default:
		panic(InvalidCPUState{Reason: "Set: unknown register tag"})
	}
}

// Increment adds one to the named register (wrapping mod 256), charges
// the one internal cycle real silicon spends on a register in/dec, and
// sets Z/N from the new value. Returns the new value.
func (c *CPU) Increment(tag RegisterTag) uint8 {
	v := c.Get(tag) + 1
	c.Set(tag, v)
	c.clock.charge(1)
	c.setZN(v)
	return v
}

// Decrement subtracts one from the named register (wrapping mod 256),
// charges the one internal cycle real silicon spends on a register
// in/dec, and sets Z/N from the new value. Returns the new value.
func (c *CPU) Decrement(tag RegisterTag) uint8 {
	v := c.Get(tag) - 1
	c.Set(tag, v)
	c.clock.charge(1)
	c.setZN(v)
	return v
}

// Flag reports whether the given flag bit is set in P.
func (c *CPU) Flag(f Flag) bool {
	return c.P&uint8(f) != 0
}

// SetFlag sets or clears the given flag bit in P.
func (c *CPU) SetFlag(f Flag, on bool) {
	if on {
		c.P |= uint8(f)
		return
	}
	c.P &^= uint8(f)
}

// setZN sets Z iff v is zero and N iff bit 7 of v is set (spec §4.5).
func (c *CPU) setZN(v uint8) {
	c.SetFlag(FlagZero, v == 0)
	c.SetFlag(FlagNegative, v&0x80 != 0)
}
