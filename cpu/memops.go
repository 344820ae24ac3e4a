package cpu

// Modification is a read-modify-write transform applied in place by
// modifyMemory. RotateLeft/RotateRight are reserved for a future
// extension (spec §4.4) and are not wired to any opcode in this core.
type Modification int

const (
	Increment Modification = iota
	Decrement
	RotateLeft
	RotateRight
)

func (c *CPU) apply(m Modification, v uint8) uint8 {
	switch m {
	case Increment:
		return v + 1
	case Decrement:
		return v - 1
	case RotateLeft:
		return v<<1 | v>>7
	case RotateRight:
		return v>>1 | v<<7
	}
	panic(InvalidCPUState{Reason: "apply: unknown modification"})
}

// readMemory resolves mode's effective address and reads one byte from
// it, charging exactly the data-read cycle on top of whatever the
// resolver already charged for operand fetches and fix-ups (spec §4.4).
func (c *CPU) readMemory(mode Mode) (uint8, error) {
	addr, ok, err := c.address(mode, Read)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, InvalidCPUState{Reason: "readMemory: mode produced no address"}
	}
	return c.busRead(addr), nil
}

// modifyMemory resolves mode's effective address, reads the byte,
// charges the data-read cycle, applies mod, charges one internal
// cycle for the operation, then writes the result back and charges the
// data-write cycle. Returns the new value (spec §4.4).
func (c *CPU) modifyMemory(mode Mode, mod Modification) (uint8, error) {
	addr, ok, err := c.address(mode, Modify)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, InvalidCPUState{Reason: "modifyMemory: mode produced no address"}
	}
	v := c.busRead(addr)
	nv := c.apply(mod, v)
	c.clock.charge(1)
	c.busWrite(addr, nv)
	return nv, nil
}

// writeMemory resolves mode's effective address and writes val there,
// charging the data-write cycle. Write modes never take the
// page-cross-only discount; absolute-indexed writes always pay the
// pessimistic cost (spec §4.4).
func (c *CPU) writeMemory(mode Mode, val uint8) error {
	addr, ok, err := c.address(mode, Write)
	if err != nil {
		return err
	}
	if !ok {
		return InvalidCPUState{Reason: "writeMemory: mode produced no address"}
	}
	c.busWrite(addr, val)
	return nil
}
