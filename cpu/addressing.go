package cpu

// Mode is one of the twelve addressing modes the resolver recognizes
// (spec §4.3).
type Mode int

const (
	Immediate Mode = iota
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndexIndirectX
	IndirectIndexY
	Indirect
	Implicit
	Relative
)

// OpKind selects which cycle-accounting path an addressing mode takes;
// some modes charge differently depending on whether the instruction
// reads, read-modify-writes, or only writes the operand (spec §4.3).
type OpKind int

const (
	Read OpKind = iota
	Modify
	Write
)

// busRead reads addr, charging the one cycle every bus access costs.
func (c *CPU) busRead(addr uint16) uint8 {
	v := c.mem.Read(addr)
	c.clock.charge(1)
	return v
}

// busWrite writes val to addr, charging the one cycle every bus access
// costs.
func (c *CPU) busWrite(addr uint16, val uint8) {
	c.mem.Write(addr, val)
	c.clock.charge(1)
}

// fetchPC reads the byte at PC and advances PC, charging the read.
func (c *CPU) fetchPC() uint8 {
	v := c.busRead(c.PC)
	c.PC++
	return v
}

// pageCrossed reports whether adding index to base would change the
// high byte of the address (spec §4.3).
func pageCrossed(base uint16, index uint8) bool {
	return (base & 0xFF00) != ((base + uint16(index)) & 0xFF00)
}

// indexedAddr computes base+index the way real 6502 hardware does:
// the low byte is added first (with 8-bit wraparound), and the
// carried high byte is only applied, with crossed reported true, if a
// page boundary was actually crossed.
func indexedAddr(base uint16, index uint8) (addr uint16, crossed bool) {
	lo := uint8(base&0xFF) + index
	wrong := (base & 0xFF00) | uint16(lo)
	crossed = pageCrossed(base, index)
	if !crossed {
		return wrong, false
	}
	return base + uint16(index), true
}

// address resolves the effective address for mode given the kind of
// operation the caller is about to perform, fetching any operand bytes
// from PC and charging every cycle the mode's row in spec §4.3 calls
// for. hasAddr is false for Implicit and Relative, which never produce
// an address; calling a handler that requires one against those modes
// is an addressing-mode misuse (spec §7.2) and returns an error.
func (c *CPU) address(mode Mode, kind OpKind) (addr uint16, hasAddr bool, err error) {
	switch mode {
	case Immediate:
		addr = c.PC
		c.PC++
		return addr, true, nil

	case ZeroPage:
		b := c.fetchPC()
		return uint16(b), true, nil

	case ZeroPageX:
		return c.zeroPageIndexed(c.X), true, nil

	case ZeroPageY:
		return c.zeroPageIndexed(c.Y), true, nil

	case Absolute:
		lo := c.fetchPC()
		hi := c.fetchPC()
		return (uint16(hi) << 8) | uint16(lo), true, nil

	case AbsoluteX:
		return c.absoluteIndexed(c.X, kind), true, nil

	case AbsoluteY:
		return c.absoluteIndexed(c.Y, kind), true, nil

	case IndexIndirectX:
		zp := c.fetchPC()
		_ = c.busRead(uint16(zp)) // dummy read before the X addition, per real hardware
		ptr := uint16(zp + c.X)
		lo := c.busRead(ptr)
		hi := c.busRead(uint16(uint8(ptr+1)) | (ptr & 0xFF00))
		return (uint16(hi) << 8) | uint16(lo), true, nil

	case IndirectIndexY:
		zp := c.fetchPC()
		lo := c.busRead(uint16(zp))
		hi := c.busRead(uint16(uint8(zp + 1)))
		base := (uint16(hi) << 8) | uint16(lo)
		a, crossed := indexedAddr(base, c.Y)
		if kind != Read || crossed {
			c.clock.charge(1)
		}
		return a, true, nil

	case Indirect:
		ptrLo := c.fetchPC()
		ptrHi := c.fetchPC()
		ptr := (uint16(ptrHi) << 8) | uint16(ptrLo)
		lo := c.busRead(ptr)
		// The page-wrap bug: when the pointer's low byte is 0xFF the
		// high byte is fetched from ptr&0xFF00, not ptr+1.
		hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		hi := c.busRead(hiAddr)
		return (uint16(hi) << 8) | uint16(lo), true, nil

	case Implicit, Relative:
		return 0, false, InvalidCPUState{Reason: "address: mode produces no address"}
	}
	return 0, false, InvalidCPUState{Reason: "address: unrecognized mode"}
}

// zeroPageIndexed implements ZeroPageX/ZeroPageY: fetch the base byte,
// take a dummy read at the unindexed zero-page address (the real CPU's
// internal addition cycle), then wrap the index addition within page 0.
func (c *CPU) zeroPageIndexed(reg uint8) uint16 {
	b := c.fetchPC()
	_ = c.busRead(uint16(b))
	return uint16(b + reg)
}

// absoluteIndexed implements AbsoluteX/AbsoluteY. Read operations only
// charge the extra cycle when the index addition actually crosses a
// page; modify/write operations always take the pessimistic path
// (spec §4.3, §4.4).
func (c *CPU) absoluteIndexed(reg uint8, kind OpKind) uint16 {
	lo := c.fetchPC()
	hi := c.fetchPC()
	base := (uint16(hi) << 8) | uint16(lo)
	addr, crossed := indexedAddr(base, reg)
	if kind != Read || crossed {
		c.clock.charge(1)
	}
	return addr
}
