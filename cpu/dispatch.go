package cpu

// opcodes is the 256-entry dispatch table (spec §4.6). Entries left nil
// are opcodes this core does not implement — undocumented opcodes,
// interrupts, decimal mode, and anything else spec §8 puts out of
// scope — and cause Execute to halt with UnknownOpcode rather than
// silently misbehave.
var opcodes [256]func(*CPU) error

func init() {
	// LDA
	opcodes[0xA9] = func(c *CPU) error { return c.load(Immediate, RegA) }
	opcodes[0xA5] = func(c *CPU) error { return c.load(ZeroPage, RegA) }
	opcodes[0xB5] = func(c *CPU) error { return c.load(ZeroPageX, RegA) }
	opcodes[0xAD] = func(c *CPU) error { return c.load(Absolute, RegA) }
	opcodes[0xBD] = func(c *CPU) error { return c.load(AbsoluteX, RegA) }
	opcodes[0xB9] = func(c *CPU) error { return c.load(AbsoluteY, RegA) }
	opcodes[0xA1] = func(c *CPU) error { return c.load(IndexIndirectX, RegA) }
	opcodes[0xB1] = func(c *CPU) error { return c.load(IndirectIndexY, RegA) }

	// LDX
	opcodes[0xA2] = func(c *CPU) error { return c.load(Immediate, RegX) }
	opcodes[0xA6] = func(c *CPU) error { return c.load(ZeroPage, RegX) }
	opcodes[0xB6] = func(c *CPU) error { return c.load(ZeroPageY, RegX) }
	opcodes[0xAE] = func(c *CPU) error { return c.load(Absolute, RegX) }
	opcodes[0xBE] = func(c *CPU) error { return c.load(AbsoluteY, RegX) }

	// LDY
	opcodes[0xA0] = func(c *CPU) error { return c.load(Immediate, RegY) }
	opcodes[0xA4] = func(c *CPU) error { return c.load(ZeroPage, RegY) }
	opcodes[0xB4] = func(c *CPU) error { return c.load(ZeroPageX, RegY) }
	opcodes[0xAC] = func(c *CPU) error { return c.load(Absolute, RegY) }
	opcodes[0xBC] = func(c *CPU) error { return c.load(AbsoluteX, RegY) }

	// STA
	opcodes[0x85] = func(c *CPU) error { return c.store(ZeroPage, RegA) }
	opcodes[0x95] = func(c *CPU) error { return c.store(ZeroPageX, RegA) }
	opcodes[0x8D] = func(c *CPU) error { return c.store(Absolute, RegA) }
	opcodes[0x9D] = func(c *CPU) error { return c.store(AbsoluteX, RegA) }
	opcodes[0x99] = func(c *CPU) error { return c.store(AbsoluteY, RegA) }
	opcodes[0x81] = func(c *CPU) error { return c.store(IndexIndirectX, RegA) }
	opcodes[0x91] = func(c *CPU) error { return c.store(IndirectIndexY, RegA) }

	// STX / STY
	opcodes[0x86] = func(c *CPU) error { return c.store(ZeroPage, RegX) }
	opcodes[0x96] = func(c *CPU) error { return c.store(ZeroPageY, RegX) }
	opcodes[0x8E] = func(c *CPU) error { return c.store(Absolute, RegX) }
	opcodes[0x84] = func(c *CPU) error { return c.store(ZeroPage, RegY) }
	opcodes[0x94] = func(c *CPU) error { return c.store(ZeroPageX, RegY) }
	opcodes[0x8C] = func(c *CPU) error { return c.store(Absolute, RegY) }

	// CMP
	opcodes[0xC9] = func(c *CPU) error { return c.compare(Immediate, RegA) }
	opcodes[0xC5] = func(c *CPU) error { return c.compare(ZeroPage, RegA) }
	opcodes[0xD5] = func(c *CPU) error { return c.compare(ZeroPageX, RegA) }
	opcodes[0xCD] = func(c *CPU) error { return c.compare(Absolute, RegA) }
	opcodes[0xDD] = func(c *CPU) error { return c.compare(AbsoluteX, RegA) }
	opcodes[0xD9] = func(c *CPU) error { return c.compare(AbsoluteY, RegA) }
	opcodes[0xC1] = func(c *CPU) error { return c.compare(IndexIndirectX, RegA) }
	opcodes[0xD1] = func(c *CPU) error { return c.compare(IndirectIndexY, RegA) }

	// CPX / CPY
	opcodes[0xE0] = func(c *CPU) error { return c.compare(Immediate, RegX) }
	opcodes[0xE4] = func(c *CPU) error { return c.compare(ZeroPage, RegX) }
	opcodes[0xEC] = func(c *CPU) error { return c.compare(Absolute, RegX) }
	opcodes[0xC0] = func(c *CPU) error { return c.compare(Immediate, RegY) }
	opcodes[0xC4] = func(c *CPU) error { return c.compare(ZeroPage, RegY) }
	opcodes[0xCC] = func(c *CPU) error { return c.compare(Absolute, RegY) }

	// INC / DEC (memory)
	opcodes[0xE6] = func(c *CPU) error { return c.incMem(ZeroPage) }
	opcodes[0xF6] = func(c *CPU) error { return c.incMem(ZeroPageX) }
	opcodes[0xEE] = func(c *CPU) error { return c.incMem(Absolute) }
	opcodes[0xFE] = func(c *CPU) error { return c.incMem(AbsoluteX) }
	opcodes[0xC6] = func(c *CPU) error { return c.decMem(ZeroPage) }
	opcodes[0xD6] = func(c *CPU) error { return c.decMem(ZeroPageX) }
	opcodes[0xCE] = func(c *CPU) error { return c.decMem(Absolute) }
	opcodes[0xDE] = func(c *CPU) error { return c.decMem(AbsoluteX) }

	// INX/INY/DEX/DEY (register)
	opcodes[0xE8] = func(c *CPU) error { return c.incReg(RegX) }
	opcodes[0xC8] = func(c *CPU) error { return c.incReg(RegY) }
	opcodes[0xCA] = func(c *CPU) error { return c.decReg(RegX) }
	opcodes[0x88] = func(c *CPU) error { return c.decReg(RegY) }

	// JMP / JSR / RTS
	opcodes[0x4C] = (*CPU).jmpAbsolute
	opcodes[0x6C] = (*CPU).jmpIndirect
	opcodes[0x20] = (*CPU).jsr
	opcodes[0x60] = (*CPU).rts

	// Branches
	opcodes[0x90] = (*CPU).bcc
	opcodes[0xB0] = (*CPU).bcs
	opcodes[0xF0] = (*CPU).beq
	opcodes[0xD0] = (*CPU).bne
}
