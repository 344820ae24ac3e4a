package cpu

import "github.com/go6502/emu/memory"

// CPU is a functional MOS 6502 core: registers, flags, a bus cycle
// counter, and the fetch-execute loop. It does not model interrupts,
// decimal arithmetic, undocumented opcodes, or bus timing finer than
// whole cycles (spec §1, §9).
type CPU struct {
	A, X, Y, SP, P uint8
	PC             uint16

	mem   memory.Memory
	clock clock
}

// New constructs a CPU wired to mem. Registers are left at their zero
// values; call Reset to bring the CPU to its documented power-up state.
func New(mem memory.Memory) *CPU {
	return &CPU{mem: mem}
}

// SetMemory rebinds the CPU to a different bus. Used by hosts that
// swap memory images between runs.
func (c *CPU) SetMemory(mem memory.Memory) {
	c.mem = mem
}

// Reset brings the CPU to the state invariant I3 describes: PC is
// loaded from the reset vector at 0xFFFC/0xFFFD... except this core has
// no vector table to read (loading program images is out of scope, per
// spec §1), so Reset instead pins PC at 0xFFFC directly, SP at 0x00,
// A/X/Y at 0, D clear, and zeroes the cycle counter.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0x00
	c.PC = 0xFFFC
	c.P = 0
	c.clock.reset()
}

// Cycle returns the bus cycle counter (spec §3, invariant I1).
func (c *CPU) Cycle() uint64 { return c.clock.cycle }

// Execute runs instructions until at least cycles bus cycles have
// elapsed, stopping only at an instruction boundary (spec §2, §6). Per
// spec §6 it returns the pre-computed target (cycle-before-call plus
// cycles), not the cycle count actually observed: callers compare the
// return value against Cycle() afterward to detect overshoot from an
// in-flight instruction that was never aborted mid-execution.
func (c *CPU) Execute(cycles uint64) (uint64, error) {
	target := c.clock.cycle + cycles
	for c.clock.cycle < target {
		opAddr := c.PC
		op := c.fetchPC()
		handler := opcodes[op]
		if handler == nil {
			return target, UnknownOpcode{Opcode: op, PC: opAddr}
		}
		if err := handler(c); err != nil {
			return target, err
		}
	}
	return target, nil
}
