package cpu

// clock is the CPU's only notion of time: a monotonically
// non-decreasing count of bus cycles. Every memory access and every
// internal "dead" cycle the real 6502 spends charges it by one. It is
// 64-bit so overflow is a non-issue (spec §3, invariant I1).
type clock struct {
	cycle uint64
}

// charge advances the cycle counter by n.
func (c *clock) charge(n uint64) {
	c.cycle += n
}

// reset zeroes the counter. Only called from Reset().
func (c *clock) reset() {
	c.cycle = 0
}
