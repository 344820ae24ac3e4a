package cpu

import "fmt"

// InvalidCPUState represents an internal invariant violation: a bug in
// the dispatcher/handler wiring rather than anything a guest program
// can trigger. See spec §7.2.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// UnknownOpcode is returned when the dispatcher has no handler for the
// fetched opcode byte. This is fatal: silently skipping would
// desynchronize the cycle counter from the program's intent.
type UnknownOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode 0x%.2X at PC 0x%.4X", e.Opcode, e.PC)
}
