// Package memory defines the byte-addressable store the CPU core
// treats as its sole external collaborator. The core never assumes
// anything about how reads/writes are implemented underneath; only
// that every 16-bit address resolves to one byte with no side effects
// beyond the store itself.
package memory

import (
	"math/rand"
	"time"
)

// Memory is the abstract interface the CPU core depends on. Any
// byte-addressable random-access store indexed by a 16-bit address
// satisfies it; the address space is finite (2^16) so there is no
// out-of-range error to report.
type Memory interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value.
	Write(addr uint16, val uint8)
}

// RAM is the default Memory implementation: a flat 65,536-byte array
// owned by the host. The CPU holds a non-owning handle to it.
type RAM struct {
	mem [1 << 16]uint8
}

// New returns a zeroed 64k RAM.
func New() *RAM {
	return &RAM{}
}

// NewPoweredOn returns a 64k RAM with randomized contents, mirroring
// the fact that real 6502 RAM powers on in an undefined state.
func NewPoweredOn() *RAM {
	r := &RAM{}
	r.PowerOn()
	return r
}

// Read implements Memory.
func (r *RAM) Read(addr uint16) uint8 {
	return r.mem[addr]
}

// Write implements Memory.
func (r *RAM) Write(addr uint16, val uint8) {
	r.mem[addr] = val
}

// PowerOn randomizes every byte, as real RAM contents are undefined at
// power-on.
func (r *RAM) PowerOn() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range r.mem {
		r.mem[i] = uint8(rnd.Intn(256))
	}
}

// LoadAt copies prog into memory starting at addr, wrapping past 0xFFFF
// back to 0x0000 if it runs off the end. Intended for test fixtures and
// simple program loaders; not part of the core's required surface.
func (r *RAM) LoadAt(addr uint16, prog []uint8) {
	for _, b := range prog {
		r.mem[addr] = b
		addr++
	}
}
