// Command stepper is a tiny visual single-step debugger: it runs one
// instruction at a time and renders the register file plus a
// memory-page heatmap into an SDL window, advancing on any keypress.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/go6502/emu/cpu"
	"github.com/go6502/emu/memory"
)

var (
	prog  = flag.String("prog", "", "path to a raw binary image, loaded at --org")
	org   = flag.Uint("org", 0x0000, "load address for --prog")
	page  = flag.Uint("page", 0, "memory page (0-255) to render as a heatmap")
	scale = flag.Int("scale", 3, "pixel scale factor")
)

const (
	cellPx = 4
)

func main() {
	flag.Parse()
	if *prog == "" {
		fmt.Fprintln(os.Stderr, "--prog is required")
		os.Exit(1)
	}

	bytes, err := os.ReadFile(*prog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading program: %v\n", err)
		os.Exit(1)
	}

	mem := memory.New()
	mem.LoadAt(uint16(*org), bytes)

	chip := cpu.New(mem)
	chip.Reset()
	chip.PC = uint16(*org)

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		fmt.Fprintf(os.Stderr, "sdl init: %v\n", err)
		os.Exit(1)
	}
	defer sdl.Quit()

	w, h := int32(16*cellPx**scale), int32((16+4)*cellPx**scale)
	window, err := sdl.CreateWindow("stepper", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create window: %v\n", err)
		os.Exit(1)
	}
	defer window.Destroy()

	surface, err := window.GetSurface()
	if err != nil {
		fmt.Fprintf(os.Stderr, "get surface: %v\n", err)
		os.Exit(1)
	}

	running := true
	for running {
		renderFrame(surface, chip, mem, uint16(*page))
		window.UpdateSurface()

		switch e := sdl.WaitEvent().(type) {
		case *sdl.QuitEvent:
			running = false
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				break
			}
			if _, err := chip.Execute(1); err != nil {
				fmt.Fprintf(os.Stderr, "halted: %v\n", err)
				running = false
			}
		}
	}
}

// renderFrame paints the register strip above a 16x16 heatmap of the
// requested memory page, one cellPx*scale square per byte.
func renderFrame(surface *sdl.Surface, chip *cpu.CPU, mem *memory.RAM, page uint16) {
	surface.FillRect(nil, 0)

	regs := []uint8{chip.A, chip.X, chip.Y, chip.SP, chip.P}
	for i, v := range regs {
		shade := uint8(v)
		rect := &sdl.Rect{X: int32(i * cellPx * *scale), Y: 0, W: int32(cellPx * *scale), H: int32(cellPx * *scale)}
		surface.FillRect(rect, sdl.MapRGBA(surface.Format, shade, shade, shade, 0xFF))
	}

	base := page << 8
	for i := 0; i < 256; i++ {
		v := mem.Read(base + uint16(i))
		x, y := i%16, i/16
		rect := &sdl.Rect{
			X: int32(x * cellPx * *scale),
			Y: int32((y + 4) * cellPx * *scale),
			W: int32(cellPx * *scale),
			H: int32(cellPx * *scale),
		}
		surface.FillRect(rect, sdl.MapRGBA(surface.Format, v, v, v, 0xFF))
	}
}
