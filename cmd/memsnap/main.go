// Command memsnap runs a 6502 program for a fixed number of cycles and
// dumps the resulting 64K address space as a 256x256 bitmap, one pixel
// per byte, so the memory layout after a run can be eyeballed at a
// glance.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"
	"gopkg.in/urfave/cli.v2"

	"github.com/go6502/emu/cpu"
	"github.com/go6502/emu/memory"
)

func main() {
	app := &cli.App{
		Name:  "memsnap",
		Usage: "run a 6502 program and snapshot its memory as a bitmap",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "prog",
				Aliases: []string{"p"},
				Usage:   "path to a raw binary image, loaded at --org",
			},
			&cli.UintFlag{
				Name:  "org",
				Usage: "load address for --prog",
				Value: 0x0000,
			},
			&cli.Uint64Flag{
				Name:  "cycles",
				Usage: "number of bus cycles to execute before snapshotting",
				Value: 1000,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output bitmap path",
				Value:   "memsnap.bmp",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	progPath := c.String("prog")
	if progPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("--prog is required", 86)
	}

	prog, err := os.ReadFile(progPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading program: %v", err), 1)
	}

	mem := memory.New()
	mem.LoadAt(uint16(c.Uint("org")), prog)

	chip := cpu.New(mem)
	chip.Reset()
	chip.PC = uint16(c.Uint("org"))

	if _, err := chip.Execute(c.Uint64("cycles")); err != nil {
		fmt.Fprintf(os.Stderr, "execution halted: %v\n", err)
	}

	out, err := os.Create(c.String("out"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("creating output: %v", err), 1)
	}
	defer out.Close()

	return bmp.Encode(out, snapshotImage(mem))
}

// snapshotImage renders the full 64K address space as a 256x256
// grayscale image, row-major, one pixel per byte.
func snapshotImage(mem *memory.RAM) image.Image {
	img := image.NewGray(image.Rect(0, 0, 256, 256))
	for addr := 0; addr < 1<<16; addr++ {
		v := mem.Read(uint16(addr))
		img.SetGray(addr%256, addr/256, color.Gray{Y: v})
	}
	return img
}
