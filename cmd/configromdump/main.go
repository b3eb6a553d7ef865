// Command configromdump reads an IEEE 1212 / IEEE 1394 Configuration ROM
// image from standard input and writes an annotated, human-readable
// rendering to standard output (spec.md §1, §6).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	configrom "github.com/scigolib/configrom"
)

// maxROMBytes is the largest Configuration ROM the renderer accepts
// (spec.md §5, §6).
const maxROMBytes = 1024

// version is the reported build identifier; overridden at link time with
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: configromdump < rom.bin")
		fmt.Fprintln(os.Stderr, "Reads a raw Configuration ROM image (up to 1024 bytes) from")
		fmt.Fprintln(os.Stderr, "standard input and renders it to standard output.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("configromdump", version)
		return
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatalf("refusing to read a Configuration ROM from an interactive terminal")
	}

	buf, err := readROM(os.Stdin)
	if err != nil {
		log.Fatalf("reading configuration ROM from stdin: %v", err)
	}
	if len(buf) == 0 {
		log.Fatalf("empty input")
	}

	if err := configrom.Render(buf, os.Stdout); err != nil {
		log.Fatalf("rendering configuration ROM: %v", err)
	}
}

// readROM reads up to maxROMBytes from r into a single fixed buffer,
// matching the single, fixed-size, one-shot read of spec.md §5.
func readROM(r io.Reader) ([]byte, error) {
	buf := make([]byte, maxROMBytes)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}
