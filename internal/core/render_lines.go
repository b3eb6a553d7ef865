package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/scigolib/configrom/internal/utils"
)

// ConfigROMBase is the IEEE 1212 Configuration ROM base address; printed
// offsets are biased by this constant so they match a device's memory
// map (spec.md §3).
const ConfigROMBase = 0x400

// ruleWidth and maxLineWidth are the fixed layout constants of
// spec.md §4.6.
const (
	ruleWidth    = 65
	maxLineWidth = 100
)

// Writer accumulates the line-oriented textual rendering of spec.md §2
// step 5 and §4.6, streaming each completed line straight to the
// underlying io.Writer rather than pre-allocating a line buffer per
// potential line (spec.md §9, "Fixed-size rendering buffers").
type Writer struct {
	out   io.Writer
	err   error
	lines int
}

// NewWriter wraps out for use by the block renderers.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Err returns the first write error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Count returns the number of lines written so far.
func (w *Writer) Count() int {
	return w.lines
}

// linePrefix builds the 15-character "%3lx  %08x  " prefix of spec.md
// §4.6: the biased offset in at-least-3-digit lowercase hex, two
// spaces, the raw quadlet in 8-digit lowercase hex, two spaces.
func linePrefix(offset int, quadlet uint32) string {
	return fmt.Sprintf("%3x  %08x  ", offset+ConfigROMBase, quadlet)
}

// contPrefix is the blank prefix continuation lines use, matching the
// width of linePrefix's fixed columns: 3-wide offset field, 2-space gap,
// 8-wide quadlet field, 2-space gap (15 total).
const contPrefix = "   " + "  " + "        " + "  "

func clampWidth(s string) string {
	if len(s) > maxLineWidth {
		return s[:maxLineWidth]
	}
	return s
}

// emit flushes one completed line through a pooled scratch buffer,
// borrowing fixed-size scratch space the way the teacher's
// internal/utils.GetBuffer/ReleaseBuffer pair is meant to be used,
// rather than allocating a new one per line.
func (w *Writer) emit(line string) {
	if w.err != nil {
		return
	}
	clamped := clampWidth(line)
	scratch := utils.GetBuffer(len(clamped) + 1)
	scratch = append(scratch[:0], clamped...)
	scratch = append(scratch, '\n')
	_, err := w.out.Write(scratch)
	utils.ReleaseBuffer(scratch)
	if err != nil {
		w.err = err
		return
	}
	w.lines++
}

// Quadlet emits one content line: the offset/value prefix followed by
// text.
func (w *Writer) Quadlet(offset int, quadlet uint32, text string) {
	w.emit(linePrefix(offset, quadlet) + text)
}

// Cont emits a continuation line: blank prefix followed by text, used
// for multi-line entries whose first line already carried the offset
// and quadlet.
func (w *Writer) Cont(text string) {
	w.emit(contPrefix + text)
}

// Plain emits a line with no offset/quadlet prefix, used for block
// titles.
func (w *Writer) Plain(text string) {
	w.emit(text)
}

// Rule emits the 65-dash horizontal rule separating a block's title
// from its content.
func (w *Writer) Rule() {
	w.emit(strings.Repeat("-", ruleWidth))
}

// Blank emits the single blank line spec.md §6 requires between
// rendered blocks.
func (w *Writer) Blank() {
	w.emit("")
}
