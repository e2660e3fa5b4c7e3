package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS control bytes.
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Alignment values for Align.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Document builds an ESC/POS byte stream for a till receipt.
// The zero value is not usable; call NewDocument.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument creates an initialized ESC/POS document. charWidth is the
// printable width in characters: 32 for 58mm paper, 48 for 80mm.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 48
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{esc, '@'})
	return d
}

// Align sets text alignment for subsequent lines.
func (d *Document) Align(a int) *Document {
	d.buf.Write([]byte{esc, 'a', byte(a)})
	return d
}

// Bold switches bold printing on or off.
func (d *Document) Bold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

// DoubleSize switches double width and height on or off.
func (d *Document) DoubleSize(on bool) *Document {
	b := byte(0x00)
	if on {
		b = 0x11
	}
	d.buf.Write([]byte{gs, '!', b})
	return d
}

// Line writes a line of text followed by a line feed.
func (d *Document) Line(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
	return d
}

// Linef writes a formatted line.
func (d *Document) Linef(format string, args ...interface{}) *Document {
	return d.Line(fmt.Sprintf(format, args...))
}

// Rule prints a full-width rule of the given character.
func (d *Document) Rule(char byte) *Document {
	return d.Line(strings.Repeat(string(char), d.width))
}

// Amount prints a left-aligned label with a right-aligned amount,
// e.g. "Subtotal:                 £6.00".
func (d *Document) Amount(label, value string) *Document {
	pad := d.width - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	d.buf.WriteString(label)
	d.buf.WriteString(strings.Repeat(" ", pad))
	d.buf.WriteString(value)
	d.buf.WriteByte(lf)
	return d
}

// Item prints one sale line in the canonical receipt form:
// name, then right-aligned "qty x price = total".
func (d *Document) Item(name string, qty int, price, total string) *Document {
	detail := fmt.Sprintf("%d x %s = %s", qty, price, total)
	if len(name)+len(detail)+1 > d.width {
		// Long names get their own line with the detail indented below.
		d.Line(name)
		return d.Amount(" ", detail)
	}
	return d.Amount(name, detail)
}

// Feed advances the paper n lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

// Cut sends a partial paper cut.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
