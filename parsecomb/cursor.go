// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parsecomb

// Cursor is a position within an immutable input. Parsers receive a pointer
// to the cursor and advance it as they consume input. The consumed prefix of
// the input is always exactly the text matched so far.
type Cursor struct {
	input  string
	offset int
}

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Input returns the complete input, including the consumed prefix.
func (c *Cursor) Input() string {
	return c.input
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.offset
}

// Len returns the number of bytes left to consume.
func (c *Cursor) Len() int {
	return len(c.input) - c.offset
}

// AtEnd reports whether the entire input has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.offset >= len(c.input)
}

// Remaining returns the unconsumed suffix of the input.
func (c *Cursor) Remaining() string {
	return c.input[c.offset:]
}

// Consumed returns the prefix of the input matched so far.
func (c *Cursor) Consumed() string {
	return c.input[:c.offset]
}

func (c *Cursor) peek() (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.input[c.offset], true
}

func (c *Cursor) advance(n int) {
	c.offset = c.offset + n
}

// checkpoint snapshots the cursor position. Composite parsers create one on
// entry and defer rewind so that every failure exit restores the snapshot.
func (c *Cursor) checkpoint() checkpoint {
	return checkpoint{cursor: c, offset: c.offset}
}

type checkpoint struct {
	cursor    *Cursor
	offset    int
	committed bool
}

// commit marks the enclosing parser as successful. It must be called exactly
// once, only on the success path.
func (cp *checkpoint) commit() {
	cp.committed = true
}

func (cp *checkpoint) rewind() {
	if !cp.committed {
		cp.cursor.offset = cp.offset
	}
}

// consumed returns the number of bytes read since the snapshot was taken.
func (cp *checkpoint) consumed() int {
	return cp.cursor.offset - cp.offset
}
