package ttcnplus

/*
cell.go contains the reference-counted, copy-on-write storage shared by
the bitstring, hexstring and octetstring value handles.
*/

import (
	"bytes"
	"sync"
)

/*
cell holds n packed elements of width bits each. Element i occupies bits
[i*width, i*width+width) counted from the least significant bit of
data[0]. Unused bits of the final byte are always zero once an
operation returns.
*/
type cell struct {
	refs   int
	n      int
	width  uint
	data   []byte
	pinned bool // shared empty singleton; never counted, never mutated
}

var (
	emptyOnce  sync.Once
	emptyCells map[uint]*cell
)

/*
emptyCell returns the process-wide zero-length cell for the given
element width.
*/
func emptyCell(width uint) *cell {
	emptyOnce.Do(func() {
		emptyCells = map[uint]*cell{
			1: {width: 1, pinned: true},
			4: {width: 4, pinned: true},
			8: {width: 8, pinned: true},
		}
	})
	return emptyCells[width]
}

func cellSize(n int, width uint) int { return (n*int(width) + 7) / 8 }

/*
newCell returns a zeroed cell of n elements.
*/
func newCell(op string, n int, width uint) *cell {
	if n < 0 {
		usagef(op, "creating a string with negative length (", n, ")")
	} else if n == 0 {
		return emptyCell(width)
	}
	return &cell{refs: 1, n: n, width: width, data: make([]byte, cellSize(n, width))}
}

/*
cellFrom returns a cell of n elements copied from the packed payload src,
which must hold at least cellSize(n, width) bytes.
*/
func cellFrom(op string, n int, width uint, src []byte) *cell {
	c := newCell(op, n, width)
	if n > 0 {
		size := cellSize(n, width)
		if len(src) < size {
			usagef(op, "payload of ", len(src), " bytes is too short for ", n, " elements")
		}
		copy(c.data, src[:size])
		c.canonicalize()
	}
	return c
}

func (c *cell) mask() byte { return byte(1<<c.width - 1) }

func (c *cell) get(i int) byte {
	off := uint(i) * c.width
	return (c.data[off/8] >> (off % 8)) & c.mask()
}

func (c *cell) set(i int, v byte) {
	off := uint(i) * c.width
	sh := off % 8
	c.data[off/8] = c.data[off/8]&^(c.mask()<<sh) | (v&c.mask())<<sh
}

/*
canonicalize zeroes the padding bits of the final byte.
*/
func (c *cell) canonicalize() {
	if rem := (uint(c.n) * c.width) % 8; rem != 0 && len(c.data) > 0 {
		c.data[len(c.data)-1] &= byte(1<<rem - 1)
	}
}

func (c *cell) equal(o *cell) bool {
	return c.n == o.n && bytes.Equal(c.data, o.data)
}

func (c *cell) incRef() {
	if !c.pinned {
		c.refs++
	}
}

/*
decRef drops one reference and frees the payload on the last one. An
underflow is an internal error.
*/
func (c *cell) decRef(op string) {
	if c.pinned {
		return
	}
	if c.refs <= 0 {
		internalf(op, "invalid reference counter (", c.refs, ") when freeing a string value")
	}
	if c.refs--; c.refs == 0 {
		c.data = nil
	}
}

func (c *cell) live(op string) *cell {
	if c != nil && !c.pinned && c.refs <= 0 {
		internalf(op, "use of a released string value")
	}
	return c
}

/*
unique returns a cell exclusively owned by the caller holding c: c itself
when it is unshared, otherwise a private copy, releasing the caller's
reference to c.
*/
func unique(op string, c *cell) *cell {
	if !c.pinned && c.refs == 1 {
		return c
	}
	d := &cell{refs: 1, n: c.n, width: c.width, data: append([]byte(nil), c.data...)}
	c.decRef(op)
	return d
}

/*
appendElem adds one element to the end of an exclusively owned cell.
*/
func (c *cell) appendElem(v byte) {
	c.n++
	if need := cellSize(c.n, c.width); need > len(c.data) {
		c.data = append(c.data, 0)
	}
	c.set(c.n-1, v)
}

func cellNot(op string, a *cell) *cell {
	c := newCell(op, a.n, a.width)
	for i := range c.data {
		c.data[i] = ^a.data[i]
	}
	c.canonicalize()
	return c
}

func cellBitwise(op string, a, b *cell, fn func(x, y byte) byte) *cell {
	if a.n != b.n {
		usagef(op, "the string operands must have the same length (", a.n, " and ", b.n, ")")
	}
	c := newCell(op, a.n, a.width)
	for i := range c.data {
		c.data[i] = fn(a.data[i], b.data[i])
	}
	c.canonicalize()
	return c
}

func cellConcat(op string, a, b *cell) *cell {
	switch {
	case a.n == 0:
		b.incRef()
		return b
	case b.n == 0:
		a.incRef()
		return a
	}

	c := newCell(op, a.n+b.n, a.width)
	copy(c.data, a.data)
	if (uint(a.n)*a.width)%8 == 0 {
		copy(c.data[len(a.data):], b.data)
	} else {
		for i := 0; i < b.n; i++ {
			c.set(a.n+i, b.get(i))
		}
	}
	return c
}

/*
cellShift returns a shifted by k elements: towards the first element for
positive k, towards the last for negative k. Vacated positions are zero.
*/
func cellShift(op string, a *cell, k int) *cell {
	c := newCell(op, a.n, a.width)
	for i := 0; i < a.n; i++ {
		if j := i + k; 0 <= j && j < a.n {
			c.set(i, a.get(j))
		}
	}
	return c
}

/*
cellRotate returns a rotated by k elements towards the first element;
negative k rotates the other way.
*/
func cellRotate(op string, a *cell, k int) *cell {
	if a.n == 0 {
		return emptyCell(a.width)
	}
	k %= a.n
	if k < 0 {
		k += a.n
	}
	c := newCell(op, a.n, a.width)
	for i := 0; i < a.n; i++ {
		c.set(i, a.get((i+k)%a.n))
	}
	return c
}

func cellSub(op string, a *cell, idx, n int) *cell {
	if idx < 0 || n < 0 || idx+n > a.n {
		usagef(op, "index ", idx, " and length ", n, " out of range for a string of length ", a.n)
	}
	c := newCell(op, n, a.width)
	for i := 0; i < n; i++ {
		c.set(i, a.get(idx+i))
	}
	return c
}
