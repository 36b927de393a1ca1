package ttcnplus

/*
bs.go contains types and methods pertaining to the TTCN-3 bitstring type.
*/

/*
Bitstring implements the TTCN-3 bitstring type. The zero value is
unbound.

A Bitstring is a handle over shared, reference-counted storage. Use
[Bitstring.Clone] to obtain another handle and [Bitstring.Release] to
drop one; plain assignment aliases the storage without counting it.
Mutating methods copy the storage first if it is shared.
*/
type Bitstring struct {
	c *cell
}

/*
NewBitstring returns a [Bitstring] of n bits taken from data, where bit i
resides in data[i/8] under the mask 1<<(i%8). Padding bits of the final
byte are ignored. A nil data yields n zero bits.
*/
func NewBitstring(n int, data []byte) Bitstring {
	if data == nil {
		return Bitstring{newCell("NewBitstring", n, 1)}
	}
	return Bitstring{cellFrom("NewBitstring", n, 1, data)}
}

/*
ParseBitstring returns an instance of [Bitstring] alongside an error
following an attempt to parse lit, which may be given in binary ('0101'B),
hexadecimal ('5'H) or octet ('05'O) notation.
*/
func ParseBitstring(lit string) (bs Bitstring, err error) {
	var c *cell
	if c, err = parseCell("ParseBitstring", 1, lit); err == nil {
		bs = Bitstring{c}
	}
	return
}

func (r Bitstring) cellOf() *cell { return r.c.live("bitstring") }

func (r Bitstring) valueFamily() *family[Bitstring] { return bitstringFamily }

/*
IsBound returns a Boolean value indicative of the receiver holding a value.
*/
func (r Bitstring) IsBound() bool { return r.c != nil }

/*
Clone returns a new handle sharing the receiver's storage.
*/
func (r Bitstring) Clone() Bitstring {
	if r.c != nil {
		r.cellOf().incRef()
	}
	return r
}

/*
Release drops the receiver's reference and leaves it unbound.
*/
func (r *Bitstring) Release() {
	if r.c != nil {
		r.c.decRef("Bitstring.Release")
		r.c = nil
	}
}

/*
Lengthof returns the number of bits in the receiver.
*/
func (r Bitstring) Lengthof() int {
	mustBound(r.IsBound(), "lengthof() on bitstring")
	return r.cellOf().n
}

/*
Bit returns the bit at index i.
*/
func (r Bitstring) Bit(i int) bool {
	mustBound(r.IsBound(), "indexing a bitstring")
	if c := r.cellOf(); i < 0 || i >= c.n {
		usagef("indexing a bitstring", "index ", i, " out of range [0..", c.n-1, "]")
	}
	return r.c.get(i) == 1
}

/*
SetBit sets the bit at index i. An index equal to the current length
appends one bit.
*/
func (r *Bitstring) SetBit(i int, v bool) {
	const op = "assigning a bitstring element"
	if r.c == nil {
		if i != 0 {
			usagef(op, "index ", i, " on an unbound bitstring")
		}
		r.c = emptyCell(1)
	}
	c := r.cellOf()
	if i < 0 || i > c.n {
		usagef(op, "index ", i, " out of range [0..", c.n, "]")
	}

	var b byte
	if v {
		b = 1
	}
	r.c = unique(op, c)
	if i == r.c.n {
		r.c.appendElem(b)
	} else {
		r.c.set(i, b)
	}
}

/*
Equal returns a Boolean value indicative of r and o holding the same
bits. Both operands must be bound.
*/
func (r Bitstring) Equal(o Bitstring) bool {
	mustBound(r.IsBound(), "comparison of bitstrings (left operand)")
	mustBound(o.IsBound(), "comparison of bitstrings (right operand)")
	return r.cellOf().equal(o.cellOf())
}

/*
Bytes returns a copy of the canonical packed payload.
*/
func (r Bitstring) Bytes() []byte {
	mustBound(r.IsBound(), "accessing bitstring payload")
	return append([]byte{}, r.cellOf().data...)
}

/*
String returns the TTCN-3 literal of the receiver, e.g. '0101'B.
*/
func (r Bitstring) String() string { return unboundLiteral(r.c) }

/*
Concat returns the concatenation of r and o.
*/
func (r Bitstring) Concat(o Bitstring) Bitstring {
	mustBound(r.IsBound(), "concatenation of bitstrings (left operand)")
	mustBound(o.IsBound(), "concatenation of bitstrings (right operand)")
	return Bitstring{cellConcat("bitstring concatenation", r.cellOf(), o.cellOf())}
}

/*
Not4b returns the bitwise complement of the receiver.
*/
func (r Bitstring) Not4b() Bitstring {
	mustBound(r.IsBound(), "not4b on bitstring")
	return Bitstring{cellNot("not4b", r.cellOf())}
}

/*
And4b returns the bitwise AND of two bitstrings of equal length.
*/
func (r Bitstring) And4b(o Bitstring) Bitstring {
	return r.bitwise("and4b", o, func(x, y byte) byte { return x & y })
}

/*
Or4b returns the bitwise OR of two bitstrings of equal length.
*/
func (r Bitstring) Or4b(o Bitstring) Bitstring {
	return r.bitwise("or4b", o, func(x, y byte) byte { return x | y })
}

/*
Xor4b returns the bitwise XOR of two bitstrings of equal length.
*/
func (r Bitstring) Xor4b(o Bitstring) Bitstring {
	return r.bitwise("xor4b", o, func(x, y byte) byte { return x ^ y })
}

func (r Bitstring) bitwise(op string, o Bitstring, fn func(x, y byte) byte) Bitstring {
	mustBound(r.IsBound(), op+" on bitstring (left operand)")
	mustBound(o.IsBound(), op+" on bitstring (right operand)")
	return Bitstring{cellBitwise(op+" on bitstrings", r.cellOf(), o.cellOf(), fn)}
}

/*
Shl returns the receiver shifted left by k bits, filling with zeros.
A negative k shifts right.
*/
func (r Bitstring) Shl(k int) Bitstring {
	mustBound(r.IsBound(), "shift left on bitstring")
	return Bitstring{cellShift("bitstring shift", r.cellOf(), k)}
}

/*
Shr returns the receiver shifted right by k bits, filling with zeros.
A negative k shifts left.
*/
func (r Bitstring) Shr(k int) Bitstring { return r.Shl(-k) }

/*
Rotl returns the receiver rotated left by k bits.
*/
func (r Bitstring) Rotl(k int) Bitstring {
	mustBound(r.IsBound(), "rotate left on bitstring")
	return Bitstring{cellRotate("bitstring rotate", r.cellOf(), k)}
}

/*
Rotr returns the receiver rotated right by k bits.
*/
func (r Bitstring) Rotr(k int) Bitstring { return r.Rotl(-k) }

/*
EncodeText appends the receiver to buf: the bit count followed by the
packed payload.
*/
func (r Bitstring) EncodeText(buf *TextBuf) {
	encodeCellText("text encoder: encoding an unbound bitstring value", r.c, buf)
}

/*
DecodeText replaces the receiver with a bitstring read from buf. The
receiver is left untouched on error.
*/
func (r *Bitstring) DecodeText(buf *TextBuf) error {
	c, err := decodeCellText("Bitstring.DecodeText", "bitstring", 1, buf)
	if err == nil {
		r.Release()
		r.c = c
	}
	return err
}

/*
Bit2Oct converts bs to an octetstring, padding with zero bits on the left
to a multiple of eight.
*/
func Bit2Oct(bs Bitstring) Octetstring {
	mustBound(bs.IsBound(), "bit2oct()")
	return Octetstring{narrow("bit2oct()", bs.cellOf(), 8)}
}

/*
Bit2Hex converts bs to a hexstring, padding with zero bits on the left
to a multiple of four.
*/
func Bit2Hex(bs Bitstring) Hexstring {
	mustBound(bs.IsBound(), "bit2hex()")
	return Hexstring{narrow("bit2hex()", bs.cellOf(), 4)}
}

/*
Bit2Int returns the non-negative integer whose binary representation,
most significant bit first, is bs.
*/
func Bit2Int(bs Bitstring) Integer {
	mustBound(bs.IsBound(), "bit2int()")
	c := bs.cellOf()

	if c.n < 64 {
		var v int64
		for i := 0; i < c.n; i++ {
			v = v<<1 | int64(c.get(i))
		}
		return NewInteger(v)
	}

	d := newBigInteger()
	for i := 0; i < c.n; i++ {
		d = d.Lsh(1).AddUint(uint64(c.get(i)))
	}
	return NewBigInteger(d)
}

/*
Int2Bit returns the n-bit binary representation of the non-negative v,
most significant bit first.
*/
func Int2Bit(v int64, n int) Bitstring {
	const op = "int2bit()"
	if v < 0 {
		usagef(op, "the first argument (value) is negative (", v, ")")
	} else if n < 0 {
		usagef(op, "the second argument (length) is negative (", n, ")")
	}

	c := newCell(op, n, 1)
	for i := n - 1; i >= 0 && v != 0; i-- {
		c.set(i, byte(v&1))
		v >>= 1
	}
	if v != 0 {
		c.decRef(op)
		usagef(op, "the first argument does not fit in ", n, " bits")
	}
	return Bitstring{c}
}

/*
Substr returns n bits of bs starting at index idx.
*/
func Substr(bs Bitstring, idx, n int) Bitstring {
	mustBound(bs.IsBound(), "substr()")
	return Bitstring{cellSub("substr()", bs.cellOf(), idx, n)}
}

/*
Replace returns bs with the n bits starting at index idx replaced by repl.
*/
func Replace(bs Bitstring, idx, n int, repl Bitstring) Bitstring {
	const op = "replace()"
	mustBound(bs.IsBound(), op)
	mustBound(repl.IsBound(), op)

	c := bs.cellOf()
	if idx < 0 || n < 0 || idx+n > c.n {
		usagef(op, "index ", idx, " and length ", n, " out of range for a bitstring of length ", c.n)
	}
	head := cellSub(op, c, 0, idx)
	tail := cellSub(op, c, idx+n, c.n-idx-n)
	mid := cellConcat(op, head, repl.cellOf())
	out := cellConcat(op, mid, tail)
	head.decRef(op)
	mid.decRef(op)
	tail.decRef(op)
	return Bitstring{out}
}
