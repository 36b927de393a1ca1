package ttcnplus

/*
hs.go contains types and methods pertaining to the TTCN-3 hexstring type.
*/

/*
Hexstring implements the TTCN-3 hexstring type. The zero value is
unbound. Handle semantics follow those of [Bitstring].
*/
type Hexstring struct {
	c *cell
}

/*
NewHexstring returns a [Hexstring] of n digits taken from data, where
digit i resides in data[i/2], odd indices in the high nibble.
*/
func NewHexstring(n int, data []byte) Hexstring {
	if data == nil {
		return Hexstring{newCell("NewHexstring", n, 4)}
	}
	return Hexstring{cellFrom("NewHexstring", n, 4, data)}
}

/*
ParseHexstring returns an instance of [Hexstring] alongside an error
following an attempt to parse lit, given as 'A5'H or '0A'O.
*/
func ParseHexstring(lit string) (hs Hexstring, err error) {
	var c *cell
	if c, err = parseCell("ParseHexstring", 4, lit); err == nil {
		hs = Hexstring{c}
	}
	return
}

func (r Hexstring) cellOf() *cell                   { return r.c.live("hexstring") }
func (r Hexstring) valueFamily() *family[Hexstring] { return hexstringFamily }

/*
IsBound returns a Boolean value indicative of the receiver holding a value.
*/
func (r Hexstring) IsBound() bool { return r.c != nil }

/*
Clone returns a new handle sharing the receiver's storage.
*/
func (r Hexstring) Clone() Hexstring {
	if r.c != nil {
		r.cellOf().incRef()
	}
	return r
}

/*
Release drops the receiver's reference and leaves it unbound.
*/
func (r *Hexstring) Release() {
	if r.c != nil {
		r.c.decRef("Hexstring.Release")
		r.c = nil
	}
}

/*
Lengthof returns the number of hexadecimal digits in the receiver.
*/
func (r Hexstring) Lengthof() int {
	mustBound(r.IsBound(), "lengthof() on hexstring")
	return r.cellOf().n
}

/*
Digit returns the value of the digit at index i.
*/
func (r Hexstring) Digit(i int) byte {
	mustBound(r.IsBound(), "indexing a hexstring")
	if c := r.cellOf(); i < 0 || i >= c.n {
		usagef("indexing a hexstring", "index ", i, " out of range [0..", c.n-1, "]")
	}
	return r.c.get(i)
}

/*
SetDigit sets the digit at index i to the low nibble of v. An index
equal to the current length appends one digit.
*/
func (r *Hexstring) SetDigit(i int, v byte) {
	const op = "assigning a hexstring element"
	if r.c == nil {
		if i != 0 {
			usagef(op, "index ", i, " on an unbound hexstring")
		}
		r.c = emptyCell(4)
	}
	c := r.cellOf()
	if i < 0 || i > c.n {
		usagef(op, "index ", i, " out of range [0..", c.n, "]")
	}
	r.c = unique(op, c)
	if i == r.c.n {
		r.c.appendElem(v)
	} else {
		r.c.set(i, v)
	}
}

/*
Equal returns a Boolean value indicative of r and o holding the same
digits. Both operands must be bound.
*/
func (r Hexstring) Equal(o Hexstring) bool {
	mustBound(r.IsBound(), "comparison of hexstrings (left operand)")
	mustBound(o.IsBound(), "comparison of hexstrings (right operand)")
	return r.cellOf().equal(o.cellOf())
}

/*
Bytes returns a copy of the canonical packed payload.
*/
func (r Hexstring) Bytes() []byte {
	mustBound(r.IsBound(), "accessing hexstring payload")
	return append([]byte{}, r.cellOf().data...)
}

/*
String returns the TTCN-3 literal of the receiver, e.g. 'A5'H.
*/
func (r Hexstring) String() string { return unboundLiteral(r.c) }

/*
Concat returns the concatenation of r and o.
*/
func (r Hexstring) Concat(o Hexstring) Hexstring {
	mustBound(r.IsBound(), "concatenation of hexstrings (left operand)")
	mustBound(o.IsBound(), "concatenation of hexstrings (right operand)")
	return Hexstring{cellConcat("hexstring concatenation", r.cellOf(), o.cellOf())}
}

/*
Not4b returns the digit-wise complement of the receiver.
*/
func (r Hexstring) Not4b() Hexstring {
	mustBound(r.IsBound(), "not4b on hexstring")
	return Hexstring{cellNot("not4b", r.cellOf())}
}

/*
And4b returns the bitwise AND of two hexstrings of equal length.
*/
func (r Hexstring) And4b(o Hexstring) Hexstring {
	return r.bitwise("and4b", o, func(x, y byte) byte { return x & y })
}

/*
Or4b returns the bitwise OR of two hexstrings of equal length.
*/
func (r Hexstring) Or4b(o Hexstring) Hexstring {
	return r.bitwise("or4b", o, func(x, y byte) byte { return x | y })
}

/*
Xor4b returns the bitwise XOR of two hexstrings of equal length.
*/
func (r Hexstring) Xor4b(o Hexstring) Hexstring {
	return r.bitwise("xor4b", o, func(x, y byte) byte { return x ^ y })
}

func (r Hexstring) bitwise(op string, o Hexstring, fn func(x, y byte) byte) Hexstring {
	mustBound(r.IsBound(), op+" on hexstring (left operand)")
	mustBound(o.IsBound(), op+" on hexstring (right operand)")
	return Hexstring{cellBitwise(op+" on hexstrings", r.cellOf(), o.cellOf(), fn)}
}

/*
Shl returns the receiver shifted left by k digits.
*/
func (r Hexstring) Shl(k int) Hexstring {
	mustBound(r.IsBound(), "shift left on hexstring")
	return Hexstring{cellShift("hexstring shift", r.cellOf(), k)}
}

/*
Shr returns the receiver shifted right by k digits.
*/
func (r Hexstring) Shr(k int) Hexstring { return r.Shl(-k) }

/*
Rotl returns the receiver rotated left by k digits.
*/
func (r Hexstring) Rotl(k int) Hexstring {
	mustBound(r.IsBound(), "rotate left on hexstring")
	return Hexstring{cellRotate("hexstring rotate", r.cellOf(), k)}
}

/*
Rotr returns the receiver rotated right by k digits.
*/
func (r Hexstring) Rotr(k int) Hexstring { return r.Rotl(-k) }

/*
EncodeText appends the receiver to buf.
*/
func (r Hexstring) EncodeText(buf *TextBuf) {
	encodeCellText("text encoder: encoding an unbound hexstring value", r.c, buf)
}

/*
DecodeText replaces the receiver with a hexstring read from buf.
*/
func (r *Hexstring) DecodeText(buf *TextBuf) error {
	c, err := decodeCellText("Hexstring.DecodeText", "hexstring", 4, buf)
	if err == nil {
		r.Release()
		r.c = c
	}
	return err
}

/*
Hex2Bit converts hs to a bitstring of four bits per digit.
*/
func Hex2Bit(hs Hexstring) Bitstring {
	mustBound(hs.IsBound(), "hex2bit()")
	c := hs.cellOf()
	c.incRef()
	return Bitstring{widen("hex2bit()", c, 1)}
}

/*
Hex2Oct converts hs to an octetstring, padding with a zero digit on the
left to an even number of digits.
*/
func Hex2Oct(hs Hexstring) Octetstring {
	mustBound(hs.IsBound(), "hex2oct()")
	return Octetstring{narrow("hex2oct()", hs.cellOf(), 8)}
}
