package ttcnplus

/*
oct.go contains all types and methods pertaining to the TTCN-3
octetstring type.
*/

/*
Octetstring implements the TTCN-3 octetstring type. The zero value is
unbound. Handle semantics follow those of [Bitstring].
*/
type Octetstring struct {
	c *cell
}

/*
NewOctetstring returns an [Octetstring] holding a copy of data. A nil
data yields the empty octetstring.
*/
func NewOctetstring(data []byte) Octetstring {
	return Octetstring{cellFrom("NewOctetstring", len(data), 8, data)}
}

/*
ParseOctetstring returns an instance of [Octetstring] alongside an error
following an attempt to parse lit, given as '0AFF'O.
*/
func ParseOctetstring(lit string) (oct Octetstring, err error) {
	var c *cell
	if c, err = parseCell("ParseOctetstring", 8, lit); err == nil {
		oct = Octetstring{c}
	}
	return
}

func (r Octetstring) cellOf() *cell                     { return r.c.live("octetstring") }
func (r Octetstring) valueFamily() *family[Octetstring] { return octetstringFamily }

/*
IsBound returns a Boolean value indicative of the receiver holding a value.
*/
func (r Octetstring) IsBound() bool { return r.c != nil }

/*
Clone returns a new handle sharing the receiver's storage.
*/
func (r Octetstring) Clone() Octetstring {
	if r.c != nil {
		r.cellOf().incRef()
	}
	return r
}

/*
Release drops the receiver's reference and leaves it unbound.
*/
func (r *Octetstring) Release() {
	if r.c != nil {
		r.c.decRef("Octetstring.Release")
		r.c = nil
	}
}

/*
Lengthof returns the number of octets in the receiver.
*/
func (r Octetstring) Lengthof() int {
	mustBound(r.IsBound(), "lengthof() on octetstring")
	return r.cellOf().n
}

/*
Octet returns the octet at index i.
*/
func (r Octetstring) Octet(i int) byte {
	mustBound(r.IsBound(), "indexing an octetstring")
	if c := r.cellOf(); i < 0 || i >= c.n {
		usagef("indexing an octetstring", "index ", i, " out of range [0..", c.n-1, "]")
	}
	return r.c.data[i]
}

/*
SetOctet sets the octet at index i. An index equal to the current length
appends one octet.
*/
func (r *Octetstring) SetOctet(i int, v byte) {
	const op = "assigning an octetstring element"
	if r.c == nil {
		if i != 0 {
			usagef(op, "index ", i, " on an unbound octetstring")
		}
		r.c = emptyCell(8)
	}
	c := r.cellOf()
	if i < 0 || i > c.n {
		usagef(op, "index ", i, " out of range [0..", c.n, "]")
	}
	r.c = unique(op, c)
	if i == r.c.n {
		r.c.appendElem(v)
	} else {
		r.c.data[i] = v
	}
}

/*
Equal returns a Boolean value indicative of r and o holding the same
octets. Both operands must be bound.
*/
func (r Octetstring) Equal(o Octetstring) bool {
	mustBound(r.IsBound(), "comparison of octetstrings (left operand)")
	mustBound(o.IsBound(), "comparison of octetstrings (right operand)")
	return r.cellOf().equal(o.cellOf())
}

/*
Bytes returns a copy of the octets.
*/
func (r Octetstring) Bytes() []byte {
	mustBound(r.IsBound(), "accessing octetstring payload")
	return append([]byte{}, r.cellOf().data...)
}

/*
String returns the TTCN-3 literal of the receiver, e.g. '0AFF'O.
*/
func (r Octetstring) String() string { return unboundLiteral(r.c) }

/*
Concat returns the concatenation of r and o.
*/
func (r Octetstring) Concat(o Octetstring) Octetstring {
	mustBound(r.IsBound(), "concatenation of octetstrings (left operand)")
	mustBound(o.IsBound(), "concatenation of octetstrings (right operand)")
	return Octetstring{cellConcat("octetstring concatenation", r.cellOf(), o.cellOf())}
}

/*
Not4b returns the bitwise complement of the receiver.
*/
func (r Octetstring) Not4b() Octetstring {
	mustBound(r.IsBound(), "not4b on octetstring")
	return Octetstring{cellNot("not4b", r.cellOf())}
}

/*
And4b returns the bitwise AND of two octetstrings of equal length.
*/
func (r Octetstring) And4b(o Octetstring) Octetstring {
	return r.bitwise("and4b", o, func(x, y byte) byte { return x & y })
}

/*
Or4b returns the bitwise OR of two octetstrings of equal length.
*/
func (r Octetstring) Or4b(o Octetstring) Octetstring {
	return r.bitwise("or4b", o, func(x, y byte) byte { return x | y })
}

/*
Xor4b returns the bitwise XOR of two octetstrings of equal length.
*/
func (r Octetstring) Xor4b(o Octetstring) Octetstring {
	return r.bitwise("xor4b", o, func(x, y byte) byte { return x ^ y })
}

func (r Octetstring) bitwise(op string, o Octetstring, fn func(x, y byte) byte) Octetstring {
	mustBound(r.IsBound(), op+" on octetstring (left operand)")
	mustBound(o.IsBound(), op+" on octetstring (right operand)")
	return Octetstring{cellBitwise(op+" on octetstrings", r.cellOf(), o.cellOf(), fn)}
}

/*
Shl returns the receiver shifted left by k octets.
*/
func (r Octetstring) Shl(k int) Octetstring {
	mustBound(r.IsBound(), "shift left on octetstring")
	return Octetstring{cellShift("octetstring shift", r.cellOf(), k)}
}

/*
Shr returns the receiver shifted right by k octets.
*/
func (r Octetstring) Shr(k int) Octetstring { return r.Shl(-k) }

/*
Rotl returns the receiver rotated left by k octets.
*/
func (r Octetstring) Rotl(k int) Octetstring {
	mustBound(r.IsBound(), "rotate left on octetstring")
	return Octetstring{cellRotate("octetstring rotate", r.cellOf(), k)}
}

/*
Rotr returns the receiver rotated right by k octets.
*/
func (r Octetstring) Rotr(k int) Octetstring { return r.Rotl(-k) }

/*
EncodeText appends the receiver to buf.
*/
func (r Octetstring) EncodeText(buf *TextBuf) {
	encodeCellText("text encoder: encoding an unbound octetstring value", r.c, buf)
}

/*
DecodeText replaces the receiver with an octetstring read from buf.
*/
func (r *Octetstring) DecodeText(buf *TextBuf) error {
	c, err := decodeCellText("Octetstring.DecodeText", "octetstring", 8, buf)
	if err == nil {
		r.Release()
		r.c = c
	}
	return err
}

/*
Oct2Bit converts oct to a bitstring of eight bits per octet.
*/
func Oct2Bit(oct Octetstring) Bitstring {
	mustBound(oct.IsBound(), "oct2bit()")
	c := oct.cellOf()
	c.incRef()
	return Bitstring{widen("oct2bit()", c, 1)}
}

/*
Oct2Hex converts oct to a hexstring of two digits per octet.
*/
func Oct2Hex(oct Octetstring) Hexstring {
	mustBound(oct.IsBound(), "oct2hex()")
	c := oct.cellOf()
	c.incRef()
	return Hexstring{widen("oct2hex()", c, 4)}
}
