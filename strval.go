package ttcnplus

/*
strval.go contains elements shared by the string value handles.
*/

/*
stringValue is qualified through the cell-backed handles [Bitstring],
[Hexstring] and [Octetstring].
*/
type stringValue interface {
	cellOf() *cell
}

func literalSuffix(width uint) (s byte) {
	switch width {
	case 1:
		s = 'B'
	case 4:
		s = 'H'
	default:
		s = 'O'
	}
	return
}

/*
writeElem renders one element (or pattern code) in the literal notation
of the given element width.
*/
func writeElem(bld interface{ WriteByte(byte) error }, width uint, v byte) {
	switch width {
	case 1:
		_ = bld.WriteByte('0' + v&1)
	case 4:
		_ = bld.WriteByte(hexDigit(v))
	default:
		_ = bld.WriteByte(hexDigit(v >> 4))
		_ = bld.WriteByte(hexDigit(v))
	}
}

/*
cellLiteral returns the TTCN-3 literal of c, e.g. '0101'B.
*/
func cellLiteral(c *cell) string {
	bld := newStrBuilder()
	bld.WriteByte('\'')
	for i := 0; i < c.n; i++ {
		writeElem(&bld, c.width, c.get(i))
	}
	bld.WriteByte('\'')
	bld.WriteByte(literalSuffix(c.width))
	return bld.String()
}

func unboundLiteral(c *cell) string {
	if c == nil {
		return `<unbound>`
	}
	return cellLiteral(c)
}

/*
parseElems converts literal digits of the given width into element
values: one binary digit, one hexadecimal digit or a pair of hexadecimal
digits per element.
*/
func parseElems(width uint, digits string) (elems []byte, err error) {
	switch width {
	case 1:
		elems = make([]byte, len(digits))
		for i := 0; i < len(digits) && err == nil; i++ {
			switch digits[i] {
			case '0', '1':
				elems[i] = digits[i] - '0'
			default:
				err = literalErrorf("invalid binary digit ", quote(digits[i:i+1]), " at position ", i)
			}
		}
	case 4:
		elems = make([]byte, len(digits))
		for i := 0; i < len(digits) && err == nil; i++ {
			var ok bool
			if elems[i], ok = hexValue(digits[i]); !ok {
				err = literalErrorf("invalid hexadecimal digit ", quote(digits[i:i+1]), " at position ", i)
			}
		}
	default:
		if len(digits)%2 != 0 {
			err = literalErrorf("odd number of hexadecimal digits in octetstring literal")
			return
		}
		elems = make([]byte, len(digits)/2)
		for i := 0; i < len(elems) && err == nil; i++ {
			hi, ok1 := hexValue(digits[2*i])
			lo, ok2 := hexValue(digits[2*i+1])
			if !ok1 || !ok2 {
				err = literalErrorf("invalid hexadecimal digits ", quote(digits[2*i:2*i+2]), " at position ", 2*i)
			}
			elems[i] = hi<<4 | lo
		}
	}
	return
}

/*
cellOfElems packs element values into a fresh cell.
*/
func cellOfElems(op string, width uint, elems []byte) *cell {
	c := newCell(op, len(elems), width)
	for i, v := range elems {
		c.set(i, v)
	}
	return c
}

/*
parseCell parses a string literal of the native width, additionally
accepting widening forms: a bitstring may be written in 'H or 'O
notation and a hexstring in 'O notation.
*/
func parseCell(op string, width uint, lit string) (c *cell, err error) {
	var digits string
	var suffix byte
	if digits, suffix, err = splitLiteral(lit); err != nil {
		return
	}

	var src uint
	switch suffix {
	case 'B':
		src = 1
	case 'H':
		src = 4
	case 'O':
		src = 8
	default:
		err = literalErrorf("unknown string literal suffix ", quote(string(suffix)))
		return
	}
	if src < width {
		err = literalErrorf(quote(lit), " cannot be narrowed to a ", string(literalSuffix(width)), " string")
		return
	}

	var elems []byte
	if elems, err = parseElems(src, digits); err == nil {
		c = widen(op, cellOfElems(op, src, elems), width)
	}
	return
}

/*
widen reinterprets the elements of c as a sequence of narrower elements,
most significant bits first. src.width must be a multiple of width.
*/
func widen(op string, src *cell, width uint) *cell {
	if src.width == width {
		return src
	}
	per := int(src.width / width)
	c := newCell(op, src.n*per, width)
	for i := 0; i < src.n; i++ {
		v := src.get(i)
		for j := 0; j < per; j++ {
			sh := uint(per-1-j) * width
			c.set(i*per+j, v>>sh)
		}
	}
	src.decRef(op)
	return c
}

/*
narrow packs the elements of src into elements of the wider width,
padding with zero elements on the left to a whole number of wide
elements.
*/
func narrow(op string, src *cell, width uint) *cell {
	per := int(width / src.width)
	pad := (per - src.n%per) % per
	c := newCell(op, (src.n+pad)/per, width)
	for i := 0; i < c.n; i++ {
		var v byte
		for j := 0; j < per; j++ {
			v <<= src.width
			if k := i*per + j - pad; k >= 0 {
				v |= src.get(k)
			}
		}
		c.set(i, v)
	}
	return c
}

func encodeCellText(op string, c *cell, buf *TextBuf) {
	mustBound(c != nil, op)
	buf.PushInt(int64(c.n))
	buf.PushRaw(c.data)
}

/*
decodeCellText reads a cell written by encodeCellText. The read cursor is
restored on failure.
*/
func decodeCellText(op, what string, width uint, buf *TextBuf) (c *cell, err error) {
	save := buf.pos
	var n int
	if n, err = buf.pullLength(what + " length"); err != nil {
		return
	}
	var raw []byte
	if raw, err = buf.PullRaw(cellSize(n, width)); err != nil {
		buf.pos = save
		return
	}
	c = cellFrom(op, n, width, raw)
	return
}
