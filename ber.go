package ttcnplus

/*
ber.go contains the X.690 Basic Encoding Rules for the types that have a
primitive BER representation: bitstring, octetstring and boolean.
*/

/*
encodeBERLengthInto appends the definite length n to dst, using the short
form below 128 and the minimal long form otherwise.
*/
func encodeBERLengthInto(dst *[]byte, n int) {
	if n < 128 { // short form
		*dst = append(*dst, byte(n))
		return
	}

	var tmp [8]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte(n)
		n >>= 8
	}
	*dst = append(*dst, 0x80|byte(len(tmp)-i))
	*dst = append(*dst, tmp[i:]...)
}

func berTagName(tag int) (s string) {
	switch tag {
	case tagBoolean:
		s = `BOOLEAN`
	case tagBitString:
		s = `BIT STRING`
	case tagOctetString:
		s = `OCTET STRING`
	default:
		s = `tag ` + itoa(tag)
	}
	return
}

/*
berWrap returns the universal primitive TLV of tag around content.
*/
func berWrap(tag int, content []byte) []byte {
	out := make([]byte, 0, len(content)+6)
	out = append(out, byte(tag))
	encodeBERLengthInto(&out, len(content))
	return append(out, content...)
}

/*
berUnwrap reads a universal primitive TLV of the given tag from the start
of data and returns its content alongside the number of bytes consumed.
*/
func berUnwrap(tag int, data []byte) (content []byte, n int, err error) {
	if len(data) < 2 {
		err = codecErrorf(ErrTruncated, "BER decoder: expected ", berTagName(tag),
			", found only ", len(data), " bytes")
		return
	} else if int(data[0]) != tag {
		err = codecErrorf(ErrBadLiteral, "BER decoder: expected ", berTagName(tag),
			", found identifier octet ", int(data[0]))
		return
	}

	var length int
	off := 2
	switch lb := data[1]; {
	case lb < 0x80:
		length = int(lb)
	case lb == 0x80:
		err = codecErrorf(ErrBadLiteral, "BER decoder: indefinite length in primitive ", berTagName(tag))
		return
	default:
		count := int(lb & 0x7F)
		if count > 4 || 2+count > len(data) {
			err = codecErrorf(ErrTruncated, "BER decoder: invalid long form length of ", count, " octets")
			return
		}
		for _, b := range data[2 : 2+count] {
			length = length<<8 | int(b)
		}
		off += count
	}

	if off+length > len(data) {
		err = codecErrorf(ErrTruncated, "BER decoder: ", berTagName(tag), " length ", length,
			" exceeds the ", len(data)-off, " remaining bytes")
		return
	}
	content = data[off : off+length]
	n = off + length
	return
}

/*
berBitstringContent returns the BER contents of c: the unused-bits octet
followed by the bits, first bit in the most significant position.
*/
func berBitstringContent(c *cell) []byte {
	out := make([]byte, 1+(c.n+7)/8)
	out[0] = byte((8 - c.n%8) % 8)
	for i := 0; i < c.n; i++ {
		if c.get(i) != 0 {
			out[1+i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}

func berBitstringDecode(data []byte) (bs Bitstring, n int, err error) {
	var content []byte
	if content, n, err = berUnwrap(tagBitString, data); err != nil {
		return
	}

	switch {
	case len(content) == 0:
		err = codecErrorf(ErrTruncated, "BER decoder: missing unused-bits octet in BIT STRING")
	case content[0] > 7:
		err = codecErrorf(ErrBadLiteral, "BER decoder: invalid unused-bits octet (", int(content[0]), ")")
	case len(content) == 1 && content[0] != 0:
		err = codecErrorf(ErrBadLiteral, "BER decoder: unused bits declared in an empty BIT STRING")
	}
	if err != nil {
		n = 0
		return
	}

	bits := (len(content)-1)*8 - int(content[0])
	c := newCell("BER decoder", bits, 1)
	for i := 0; i < bits; i++ {
		if content[1+i/8]&(0x80>>(i%8)) != 0 {
			c.set(i, 1)
		}
	}
	bs = Bitstring{c}
	return
}

func berOctetstringDecode(data []byte) (oct Octetstring, n int, err error) {
	var content []byte
	if content, n, err = berUnwrap(tagOctetString, data); err == nil {
		oct = NewOctetstring(content)
	}
	return
}

func berBooleanDecode(data []byte) (b Boolean, n int, err error) {
	var content []byte
	if content, n, err = berUnwrap(tagBoolean, data); err != nil {
		return
	} else if len(content) != 1 {
		n = 0
		err = codecErrorf(ErrBadLiteral, "BER decoder: expected a BOOLEAN content of 1 octet, found ", len(content))
		return
	}
	b = NewBoolean(content[0] != 0)
	return
}

func berBooleanContent(b Boolean) []byte {
	if b.v {
		return []byte{0xFF}
	}
	return []byte{0x00}
}
