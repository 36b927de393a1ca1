package ttcnplus

/*
family.go contains the per-type descriptors consulted by the generic
template, codec and module parameter machinery.
*/

/*
family describes one value type. width is the element width in bits of
string types and zero otherwise; the string-only members are nil for
non-string types.
*/
type family[V any] struct {
	name        string
	width       uint
	valueKind   ParamKind
	patternKind ParamKind // ParamUnbound when patterns are not supported

	length func(V) int
	cell   func(V) *cell
	octets func(V) []byte // decoded content matching input
	concat func(a, b V) V

	parse      func(string) (V, error)
	decodeText func(*TextBuf) (V, error)
	release    func(*V)
	codecs     map[Coding]codec[V]
}

var (
	bitstringFamily   *family[Bitstring]
	hexstringFamily   *family[Hexstring]
	octetstringFamily *family[Octetstring]
	booleanFamily     *family[Boolean]
	verdictFamily     *family[Verdict]
)

func decodeTextInto[V any, P interface {
	*V
	DecodeText(*TextBuf) error
}](buf *TextBuf) (v V, err error) {
	err = P(&v).DecodeText(buf)
	return
}

func init() {
	bitstringFamily = &family[Bitstring]{
		name:        "bitstring",
		width:       1,
		valueKind:   ParamBitstring,
		patternKind: ParamBitstringTemplate,
		length:      Bitstring.Lengthof,
		cell:        Bitstring.cellOf,
		octets: func(v Bitstring) []byte {
			o := Bit2Oct(v)
			defer o.Release()
			return o.Bytes()
		},
		concat:     Bitstring.Concat,
		parse:      ParseBitstring,
		decodeText: decodeTextInto[Bitstring],
		release:    (*Bitstring).Release,
		codecs: map[Coding]codec[Bitstring]{
			BER: {
				encode: func(v Bitstring) ([]byte, error) {
					return berWrap(tagBitString, berBitstringContent(v.cellOf())), nil
				},
				decode: berBitstringDecode,
			},
			JSON: {
				encode: func(v Bitstring) ([]byte, error) { return jsonCellEncode(v.cellOf()) },
				decode: func(data []byte) (v Bitstring, n int, err error) {
					v.c, n, err = jsonCellDecode(1, data)
					return
				},
			},
		},
	}

	hexstringFamily = &family[Hexstring]{
		name:        "hexstring",
		width:       4,
		valueKind:   ParamHexstring,
		patternKind: ParamHexstringTemplate,
		length:      Hexstring.Lengthof,
		cell:        Hexstring.cellOf,
		octets: func(v Hexstring) []byte {
			o := Hex2Oct(v)
			defer o.Release()
			return o.Bytes()
		},
		concat:     Hexstring.Concat,
		parse:      ParseHexstring,
		decodeText: decodeTextInto[Hexstring],
		release:    (*Hexstring).Release,
		codecs: map[Coding]codec[Hexstring]{
			JSON: {
				encode: func(v Hexstring) ([]byte, error) { return jsonCellEncode(v.cellOf()) },
				decode: func(data []byte) (v Hexstring, n int, err error) {
					v.c, n, err = jsonCellDecode(4, data)
					return
				},
			},
		},
	}

	octetstringFamily = &family[Octetstring]{
		name:        "octetstring",
		width:       8,
		valueKind:   ParamOctetstring,
		patternKind: ParamOctetstringTemplate,
		length:      Octetstring.Lengthof,
		cell:        Octetstring.cellOf,
		octets:      Octetstring.Bytes,
		concat:      Octetstring.Concat,
		parse:       ParseOctetstring,
		decodeText:  decodeTextInto[Octetstring],
		release:     (*Octetstring).Release,
		codecs: map[Coding]codec[Octetstring]{
			BER: {
				encode: func(v Octetstring) ([]byte, error) {
					return berWrap(tagOctetString, v.cellOf().data), nil
				},
				decode: berOctetstringDecode,
			},
			JSON: {
				encode: func(v Octetstring) ([]byte, error) { return jsonCellEncode(v.cellOf()) },
				decode: func(data []byte) (v Octetstring, n int, err error) {
					v.c, n, err = jsonCellDecode(8, data)
					return
				},
			},
		},
	}

	booleanFamily = &family[Boolean]{
		name:       "boolean",
		valueKind:  ParamBoolean,
		parse:      ParseBoolean,
		decodeText: decodeTextInto[Boolean],
		release:    func(*Boolean) {},
		codecs: map[Coding]codec[Boolean]{
			BER: {
				encode: func(v Boolean) ([]byte, error) { return berWrap(tagBoolean, berBooleanContent(v)), nil },
				decode: berBooleanDecode,
			},
			JSON: {
				encode: func(v Boolean) ([]byte, error) { return []byte(bool2str(v.v)), nil },
				decode: jsonBooleanDecode,
			},
		},
	}

	verdictFamily = &family[Verdict]{
		name:       "verdict",
		valueKind:  ParamVerdict,
		parse:      ParseVerdict,
		decodeText: decodeTextInto[Verdict],
		release:    func(*Verdict) {},
		codecs: map[Coding]codec[Verdict]{
			JSON: {
				encode: func(v Verdict) ([]byte, error) { return []byte(quote(v.v.String())), nil },
				decode: jsonVerdictDecode,
			},
		},
	}
}
