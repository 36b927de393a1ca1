package ttcnplus

/*
json.go contains the JSON encodings of the value types: string types as
quoted digit strings, booleans as JSON literals and verdicts as quoted
names.
*/

import (
	"bytes"
	"encoding/json"
)

/*
jsonNext decodes the first JSON value of data into out and returns the
number of bytes consumed.
*/
func jsonNext(data []byte, out any) (n int, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err = dec.Decode(out); err != nil {
		err = codecErrorf(ErrBadLiteral, "JSON decoder: ", err)
		return
	}
	n = int(dec.InputOffset())
	return
}

func jsonCellEncode(c *cell) ([]byte, error) {
	lit := cellLiteral(c)
	return json.Marshal(lit[1 : len(lit)-2])
}

func jsonCellDecode(width uint, data []byte) (c *cell, n int, err error) {
	var s string
	if n, err = jsonNext(data, &s); err != nil {
		return
	}
	var elems []byte
	if elems, err = parseElems(width, s); err != nil {
		n = 0
		err = codecErrorf(ErrBadLiteral, "JSON decoder: ", err)
		return
	}
	c = cellOfElems("JSON decoder", width, elems)
	return
}

func jsonBooleanDecode(data []byte) (b Boolean, n int, err error) {
	var v bool
	if n, err = jsonNext(data, &v); err == nil {
		b = NewBoolean(v)
	}
	return
}

func jsonVerdictDecode(data []byte) (v Verdict, n int, err error) {
	var s string
	if n, err = jsonNext(data, &s); err == nil {
		if v, err = ParseVerdict(s); err != nil {
			n = 0
			err = codecErrorf(ErrBadLiteral, "JSON decoder: ", err)
		}
	}
	return
}
