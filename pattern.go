package ttcnplus

/*
pattern.go contains the string pattern matcher shared by the string
templates.
*/

/*
PatternKind classifies one position of a sequence pattern.
*/
type PatternKind uint8

const (
	PatternLiteral    PatternKind = iota // matches one equal element
	PatternAnyElement                    // ?
	PatternAnyOrNone                     // *
)

/*
MatchSequence reports whether a value of nValue elements matches a
pattern of nPattern positions. kind classifies pattern position pi, and
equal compares literal pattern position pi with value element vi.

The matcher scans greedily and remembers only the most recent "*" as a
backtracking point: on a mismatch it resumes right after that "*" with
the star absorbing one more value element. Patterns whose match would
require returning to an earlier "*" are rejected.
*/
func MatchSequence(nPattern, nValue int, kind func(pi int) PatternKind, equal func(pi, vi int) bool) bool {
	if nPattern == 0 {
		return nValue == 0
	}

	var vi, pi int
	lastStar, lastValue := -1, -1

	for {
		if vi == nValue {
			for pi < nPattern && kind(pi) == PatternAnyOrNone {
				pi++
			}
			return pi == nPattern
		}

		switch kind(pi) {
		case PatternLiteral:
			if equal(pi, vi) {
				vi++
				pi++
			} else if lastStar == -1 {
				return false
			} else {
				pi = lastStar + 1
				lastValue++
				vi = lastValue
			}
		case PatternAnyElement:
			vi++
			pi++
		case PatternAnyOrNone:
			lastStar = pi
			lastValue = vi
			pi++
		}

		if vi == nValue && pi == nPattern {
			return true
		} else if pi == nPattern {
			if kind(pi-1) == PatternAnyOrNone {
				return true
			} else if lastStar == -1 {
				return false
			}
			pi = lastStar + 1
			lastValue++
			vi = lastValue
		}
	}
}

/*
strPattern is a string pattern over elements of the given width. Codes
below 1<<width are literal elements; 1<<width is "?" and 1<<width+1 is
"*".
*/
type strPattern struct {
	width uint
	codes []int
}

func (r strPattern) anyElem() int   { return 1 << r.width }
func (r strPattern) anyOrNone() int { return 1<<r.width + 1 }

func (r strPattern) kind(i int) PatternKind {
	switch r.codes[i] {
	case r.anyElem():
		return PatternAnyElement
	case r.anyOrNone():
		return PatternAnyOrNone
	}
	return PatternLiteral
}

func (r strPattern) match(c *cell) bool {
	return MatchSequence(len(r.codes), c.n, r.kind, func(pi, vi int) bool {
		return r.codes[pi] == int(c.get(vi))
	})
}

/*
minLength returns the number of positions that consume exactly one
element, alongside whether a "*" is present.
*/
func (r strPattern) minLength() (n int, star bool) {
	for i := range r.codes {
		if r.kind(i) == PatternAnyOrNone {
			star = true
		} else {
			n++
		}
	}
	return
}

func (r strPattern) String() string {
	bld := newStrBuilder()
	bld.WriteByte('\'')
	for i, code := range r.codes {
		switch r.kind(i) {
		case PatternAnyElement:
			bld.WriteByte('?')
		case PatternAnyOrNone:
			bld.WriteByte('*')
		default:
			writeElem(&bld, r.width, byte(code))
		}
	}
	bld.WriteByte('\'')
	bld.WriteByte(literalSuffix(r.width))
	return bld.String()
}

/*
parsePattern returns the pattern denoted by lit, e.g. '1?*0'B, '0A?*'O.
*/
func parsePattern(width uint, lit string) (p strPattern, err error) {
	var digits string
	var suffix byte
	if digits, suffix, err = splitLiteral(lit); err != nil {
		return
	} else if suffix != literalSuffix(width) {
		err = literalErrorf("pattern ", quote(lit), " does not carry the ", string(literalSuffix(width)), " suffix")
		return
	}

	p.width = width
	p.codes = make([]int, 0, len(digits))
	for i := 0; i < len(digits) && err == nil; {
		switch digits[i] {
		case '?':
			p.codes = append(p.codes, p.anyElem())
			i++
		case '*':
			p.codes = append(p.codes, p.anyOrNone())
			i++
		default:
			step := 1
			if width == 8 {
				step = 2
			}
			if i+step > len(digits) {
				err = literalErrorf("incomplete element at the end of pattern ", quote(lit))
				break
			}
			var elems []byte
			if elems, err = parseElems(width, digits[i:i+step]); err == nil {
				p.codes = append(p.codes, int(elems[0]))
			}
			i += step
		}
	}
	return
}

/*
isLiteral returns a Boolean value indicative of the pattern containing
no wildcard.
*/
func (r strPattern) isLiteral() bool {
	for i := range r.codes {
		if r.kind(i) != PatternLiteral {
			return false
		}
	}
	return true
}

/*
encodeText writes the element count followed by the codes: one raw byte
per code for bit and hex patterns, one integer per code for octet
patterns.
*/
func (r strPattern) encodeText(buf *TextBuf) {
	buf.PushInt(int64(len(r.codes)))
	if r.width == 8 {
		for _, code := range r.codes {
			buf.PushInt(int64(code))
		}
		return
	}
	raw := make([]byte, len(r.codes))
	for i, code := range r.codes {
		raw[i] = byte(code)
	}
	buf.PushRaw(raw)
}

func decodePattern(width uint, buf *TextBuf) (p strPattern, err error) {
	var n int
	if n, err = buf.pullLength("pattern length"); err != nil {
		return
	}

	p.width = width
	p.codes = make([]int, n)
	if width == 8 {
		for i := 0; i < n && err == nil; i++ {
			var v int64
			if v, err = buf.PullInt64(); err == nil {
				p.codes[i] = int(v)
			}
		}
	} else {
		var raw []byte
		if raw, err = buf.PullRaw(n); err == nil {
			for i, b := range raw {
				p.codes[i] = int(b)
			}
		}
	}

	for i := 0; i < n && err == nil; i++ {
		if c := p.codes[i]; c < 0 || c > p.anyOrNone() {
			err = patternErrorf("text decoder: invalid element (", c, ") in ",
				string(literalSuffix(width)), " string pattern")
		}
	}
	return
}
