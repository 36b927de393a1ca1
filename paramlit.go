package ttcnplus

/*
paramlit.go contains the parser of module parameters written in TTCN-3
notation, e.g. "complement ('00'B, '1*'B) length (2 .. infinity) ifpresent".
*/

/*
ParseParam returns an instance of *[ParsedParam] alongside an error
following an attempt to parse s. Recognized forms are omit, "?", "*",
true and false, the verdict names, bitstring, hexstring and octetstring
literals and patterns, "a & b" concatenations, parenthesized value lists
optionally preceded by "complement", each optionally followed by a length
restriction and by "ifpresent". The result is the inverse of
[ParsedParam.String].
*/
func ParseParam(s string) (*ParsedParam, error) {
	return parseParam("", s)
}

func parseParam(name, s string) (p *ParsedParam, err error) {
	defer func() {
		if err != nil {
			p = nil
		}
	}()

	p = &ParsedParam{Name: name}
	s = trimS(s)

	if rest, ok := cutSfx(s, "ifpresent"); ok && len(rest) > 0 && isParamSpace(rest[len(rest)-1]) {
		p.IfPresent = true
		s = trimS(rest)
	}

	if i := lastIdx(s, "length"); i > 0 && hasSfx(s, ")") && depthAt(s, i) == 0 {
		var l LengthRestriction
		if l, err = parseLengthSpec(s[i+len("length"):]); err != nil {
			err = p.errorf(err)
			return
		}
		p.Length = &l
		s = trimS(s[:i])
	}

	err = p.parseBody(s)
	return
}

func (r *ParsedParam) parseBody(s string) (err error) {
	if s == "" {
		return r.errorf("empty parameter value")
	}

	if parts := splitTop(s, '&'); len(parts) > 1 {
		r.Kind = ParamConcat
		last := len(parts) - 1
		var lhs, rhs *ParsedParam
		if lhs, err = parseParam(r.Name, join(parts[:last], "&")); err == nil {
			rhs, err = parseParam(r.Name, parts[last])
		}
		r.Operands = [2]*ParsedParam{lhs, rhs}
		return
	}

	switch s {
	case `omit`:
		r.Kind = ParamOmit
		return
	case `?`:
		r.Kind = ParamAny
		return
	case `*`:
		r.Kind = ParamAnyOrNone
		return
	case `true`, `false`:
		r.Kind, r.Literal = ParamBoolean, s
		return
	}
	if _, verr := ParseVerdict(s); verr == nil {
		r.Kind, r.Literal = ParamVerdict, s
		return
	}

	if rest, ok := cutPfx(s, "complement"); ok && hasPfx(trimS(rest), "(") {
		r.Kind = ParamComplementList
		return r.parseList(trimS(rest))
	} else if hasPfx(s, "(") {
		r.Kind = ParamList
		return r.parseList(s)
	}

	return r.parseLiteral(s)
}

func (r *ParsedParam) parseList(s string) (err error) {
	if !hasSfx(s, ")") || depthAt(s, len(s)-1) != 1 {
		return r.errorf("unbalanced parentheses in ", quote(s))
	}
	inner := trimS(s[1 : len(s)-1])
	if inner == "" {
		return
	}

	parts := splitTop(inner, ',')
	r.Elems = make([]*ParsedParam, 0, len(parts))
	for i := 0; i < len(parts) && err == nil; i++ {
		var e *ParsedParam
		if e, err = parseParam(r.Name, parts[i]); err == nil {
			r.Elems = append(r.Elems, e)
		}
	}
	return
}

func (r *ParsedParam) parseLiteral(s string) error {
	digits, suffix, err := splitLiteral(s)
	if err != nil {
		return r.errorf(err)
	}

	pattern := cntns(digits, "?") || cntns(digits, "*")
	switch suffix {
	case 'B':
		r.Kind = ParamBitstring
		if pattern {
			r.Kind = ParamBitstringTemplate
		}
	case 'H':
		r.Kind = ParamHexstring
		if pattern {
			r.Kind = ParamHexstringTemplate
		}
	case 'O':
		r.Kind = ParamOctetstring
		if pattern {
			r.Kind = ParamOctetstringTemplate
		}
	default:
		return r.errorf("unrecognized string literal suffix '", string(suffix), "' in ", quote(s))
	}
	r.Literal = s
	return nil
}

/*
parseLengthSpec reads "(n)", "(a .. b)" or "(a .. infinity)".
*/
func parseLengthSpec(s string) (l LengthRestriction, err error) {
	s = trimS(s)
	if len(s) < 3 || s[0] != '(' || s[len(s)-1] != ')' {
		err = literalErrorf("malformed length restriction ", quote(s))
		return
	}

	bounds := splitN(s[1:len(s)-1], "..", 2)
	var lo, hi int
	if lo, err = atoi(trimS(bounds[0])); err != nil {
		err = literalErrorf("malformed lower length bound in ", quote(s))
		return
	} else if len(bounds) == 1 {
		if lo < 0 {
			err = negativeErrorf("the length is negative (", lo, ") in a template with length restriction")
			return
		}
		l = ExactLength(lo)
		return
	}

	upper := trimS(bounds[1])
	if upper == `infinity` {
		return NewLengthRange(lo, 0, false)
	} else if hi, err = atoi(upper); err != nil {
		err = literalErrorf("malformed upper length bound in ", quote(s))
		return
	}
	return NewLengthRange(lo, hi, true)
}

func isParamSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == ')' }

/*
depthAt returns the parenthesis nesting depth at byte offset i of s,
ignoring characters quoted with apostrophes.
*/
func depthAt(s string, i int) (depth int) {
	var quoted bool
	for j := 0; j < i && j < len(s); j++ {
		switch c := s[j]; {
		case c == '\'':
			quoted = !quoted
		case quoted:
		case c == '(':
			depth++
		case c == ')':
			depth--
		}
	}
	return
}

/*
splitTop splits s at every sep found outside quotes and parentheses.
*/
func splitTop(s string, sep byte) (parts []string) {
	var quoted bool
	var depth, start int
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\'':
			quoted = !quoted
		case quoted:
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
