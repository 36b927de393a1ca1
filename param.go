package ttcnplus

/*
param.go contains the module parameter binding of values and templates.
*/

import "go.uber.org/zap"

//go:generate go tool stringer -type=ParamKind -linecomment

/*
ParamKind identifies the shape of a [ParsedParam].
*/
type ParamKind uint8

const (
	ParamUnbound             ParamKind = iota // unbound
	ParamOmit                                 // omit
	ParamAny                                  // ? (any)
	ParamAnyOrNone                            // * (any or none)
	ParamList                                 // list template
	ParamComplementList                       // complemented list template
	ParamBitstring                            // bitstring
	ParamBitstringTemplate                    // bitstring template
	ParamHexstring                            // hexstring
	ParamHexstringTemplate                    // hexstring template
	ParamOctetstring                          // octetstring
	ParamOctetstringTemplate                  // octetstring template
	ParamBoolean                              // boolean
	ParamVerdict                              // verdict
	ParamConcat                               // concatenation
)

/*
ParsedParam is a module parameter value as produced by a configuration
front end such as [ParseModuleParams]. Literal holds the TTCN-3 notation
of native literals and patterns ('0101'B, '1*0'B, true, pass).
*/
type ParsedParam struct {
	Kind      ParamKind
	Name      string // dotted parameter name, used in messages
	Literal   string
	Elems     []*ParsedParam  // list and complemented list
	Operands  [2]*ParsedParam // concatenation
	IfPresent bool
	Length    *LengthRestriction
}

func (r *ParsedParam) describe() string {
	if r == nil {
		return ParamUnbound.String()
	}
	return r.Kind.String()
}

func (r *ParsedParam) errorf(m ...any) error {
	prefix := "module parameter"
	if r != nil && r.Name != "" {
		prefix += " " + quote(r.Name)
	}
	return paramErr{mkerrf(append([]any{prefix, ": "}, m...)...), ErrParamType}
}

/*
String returns the parameter in TTCN-3 notation.
*/
func (r *ParsedParam) String() string {
	if r == nil {
		return `<unbound>`
	}

	bld := newStrBuilder()
	switch r.Kind {
	case ParamUnbound:
		bld.WriteString(`<unbound>`)
	case ParamOmit:
		bld.WriteString(`omit`)
	case ParamAny:
		bld.WriteByte('?')
	case ParamAnyOrNone:
		bld.WriteByte('*')
	case ParamList, ParamComplementList:
		if r.Kind == ParamComplementList {
			bld.WriteString(`complement `)
		}
		bld.WriteByte('(')
		for i, e := range r.Elems {
			if i > 0 {
				bld.WriteString(`, `)
			}
			bld.WriteString(e.String())
		}
		bld.WriteByte(')')
	case ParamConcat:
		bld.WriteString(r.Operands[0].String() + ` & ` + r.Operands[1].String())
	default:
		bld.WriteString(r.Literal)
	}
	if r.Length != nil {
		bld.WriteString(r.Length.String())
	}
	if r.IfPresent {
		bld.WriteString(` ifpresent`)
	}
	return bld.String()
}

/*
valueFromParam binds a value of type V: the native literal of V, or a
concatenation of such values.
*/
func valueFromParam[V Value[V]](p *ParsedParam) (v V, err error) {
	f := familyOf[V]()
	if p == nil {
		err = paramTypeError(f.name+" value", p)
		return
	} else if p.IfPresent || p.Length != nil {
		err = p.errorf("a ", f.name, " value cannot carry ifpresent or a length restriction")
		return
	}

	switch {
	case p.Kind == f.valueKind:
		if v, err = f.parse(p.Literal); err != nil {
			err = p.errorf(err)
		}
	case p.Kind == ParamConcat && f.concat != nil:
		var a, b V
		if a, err = valueFromParam[V](p.Operands[0]); err != nil {
			return
		}
		defer f.release(&a)
		if b, err = valueFromParam[V](p.Operands[1]); err != nil {
			return
		}
		defer f.release(&b)
		v = f.concat(a, b)
	default:
		err = paramTypeError(f.name+" value", p)
	}
	return
}

/*
valueParam returns the [ParsedParam] describing v.
*/
func valueParam[V Value[V]](v V) *ParsedParam {
	if !v.IsBound() {
		return &ParsedParam{Kind: ParamUnbound}
	}
	return &ParsedParam{Kind: familyOf[V]().valueKind, Literal: v.String()}
}

/*
SetParam replaces the receiver with the value described by p. The
receiver is left untouched on error.
*/
func (r *Bitstring) SetParam(p *ParsedParam) error { return setValue(r, p) }

// SetParam replaces the receiver with the value described by p.
func (r *Hexstring) SetParam(p *ParsedParam) error { return setValue(r, p) }

// SetParam replaces the receiver with the value described by p.
func (r *Octetstring) SetParam(p *ParsedParam) error { return setValue(r, p) }

// SetParam replaces the receiver with the value described by p.
func (r *Boolean) SetParam(p *ParsedParam) error { return setValue(r, p) }

// SetParam replaces the receiver with the value described by p.
func (r *Verdict) SetParam(p *ParsedParam) error { return setValue(r, p) }

/*
GetParam returns the [ParsedParam] describing the receiver.
*/
func (r Bitstring) GetParam() *ParsedParam { return valueParam(r) }

// GetParam returns the [ParsedParam] describing the receiver.
func (r Hexstring) GetParam() *ParsedParam { return valueParam(r) }

// GetParam returns the [ParsedParam] describing the receiver.
func (r Octetstring) GetParam() *ParsedParam { return valueParam(r) }

// GetParam returns the [ParsedParam] describing the receiver.
func (r Boolean) GetParam() *ParsedParam { return valueParam(r) }

// GetParam returns the [ParsedParam] describing the receiver.
func (r Verdict) GetParam() *ParsedParam { return valueParam(r) }

func setValue[V Value[V]](r *V, p *ParsedParam) error {
	v, err := valueFromParam[V](p)
	if err == nil {
		familyOf[V]().release(r)
		*r = v
	}
	return err
}

/*
SetParam replaces the receiver with the template described by p. The
accepted shapes are omit, "?", "*", list and complemented list templates,
the native literal of V, string patterns of V and concatenations of V
values. The ifpresent attribute and any length restriction of p are
applied. The receiver is left untouched on error.
*/
func (r *Template[V]) SetParam(p *ParsedParam) error {
	t, err := templateFromParam[V](p)
	if err == nil {
		r.Release()
		*r = t
		Logger().Debug("module parameter applied",
			zap.String("name", p.Name),
			zap.String("type", familyOf[V]().name),
			zap.Stringer("template", t))
	}
	return err
}

func templateFromParam[V Value[V]](p *ParsedParam) (t Template[V], err error) {
	f := familyOf[V]()
	if p == nil {
		err = paramTypeError(f.name+" template", p)
		return
	}

	switch {
	case p.Kind == ParamOmit:
		t.m = omitMatch{}
	case p.Kind == ParamAny:
		t.m = anyMatch{}
	case p.Kind == ParamAnyOrNone:
		t.m = anyOrOmitMatch{}
	case p.Kind == ParamList, p.Kind == ParamComplementList:
		items := make([]Template[V], 0, len(p.Elems))
		for i := 0; i < len(p.Elems) && err == nil; i++ {
			var item Template[V]
			if item, err = templateFromParam[V](p.Elems[i]); err == nil {
				items = append(items, item)
			}
		}
		if err != nil {
			for i := range items {
				items[i].Release()
			}
			return
		}
		t.m = listMatch[V]{items: items, complement: p.Kind == ParamComplementList}
	case p.Kind == f.valueKind, p.Kind == ParamConcat && f.concat != nil:
		bare := *p
		bare.IfPresent, bare.Length = false, nil
		var v V
		if v, err = valueFromParam[V](&bare); err != nil {
			return
		}
		t.m = specificMatch[V]{v}
	case p.Kind == f.patternKind && f.width > 0:
		var pat strPattern
		if pat, err = parsePattern(f.width, p.Literal); err != nil {
			err = p.errorf(err)
			return
		}
		t.m = patternMatch{pat}
	default:
		err = paramTypeError(f.name+" template", p)
		return
	}

	t.ifPresent = p.IfPresent
	if p.Length != nil {
		if f.width == 0 {
			t.Release()
			err = p.errorf("a ", f.name, " template cannot have a length restriction")
			return
		}
		t.length = *p.Length
	}
	return
}

/*
GetParam returns the [ParsedParam] describing the receiver. Decoded
content matching templates cannot be described.
*/
func (r Template[V]) GetParam() *ParsedParam {
	f := familyOf[V]()
	p := &ParsedParam{}
	switch m := r.m.(type) {
	case nil:
		p.Kind = ParamUnbound
	case omitMatch:
		p.Kind = ParamOmit
	case anyMatch:
		p.Kind = ParamAny
	case anyOrOmitMatch:
		p.Kind = ParamAnyOrNone
	case specificMatch[V]:
		p = valueParam(m.v)
	case listMatch[V]:
		if p.Kind = ParamList; m.complement {
			p.Kind = ParamComplementList
		}
		for i := range m.items {
			p.Elems = append(p.Elems, m.items[i].GetParam())
		}
	case patternMatch:
		p.Kind, p.Literal = f.patternKind, m.p.String()
	case decodeMatch:
		usagef("GetParam", "referencing a decoded content matching template is not supported")
	}

	p.IfPresent = r.ifPresent
	if r.length.IsSet() {
		l := r.length
		p.Length = &l
	}
	return p
}
