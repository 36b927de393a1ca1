package ttcnplus

/*
tmpl.go contains the generic TTCN-3 template and its matching logic.
*/

//go:generate go tool stringer -type=Selection

/*
Selection identifies the active case of a [Template]. The numeric values
are those carried on the wire.
*/
type Selection int8

const (
	Uninitialized Selection = iota - 1
	SpecificValue
	OmitValue
	AnyValue
	AnyOrOmit
	ValueList
	ComplementedList
	ValueRange
	StringPattern
	SupersetMatch
	SubsetMatch
	DecodeMatch
)

/*
Value is satisfied by the value types of this package that may be
wrapped in a [Template]: [Bitstring], [Hexstring], [Octetstring],
[Boolean] and [Verdict].
*/
type Value[V any] interface {
	IsBound() bool
	Equal(V) bool
	Clone() V
	String() string
	EncodeText(*TextBuf)
	valueFamily() *family[V]
}

/*
Template implements a TTCN-3 template over the value type V. The zero
value is an uninitialized template.

Templates are replaced as a whole; none of the constructors below mutate
an existing template. A template owns the values and nested templates it
was built from.
*/
type Template[V Value[V]] struct {
	m         matcher // nil when uninitialized
	ifPresent bool
	length    LengthRestriction
}

/*
Common aliases.
*/
type (
	BitstringTemplate   = Template[Bitstring]
	HexstringTemplate   = Template[Hexstring]
	OctetstringTemplate = Template[Octetstring]
	BooleanTemplate     = Template[Boolean]
	VerdictTemplate     = Template[Verdict]
)

type matcher interface {
	selection() Selection
}

type (
	omitMatch      struct{}
	anyMatch       struct{}
	anyOrOmitMatch struct{}

	specificMatch[V Value[V]] struct {
		v V
	}

	listMatch[V Value[V]] struct {
		items      []Template[V]
		complement bool
	}

	patternMatch struct {
		p strPattern
	}

	decodeMatch struct {
		s *decmatchShare
	}
)

func (omitMatch) selection() Selection        { return OmitValue }
func (anyMatch) selection() Selection         { return AnyValue }
func (anyOrOmitMatch) selection() Selection   { return AnyOrOmit }
func (specificMatch[V]) selection() Selection { return SpecificValue }
func (patternMatch) selection() Selection     { return StringPattern }
func (decodeMatch) selection() Selection      { return DecodeMatch }

func (r listMatch[V]) selection() Selection {
	if r.complement {
		return ComplementedList
	}
	return ValueList
}

func familyOf[V Value[V]]() *family[V] {
	var zero V
	return zero.valueFamily()
}

/*
NewSpecific returns a template matching values equal to v. The template
holds its own handle on v.
*/
func NewSpecific[V Value[V]](v V) Template[V] {
	mustBound(v.IsBound(), "creating a "+familyOf[V]().name+" template from an unbound value")
	return Template[V]{m: specificMatch[V]{v.Clone()}}
}

/*
NewOmit returns the omit template.
*/
func NewOmit[V Value[V]]() Template[V] { return Template[V]{m: omitMatch{}} }

/*
NewAny returns the "?" template.
*/
func NewAny[V Value[V]]() Template[V] { return Template[V]{m: anyMatch{}} }

/*
NewAnyOrOmit returns the "*" template.
*/
func NewAnyOrOmit[V Value[V]]() Template[V] { return Template[V]{m: anyOrOmitMatch{}} }

/*
NewValueList returns a template matching any value matched by at least
one of items. The template takes ownership of items.
*/
func NewValueList[V Value[V]](items ...Template[V]) Template[V] {
	return Template[V]{m: listMatch[V]{items: items}}
}

/*
NewComplement returns a template matching any value matched by none of
items. The template takes ownership of items.
*/
func NewComplement[V Value[V]](items ...Template[V]) Template[V] {
	return Template[V]{m: listMatch[V]{items: items, complement: true}}
}

/*
NewPattern returns an instance of [Template] alongside an error following
an attempt to parse the string pattern lit, e.g. '1?*0'B, 'A*'H or
'0A?*'O. Patterns are only available for string types.
*/
func NewPattern[V Value[V]](lit string) (t Template[V], err error) {
	f := familyOf[V]()
	if f.width == 0 {
		usagef("NewPattern", "string patterns are not supported by ", f.name, " templates")
	}
	var p strPattern
	if p, err = parsePattern(f.width, lit); err == nil {
		t.m = patternMatch{p}
	}
	return
}

/*
NewDecodeMatch returns a template matching values whose octets are
accepted by d. Decoded content matching is only available for string
types.
*/
func NewDecodeMatch[V Value[V]](d DecodeMatcher) Template[V] {
	if f := familyOf[V](); f.octets == nil {
		usagef("NewDecodeMatch", "decoded content matching is not supported by ", f.name, " templates")
	} else if d == nil {
		usagef("NewDecodeMatch", "nil decoder")
	}
	return Template[V]{m: decodeMatch{&decmatchShare{refs: 1, d: d}}}
}

/*
Selection returns the active case of the receiver.
*/
func (r Template[V]) Selection() Selection {
	if r.m == nil {
		return Uninitialized
	}
	return r.m.selection()
}

/*
IsBound returns a Boolean value indicative of the receiver having been
initialized.
*/
func (r Template[V]) IsBound() bool { return r.m != nil }

/*
IsValue returns a Boolean value indicative of the receiver being a
specific value without the ifpresent attribute.
*/
func (r Template[V]) IsValue() bool {
	_, ok := r.m.(specificMatch[V])
	return ok && !r.ifPresent
}

/*
IfPresent returns the receiver's ifpresent attribute.
*/
func (r Template[V]) IfPresent() bool { return r.ifPresent }

/*
SetIfPresent sets the ifpresent attribute.
*/
func (r *Template[V]) SetIfPresent() { r.ifPresent = true }

/*
Length returns the receiver's length restriction.
*/
func (r Template[V]) Length() LengthRestriction { return r.length }

/*
SetLength replaces the length restriction. Length restrictions are only
available for string types.
*/
func (r *Template[V]) SetLength(l LengthRestriction) {
	if f := familyOf[V](); f.width == 0 && l.IsSet() {
		usagef("setting a length restriction", f.name, " templates cannot have a length restriction")
	}
	r.length = l
}

/*
Match returns a Boolean value indicative of v being accepted by the
receiver. An unbound v never matches. Matching against an uninitialized
template is a usage error.
*/
func (r Template[V]) Match(v V) bool {
	if !v.IsBound() {
		return false
	}

	f := familyOf[V]()
	if r.length.IsSet() && !r.length.Match(f.length(v)) {
		return false
	}

	switch m := r.m.(type) {
	case specificMatch[V]:
		return m.v.Equal(v)
	case omitMatch:
		return false
	case anyMatch, anyOrOmitMatch:
		return true
	case listMatch[V]:
		for i := range m.items {
			if m.items[i].Match(v) {
				return !m.complement
			}
		}
		return m.complement
	case patternMatch:
		return m.p.match(f.cell(v))
	case decodeMatch:
		return m.s.match(f.octets(v))
	}

	panic(&UsageError{Op: "matching a " + f.name + " template",
		Msg: "the template is uninitialized", State: "unbound"})
}

/*
MatchOmit returns a Boolean value indicative of the receiver accepting an
absent value. In legacy mode, value and complemented lists consult their
elements for omit.
*/
func (r Template[V]) MatchOmit(legacy bool) bool {
	if r.ifPresent {
		return true
	}

	switch m := r.m.(type) {
	case omitMatch, anyOrOmitMatch:
		return true
	case listMatch[V]:
		if legacy {
			for i := range m.items {
				if m.items[i].MatchOmit(false) {
					return !m.complement
				}
			}
			return m.complement
		}
	}
	return false
}

/*
MatchOptional matches an optional field: a present value is matched with
[Template.Match], an omitted one with [Template.MatchOmit]. An unbound
field never matches.
*/
func (r Template[V]) MatchOptional(o Optional[V], legacy bool) bool {
	switch {
	case o.IsPresent():
		return r.Match(o.v)
	case o.IsOmit():
		return r.MatchOmit(legacy)
	}
	return false
}

/*
IsPresent returns a Boolean value indicative of the receiver being
initialized and rejecting an absent value.
*/
func (r Template[V]) IsPresent(legacy bool) bool {
	return r.m != nil && !r.MatchOmit(legacy)
}

/*
IsOmit returns a Boolean value indicative of the receiver being a plain
omit template.
*/
func (r Template[V]) IsOmit() bool {
	_, ok := r.m.(omitMatch)
	return ok && !r.ifPresent && !r.length.IsSet()
}

/*
IsAnyOrOmit returns a Boolean value indicative of the receiver being a
plain "*" template.
*/
func (r Template[V]) IsAnyOrOmit() bool {
	_, ok := r.m.(anyOrOmitMatch)
	return ok && !r.ifPresent && !r.length.IsSet()
}

/*
Valueof returns a new handle on the value of a specific value template.
*/
func (r Template[V]) Valueof() V {
	m, ok := r.m.(specificMatch[V])
	if !ok || r.ifPresent {
		usagef("valueof()", "performing a valueof or send operation on a non-specific ",
			familyOf[V]().name, " template")
	}
	return m.v.Clone()
}

/*
Lengthof returns the length of every value the receiver can match, which
must be unique.
*/
func (r Template[V]) Lengthof() int {
	f := familyOf[V]()
	what := "a " + f.name + " template"
	if f.width == 0 {
		usagef("lengthof()", f.name, " templates have no length")
	} else if r.ifPresent {
		usagef("lengthof()", "performing lengthof() operation on ", what, " which has an ifpresent attribute")
	}

	var minSize int
	var star bool
	switch m := r.m.(type) {
	case specificMatch[V]:
		minSize = f.length(m.v)
	case omitMatch:
		usagef("lengthof()", "performing lengthof() operation on ", what, " containing omit value")
	case anyMatch, anyOrOmitMatch:
		star = true
	case listMatch[V]:
		if m.complement {
			usagef("lengthof()", "performing lengthof() operation on ", what, " containing complemented list")
		} else if len(m.items) == 0 {
			internalf("lengthof()", "performing lengthof() operation on ", what, " containing an empty list")
		}
		minSize = m.items[0].Lengthof()
		for i := 1; i < len(m.items); i++ {
			if m.items[i].Lengthof() != minSize {
				usagef("lengthof()", "performing lengthof() operation on ", what,
					" containing a value list with different lengths")
			}
		}
	case patternMatch:
		minSize, star = m.p.minLength()
	default:
		usagef("lengthof()", "performing lengthof() operation on an uninitialized/unsupported ", f.name, " template")
	}

	return r.length.single(minSize, star, what)
}

/*
ListItem returns element i of a value list or complemented list template.
*/
func (r Template[V]) ListItem(i int) Template[V] {
	m, ok := r.m.(listMatch[V])
	if !ok {
		usagef("list item", "accessing a list element of a non-list ", familyOf[V]().name, " template")
	} else if i < 0 || i >= len(m.items) {
		usagef("list item", "index overflow in a ", familyOf[V]().name, " value list template")
	}
	return m.items[i]
}

/*
ListLen returns the number of elements of a list template, or zero.
*/
func (r Template[V]) ListLen() int {
	if m, ok := r.m.(listMatch[V]); ok {
		return len(m.items)
	}
	return 0
}

/*
CheckRestriction returns a [UsageError] if the receiver violates res.
name, if non-empty, names the checked template in the error and marks it
as an optional field, in which case a value restriction also permits
omit. Uninitialized templates pass.
*/
func (r Template[V]) CheckRestriction(res Restriction, name string, legacy bool) error {
	if r.m == nil {
		return nil
	}

	check := res
	if name != "" && res == RestrictionValue {
		check = RestrictionOmit
	}

	sel := r.m.selection()
	switch check {
	case RestrictionValue:
		if !r.ifPresent && sel == SpecificValue {
			return nil
		}
	case RestrictionOmit:
		if !r.ifPresent && (sel == OmitValue || sel == SpecificValue) {
			return nil
		}
	case RestrictionPresent:
		if !r.MatchOmit(legacy) {
			return nil
		}
	default:
		return nil
	}

	if name == "" {
		name = familyOf[V]().name
	}
	return &UsageError{Op: "template restriction check",
		Msg: "restriction `" + res.String() + "' on template of type " + name + " violated", State: "bound"}
}

/*
String returns the TTCN-3 log form of the receiver.
*/
func (r Template[V]) String() string {
	bld := newStrBuilder()
	switch m := r.m.(type) {
	case nil:
		bld.WriteString(`<uninitialized template>`)
	case omitMatch:
		bld.WriteString(`omit`)
	case anyMatch:
		bld.WriteByte('?')
	case anyOrOmitMatch:
		bld.WriteByte('*')
	case specificMatch[V]:
		bld.WriteString(m.v.String())
	case listMatch[V]:
		if m.complement {
			bld.WriteString(`complement `)
		}
		bld.WriteByte('(')
		for i := range m.items {
			if i > 0 {
				bld.WriteString(`, `)
			}
			bld.WriteString(m.items[i].String())
		}
		bld.WriteByte(')')
	case patternMatch:
		bld.WriteString(m.p.String())
	case decodeMatch:
		bld.WriteString(`decmatch `)
		bld.WriteString(m.s.d.String())
	}
	bld.WriteString(r.length.String())
	if r.ifPresent {
		bld.WriteString(` ifpresent`)
	}
	return bld.String()
}

/*
Clone returns a copy of the receiver holding its own handles on the
values it contains. Decoded content matchers are shared.
*/
func (r Template[V]) Clone() Template[V] {
	switch m := r.m.(type) {
	case specificMatch[V]:
		r.m = specificMatch[V]{m.v.Clone()}
	case listMatch[V]:
		items := make([]Template[V], len(m.items))
		for i := range m.items {
			items[i] = m.items[i].Clone()
		}
		r.m = listMatch[V]{items: items, complement: m.complement}
	case decodeMatch:
		m.s.incRef()
	}
	return r
}

/*
Release drops every handle held by the receiver and leaves it
uninitialized.
*/
func (r *Template[V]) Release() {
	switch m := r.m.(type) {
	case specificMatch[V]:
		familyOf[V]().release(&m.v)
	case listMatch[V]:
		for i := range m.items {
			m.items[i].Release()
		}
	case decodeMatch:
		m.s.decRef()
	}
	*r = Template[V]{}
}

/*
EncodeText appends the receiver to buf: the selection and ifpresent
attribute, the length restriction for string types, then the
selection-specific payload.
*/
func (r Template[V]) EncodeText(buf *TextBuf) {
	f := familyOf[V]()
	if r.m == nil {
		usagef("text encoder", "encoding an uninitialized/unsupported ", f.name, " template")
	} else if _, ok := r.m.(decodeMatch); ok {
		usagef("text encoder", "encoding a decoded content matching ", f.name, " template")
	}

	buf.PushInt(int64(r.m.selection()))
	var ifp int64
	if r.ifPresent {
		ifp = 1
	}
	buf.PushInt(ifp)
	if f.width > 0 {
		r.length.encodeText(buf)
	}

	switch m := r.m.(type) {
	case specificMatch[V]:
		m.v.EncodeText(buf)
	case listMatch[V]:
		buf.PushInt(int64(len(m.items)))
		for i := range m.items {
			m.items[i].EncodeText(buf)
		}
	case patternMatch:
		m.p.encodeText(buf)
	}
}

/*
DecodeText replaces the receiver with a template read from buf. On error
the receiver and the read cursor are left unchanged.
*/
func (r *Template[V]) DecodeText(buf *TextBuf) (err error) {
	save := buf.pos
	var t Template[V]
	if t, err = decodeTemplate[V](buf); err != nil {
		buf.pos = save
		return
	}
	r.Release()
	*r = t
	return
}

func decodeTemplate[V Value[V]](buf *TextBuf) (t Template[V], err error) {
	f := familyOf[V]()
	var sel, ifp int64
	if sel, err = buf.PullInt64(); err == nil {
		ifp, err = buf.PullInt64()
	}
	if err == nil && f.width > 0 {
		t.length, err = decodeLength(buf)
	}
	if err != nil {
		return
	}
	t.ifPresent = ifp != 0

	switch {
	case sel == int64(OmitValue):
		t.m = omitMatch{}
	case sel == int64(AnyValue):
		t.m = anyMatch{}
	case sel == int64(AnyOrOmit):
		t.m = anyOrOmitMatch{}
	case sel == int64(SpecificValue):
		var v V
		if v, err = f.decodeText(buf); err == nil {
			t.m = specificMatch[V]{v}
		}
	case sel == int64(ValueList), sel == int64(ComplementedList):
		var n int
		if n, err = buf.pullLength("template list length"); err != nil {
			return
		}
		items := make([]Template[V], 0, min(n, buf.Remaining()))
		for i := 0; i < n && err == nil; i++ {
			var item Template[V]
			if item, err = decodeTemplate[V](buf); err == nil {
				items = append(items, item)
			}
		}
		if err != nil {
			for i := range items {
				items[i].Release()
			}
			return
		}
		t.m = listMatch[V]{items: items, complement: sel == int64(ComplementedList)}
	case sel == int64(StringPattern) && f.width > 0:
		var p strPattern
		if p, err = decodePattern(f.width, buf); err == nil {
			t.m = patternMatch{p}
		}
	default:
		err = selectionErrorf("text decoder: an unknown/unsupported selection (", sel,
			") was received for a ", f.name, " template")
	}
	return
}
