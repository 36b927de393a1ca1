package ttcnplus

/*
optional.go contains the Optional wrapper used for optional record
fields.
*/

type optState uint8

const (
	optUnbound optState = iota
	optOmit
	optPresent
)

/*
Optional implements an optional field of value type V: present with a
value, explicitly omitted, or unbound. The zero value is unbound.
*/
type Optional[V Value[V]] struct {
	v     V
	state optState
}

/*
Present returns an [Optional] holding its own handle on v.
*/
func Present[V Value[V]](v V) Optional[V] {
	mustBound(v.IsBound(), "assigning an unbound value to an optional field")
	return Optional[V]{v: v.Clone(), state: optPresent}
}

/*
Omitted returns an omitted [Optional].
*/
func Omitted[V Value[V]]() Optional[V] { return Optional[V]{state: optOmit} }

/*
IsBound returns a Boolean value indicative of the receiver being present
or omitted.
*/
func (r Optional[V]) IsBound() bool { return r.state != optUnbound }

/*
IsPresent returns a Boolean value indicative of the receiver holding a value.
*/
func (r Optional[V]) IsPresent() bool { return r.state == optPresent }

/*
IsOmit returns a Boolean value indicative of the receiver being omitted.
*/
func (r Optional[V]) IsOmit() bool { return r.state == optOmit }

/*
Value returns a new handle on the value of a present receiver.
*/
func (r Optional[V]) Value() V {
	if r.state != optPresent {
		usagef("accessing an optional field", "the field is ", r.String())
	}
	return r.v.Clone()
}

/*
Release drops the held value, if any, and leaves the receiver unbound.
*/
func (r *Optional[V]) Release() {
	if r.state == optPresent {
		familyOf[V]().release(&r.v)
	}
	*r = Optional[V]{}
}

func (r Optional[V]) String() string {
	switch r.state {
	case optPresent:
		return r.v.String()
	case optOmit:
		return `omit`
	}
	return `<unbound>`
}
