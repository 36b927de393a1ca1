package ttcnplus

/*
bool.go contains all types and methods pertaining to the TTCN-3
boolean type.
*/

/*
Boolean implements the TTCN-3 boolean type. The zero value is unbound.
*/
type Boolean struct {
	v     bool
	bound bool
}

/*
NewBoolean returns a bound instance of [Boolean].
*/
func NewBoolean(v bool) Boolean { return Boolean{v: v, bound: true} }

/*
ParseBoolean returns an instance of [Boolean] alongside an error following
an attempt to parse s, which must be "true" or "false".
*/
func ParseBoolean(s string) (b Boolean, err error) {
	switch trimS(s) {
	case `true`:
		b = NewBoolean(true)
	case `false`:
		b = NewBoolean(false)
	default:
		err = literalErrorf("invalid boolean literal ", quote(s))
	}
	return
}

func (r Boolean) valueFamily() *family[Boolean] { return booleanFamily }

/*
IsBound returns a Boolean value indicative of the receiver holding a value.
*/
func (r Boolean) IsBound() bool { return r.bound }

/*
Bool returns the receiver as a Go bool.
*/
func (r Boolean) Bool() bool {
	mustBound(r.bound, "using the value of a boolean")
	return r.v
}

/*
Clone returns the receiver; booleans have no shared storage.
*/
func (r Boolean) Clone() Boolean { return r }

/*
Equal returns a Boolean value indicative of r and o holding the same value.
*/
func (r Boolean) Equal(o Boolean) bool {
	mustBound(r.bound, "comparison of booleans (left operand)")
	mustBound(o.bound, "comparison of booleans (right operand)")
	return r.v == o.v
}

/*
Not returns the logical negation of the receiver.
*/
func (r Boolean) Not() Boolean { return NewBoolean(!r.Bool()) }

/*
And returns the logical conjunction of r and o.
*/
func (r Boolean) And(o Boolean) Boolean { return NewBoolean(r.Bool() && o.Bool()) }

/*
Or returns the logical disjunction of r and o.
*/
func (r Boolean) Or(o Boolean) Boolean { return NewBoolean(r.Bool() || o.Bool()) }

/*
Xor returns the exclusive disjunction of r and o.
*/
func (r Boolean) Xor(o Boolean) Boolean { return NewBoolean(r.Bool() != o.Bool()) }

func (r Boolean) String() string {
	if !r.bound {
		return `<unbound>`
	}
	return bool2str(r.v)
}

/*
EncodeText appends the receiver to buf as the integer 0 or 1.
*/
func (r Boolean) EncodeText(buf *TextBuf) {
	mustBound(r.bound, "text encoder: encoding an unbound boolean value")
	var i int64
	if r.v {
		i = 1
	}
	buf.PushInt(i)
}

/*
DecodeText replaces the receiver with a boolean read from buf.
*/
func (r *Boolean) DecodeText(buf *TextBuf) error {
	save := buf.pos
	v, err := buf.PullInt64()
	if err == nil {
		switch v {
		case 0, 1:
			*r = NewBoolean(v == 1)
		default:
			buf.pos = save
			err = literalErrorf("text decoder: invalid boolean value (", v, ")")
		}
	}
	return err
}
