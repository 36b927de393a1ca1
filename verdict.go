package ttcnplus

/*
verdict.go contains all types and methods pertaining to the TTCN-3
verdicttype.
*/

//go:generate go tool stringer -type=VerdictType -linecomment

/*
VerdictType enumerates the TTCN-3 verdicts in increasing order of
precedence.
*/
type VerdictType uint8

const (
	VerdictNone   VerdictType = iota // none
	VerdictPass                      // pass
	VerdictInconc                    // inconc
	VerdictFail                      // fail
	VerdictError                     // error
)

/*
Verdict implements a value of the TTCN-3 verdicttype. The zero value is
unbound.
*/
type Verdict struct {
	v     VerdictType
	bound bool
}

/*
NewVerdict returns a bound instance of [Verdict].
*/
func NewVerdict(v VerdictType) Verdict {
	if v > VerdictError {
		usagef("NewVerdict", "invalid verdict value (", int(v), ")")
	}
	return Verdict{v: v, bound: true}
}

/*
ParseVerdict returns an instance of [Verdict] alongside an error
following an attempt to parse s (none, pass, inconc, fail or error).
*/
func ParseVerdict(s string) (v Verdict, err error) {
	s = trimS(s)
	for t := VerdictNone; t <= VerdictError; t++ {
		if s == t.String() {
			v = NewVerdict(t)
			return
		}
	}
	err = literalErrorf("invalid verdict literal ", quote(s))
	return
}

func (r Verdict) valueFamily() *family[Verdict] { return verdictFamily }

/*
IsBound returns a Boolean value indicative of the receiver holding a value.
*/
func (r Verdict) IsBound() bool { return r.bound }

/*
Type returns the verdict held by the receiver.
*/
func (r Verdict) Type() VerdictType {
	mustBound(r.bound, "using the value of a verdict")
	return r.v
}

/*
Clone returns the receiver; verdicts have no shared storage.
*/
func (r Verdict) Clone() Verdict { return r }

/*
Equal returns a Boolean value indicative of r and o holding the same
verdict.
*/
func (r Verdict) Equal(o Verdict) bool {
	mustBound(r.bound, "comparison of verdicts (left operand)")
	mustBound(o.bound, "comparison of verdicts (right operand)")
	return r.v == o.v
}

/*
Override returns the verdict resulting from a setverdict of v on the
receiver: the verdict of higher precedence wins. An unbound receiver is
treated as none.
*/
func (r Verdict) Override(v VerdictType) Verdict {
	cur := r.v
	if !r.bound {
		cur = VerdictNone
	}
	return NewVerdict(max(cur, v))
}

func (r Verdict) String() string {
	if !r.bound {
		return `<unbound>`
	}
	return r.v.String()
}

/*
EncodeText appends the receiver to buf as its numeric verdict.
*/
func (r Verdict) EncodeText(buf *TextBuf) {
	mustBound(r.bound, "text encoder: encoding an unbound verdict value")
	buf.PushInt(int64(r.v))
}

/*
DecodeText replaces the receiver with a verdict read from buf.
*/
func (r *Verdict) DecodeText(buf *TextBuf) error {
	save := buf.pos
	v, err := buf.PullInt64()
	if err == nil {
		if v < int64(VerdictNone) || v > int64(VerdictError) {
			buf.pos = save
			err = literalErrorf("text decoder: unknown verdict value (", v, ")")
		} else {
			*r = NewVerdict(VerdictType(v))
		}
	}
	return err
}
