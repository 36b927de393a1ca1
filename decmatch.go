package ttcnplus

/*
decmatch.go contains the decoded content matching mechanism.
*/

import "go.uber.org/zap"

/*
DecodeMatcher is qualified through any type able to decode an octet
payload and match the decoded result. Instances are shared between
copies of a decmatch [Template].
*/
type DecodeMatcher interface {
	Match(data []byte) bool
	String() string
}

type decmatchShare struct {
	refs int
	d    DecodeMatcher
}

func (r *decmatchShare) incRef() {
	if r.refs <= 0 {
		internalf("decmatch", "invalid reference counter (", r.refs, ") when copying a decoded content matcher")
	}
	r.refs++
}

func (r *decmatchShare) decRef() {
	if r.refs <= 0 {
		internalf("decmatch", "invalid reference counter (", r.refs, ") when freeing a decoded content matcher")
	}
	if r.refs--; r.refs == 0 {
		if d, ok := r.d.(interface{ release() }); ok {
			d.release()
		}
		r.d = nil
	}
}

/*
match runs the decoder with codec errors silenced, restoring the
previous error behavior afterwards.
*/
func (r *decmatchShare) match(data []byte) (ok bool) {
	prev := SetErrorBehavior(ErrorIgnore)
	defer SetErrorBehavior(prev)

	ok = r.d.Match(data)
	Logger().Debug("decoded content match",
		zap.String("matcher", r.d.String()),
		zap.Int("octets", len(data)),
		zap.Bool("matched", ok))
	return
}

/*
NewDecodeMatcher returns a [DecodeMatcher] that decodes its input as a
value of type U using coding, and matches the result against t. Input
that fails to decode, or is not consumed entirely, does not match.
*/
func NewDecodeMatcher[U Value[U]](coding Coding, t Template[U]) DecodeMatcher {
	if !t.IsBound() {
		usagef("NewDecodeMatcher", "the target template is uninitialized")
	}
	return &typedDecodeMatcher[U]{coding: coding, target: t}
}

type typedDecodeMatcher[U Value[U]] struct {
	coding Coding
	target Template[U]
	last   U
}

func (r *typedDecodeMatcher[U]) Match(data []byte) bool {
	f := familyOf[U]()
	v, n, err := Decode[U](r.coding, data)
	if err != nil {
		return false
	} else if n != len(data) {
		f.release(&v)
		return false
	}
	f.release(&r.last)
	r.last = v
	return r.target.Match(v)
}

/*
Result returns the value decoded by the most recent successful decode,
or an unbound value.
*/
func (r *typedDecodeMatcher[U]) Result() U { return r.last }

func (r *typedDecodeMatcher[U]) release() { familyOf[U]().release(&r.last) }

func (r *typedDecodeMatcher[U]) String() string {
	return r.coding.String() + ": " + r.target.String()
}
