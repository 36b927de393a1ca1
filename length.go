package ttcnplus

/*
length.go contains the template length restriction.
*/

import "golang.org/x/exp/constraints"

type lengthKind uint8

const (
	noLength lengthKind = iota
	singleLength
	rangeLength
)

/*
LengthRestriction implements the "length (...)" attribute of a string
template: none, an exact length, or a range whose upper bound may be
infinity. The zero value is no restriction.
*/
type LengthRestriction struct {
	kind   lengthKind
	min    int
	max    int
	maxSet bool
}

/*
ExactLength returns a restriction to exactly n elements.
*/
func ExactLength(n int) LengthRestriction {
	if n < 0 {
		usagef("ExactLength", "the length is negative (", n, ") in a template with length restriction")
	}
	return LengthRestriction{kind: singleLength, min: n}
}

/*
LengthRange returns a restriction to min or more elements. Use
[LengthRestriction.WithMax] to bound it from above.
*/
func LengthRange(min int) LengthRestriction {
	l, err := NewLengthRange(min, 0, false)
	if err != nil {
		usagef("LengthRange", err)
	}
	return l
}

/*
WithMax returns the receiver range bounded above by max.
*/
func (r LengthRestriction) WithMax(max int) LengthRestriction {
	if r.kind != rangeLength {
		internalf("LengthRestriction.WithMax", "setting a maximum length for a template the length restriction of which is not a range")
	}
	l, err := NewLengthRange(r.min, max, true)
	if err != nil {
		usagef("LengthRestriction.WithMax", err)
	}
	return l
}

/*
NewLengthRange returns a range restriction alongside an error if min is
negative, or if hasMax is set and max is negative or smaller than min.
*/
func NewLengthRange(min, max int, hasMax bool) (l LengthRestriction, err error) {
	switch {
	case min < 0:
		err = negativeErrorf("the lower limit for the length is negative (", min, ") in a template with length restriction")
	case hasMax && max < 0:
		err = negativeErrorf("the upper limit for the length is negative (", max, ") in a template with length restriction")
	case hasMax && max < min:
		err = literalErrorf("the upper limit for the length (", max, ") is smaller than the lower limit (",
			min, ") in a template with length restriction")
	default:
		l = LengthRestriction{kind: rangeLength, min: min, max: max, maxSet: hasMax}
	}
	return
}

/*
IsSet returns a Boolean value indicative of a restriction being present.
*/
func (r LengthRestriction) IsSet() bool { return r.kind != noLength }

/*
IsExact returns a Boolean value indicative of an exact length restriction.
*/
func (r LengthRestriction) IsExact() bool { return r.kind == singleLength }

/*
Min returns the exact length or the lower bound of the range.
*/
func (r LengthRestriction) Min() int { return r.min }

/*
Max returns the upper bound of the range alongside a Boolean value
indicative of the bound being finite. Exact restrictions return their
length.
*/
func (r LengthRestriction) Max() (int, bool) {
	if r.kind == singleLength {
		return r.min, true
	}
	return r.max, r.maxSet
}

func within[T constraints.Ordered](v, lo, hi T) bool { return lo <= v && v <= hi }

/*
Match returns a Boolean value indicative of n satisfying the restriction.
*/
func (r LengthRestriction) Match(n int) bool {
	switch r.kind {
	case singleLength:
		return n == r.min
	case rangeLength:
		if r.maxSet {
			return within(n, r.min, r.max)
		}
		return n >= r.min
	}
	return true
}

/*
String returns the log form of the receiver including its leading space,
e.g. " length (2 .. infinity)", or the empty string if no restriction is
present.
*/
func (r LengthRestriction) String() (s string) {
	switch r.kind {
	case singleLength:
		s = ` length (` + itoa(r.min) + `)`
	case rangeLength:
		s = ` length (` + itoa(r.min) + ` .. `
		if r.maxSet {
			s += itoa(r.max) + `)`
		} else {
			s += `infinity)`
		}
	}
	return
}

func (r LengthRestriction) boundsString() string {
	if r.kind == singleLength {
		return itoa(r.min)
	} else if r.maxSet {
		return itoa(r.min) + ".." + itoa(r.max)
	}
	return itoa(r.min) + "..infinity"
}

/*
single resolves the length of a template section whose own minimum
length is minSize and whose maximum is unbounded if star is set. It
raises a usage error unless exactly one length is possible.
*/
func (r LengthRestriction) single(minSize int, star bool, what string) int {
	const op = "lengthof()"
	if star {
		switch r.kind {
		case singleLength:
			if r.min >= minSize {
				return r.min
			}
			usagef(op, "the minimum length (", minSize, ") of ", what,
				" contradicts the length restriction (", r.boundsString(), ")")
		case rangeLength:
			if r.Match(minSize) {
				if r.maxSet && minSize == r.max {
					return minSize
				}
			} else if minSize > r.min {
				usagef(op, "the minimum length (", minSize, ") of ", what,
					" contradicts the length restriction (", r.boundsString(), ")")
			}
		}
		usagef(op, "performing lengthof() operation on ", what, " with no exact length")
	}

	if !r.Match(minSize) {
		usagef(op, "the length (", minSize, ") of ", what,
			" contradicts the length restriction (", r.boundsString(), ")")
	}
	return minSize
}

func (r LengthRestriction) encodeText(buf *TextBuf) {
	buf.PushInt(int64(r.kind))
	switch r.kind {
	case singleLength:
		buf.PushInt(int64(r.min))
	case rangeLength:
		buf.PushInt(int64(r.min))
		var set int64
		if r.maxSet {
			set = 1
		}
		buf.PushInt(set)
		if r.maxSet {
			buf.PushInt(int64(r.max))
		}
	}
}

func decodeLength(buf *TextBuf) (r LengthRestriction, err error) {
	var kind, v int64
	if kind, err = buf.PullInt64(); err != nil {
		return
	}

	switch kind {
	case int64(noLength):
	case int64(singleLength):
		if v, err = buf.PullInt64(); err == nil && v < 0 {
			err = negativeErrorf("text decoder: the length is negative (", v, ") in a template with length restriction")
		} else if err == nil {
			r = LengthRestriction{kind: singleLength, min: int(v)}
		}
	case int64(rangeLength):
		var min, set, max int64
		if min, err = buf.PullInt64(); err == nil {
			if set, err = buf.PullInt64(); err == nil && set != 0 {
				max, err = buf.PullInt64()
			}
		}
		if err == nil {
			r, err = NewLengthRange(int(min), int(max), set != 0)
		}
	default:
		err = selectionErrorf("text decoder: an unknown/unsupported length restriction type (",
			kind, ") was received for a template")
	}
	return
}
