package ttcnplus

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"sync"
)

var mkerr func(string) error = errors.New

/*
Data error sentinels. Every data error returned by this package wraps
exactly one of these, so callers may use [errors.Is] against them.
*/
var (
	ErrTruncated         error = mkerr("end of buffer reached")
	ErrNegativeLength    error = mkerr("negative length")
	ErrBadPattern        error = mkerr("invalid pattern element")
	ErrBadLiteral        error = mkerr("malformed literal")
	ErrUnknownSelection  error = mkerr("unknown or unsupported selection")
	ErrCodecNotSupported error = mkerr("encoding not supported")
	ErrParamType         error = mkerr("module parameter type mismatch")
	ErrUnknownParam      error = mkerr("unknown module parameter")
)

/*
wire errors.
*/
var (
	errorTruncatedInt    = dataErr{mkerr("text decoder: decoding of integer failed"), ErrTruncated}
	errorTruncatedFloat  = dataErr{mkerr("text decoder: decoding of float failed (end of buffer reached)"), ErrTruncated}
	errorTruncatedRaw    = dataErr{mkerr("text decoder: end of buffer reached"), ErrTruncated}
	errorIntegerTooLarge = dataErr{mkerr("text decoder: integer does not fit a native word"), ErrBadLiteral}
)

/*
types which implement the error interface.
*/
type (
	dataErr  struct{ e, kind error }
	codecErr struct{ e, kind error }
	paramErr struct{ e, kind error }
)

func (r dataErr) Error() string  { return `DATA ERROR: ` + r.e.Error() }
func (r codecErr) Error() string { return `CODEC ERROR: ` + r.e.Error() }
func (r paramErr) Error() string { return `PARAMETER ERROR: ` + r.e.Error() }

func (r dataErr) Unwrap() error  { return r.kind }
func (r codecErr) Unwrap() error { return r.kind }
func (r paramErr) Unwrap() error { return r.kind }

func truncatedErrorf(m ...any) error { return dataErr{mkerrf(m...), ErrTruncated} }
func negativeErrorf(m ...any) error  { return dataErr{mkerrf(m...), ErrNegativeLength} }
func patternErrorf(m ...any) error   { return dataErr{mkerrf(m...), ErrBadPattern} }
func literalErrorf(m ...any) error   { return dataErr{mkerrf(m...), ErrBadLiteral} }
func selectionErrorf(m ...any) error { return dataErr{mkerrf(m...), ErrUnknownSelection} }

func codecErrorf(kind error, m ...any) error { return codecErr{mkerrf(m...), kind} }

/*
paramTypeError returns the error raised when a [ParsedParam] of an
unexpected shape is bound to a value or template.
*/
func paramTypeError(expected string, got *ParsedParam) error {
	return paramErr{mkerrf("type mismatch: ", expected, " or reference was expected instead of ",
		got.describe()), ErrParamType}
}

/*
UsageError reports a programming mistake committed by the caller, such
as matching against an uninitialized template or indexing past the end
of a string. Usage errors are raised with panic and abort the current
operation; see [Catch].
*/
type UsageError struct {
	Op    string // the operation being attempted
	Msg   string
	State string // "bound", "unbound" or empty when not applicable
}

func (r *UsageError) Error() string {
	msg := `USAGE ERROR: ` + r.Op + `: ` + r.Msg
	if r.State != "" {
		msg += ` (operand is ` + r.State + `)`
	}
	return msg
}

/*
InternalError reports a broken invariant inside this package, such as a
reference counter underflow. It is never recovered by [Catch].
*/
type InternalError struct {
	Op  string
	Msg string
}

func (r *InternalError) Error() string { return `INTERNAL ERROR: ` + r.Op + `: ` + r.Msg }

func usagef(op string, m ...any) {
	panic(&UsageError{Op: op, Msg: mkerrf(m...).Error()})
}

func internalf(op string, m ...any) {
	panic(&InternalError{Op: op, Msg: mkerrf(m...).Error()})
}

/*
mustBound panics with a [UsageError] naming op if bound is false.
*/
func mustBound(bound bool, op string) {
	if !bound {
		panic(&UsageError{Op: op, Msg: "operand is not bound", State: "unbound"})
	}
}

/*
Catch executes fn and returns any [UsageError] raised during its execution
as an error. This is the boundary at which a failed test step is aborted
without bringing down the process. Internal errors and foreign panics are
propagated unchanged.
*/
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ue, ok := r.(*UsageError); ok {
				err = ue
				return
			}
			panic(r)
		}
	}()
	fn()
	return
}

var errCache sync.Map

/*
mkerrf joins parts into an error. Only single constant strings are cached.
*/
func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case Coding:
			b.WriteString(v.String())
		case Selection:
			b.WriteString(v.String())
		case ParamKind:
			b.WriteString(v.String())
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		case byte:
			b.WriteString(itoa(int(v)))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()
	if _, constant := parts[0].(string); !constant || len(parts) > 1 {
		return mkerr(msg)
	}

	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
