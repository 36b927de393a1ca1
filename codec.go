package ttcnplus

/*
codec.go contains the encoding dispatch shared by every value type.
*/

import (
	"io"
	"sync/atomic"

	"go.uber.org/zap"
)

//go:generate go tool stringer -type=Coding -linecomment

/*
Coding enumerates the external encodings a value may be converted to
or from.
*/
type Coding uint8

const (
	invalidCoding Coding = iota // invalid
	BER                         // BER
	RAW                         // RAW
	TEXT                        // TEXT
	XER                         // XER
	JSON                        // JSON
)

/*
ErrorBehavior controls how codec failures are reported. Errors are always
returned; the behavior selects the log level: [ErrorDefault] logs at
debug level, [ErrorWarning] at warn level, [ErrorIgnore] not at all.
*/
type ErrorBehavior uint32

const (
	ErrorDefault ErrorBehavior = iota
	ErrorWarning
	ErrorIgnore
)

func (r ErrorBehavior) String() (s string) {
	switch r {
	case ErrorWarning:
		s = `warning`
	case ErrorIgnore:
		s = `ignore`
	default:
		s = `default`
	}
	return
}

var errorBehavior atomic.Uint32

/*
SetErrorBehavior installs b and returns the previous behavior.
*/
func SetErrorBehavior(b ErrorBehavior) ErrorBehavior {
	return ErrorBehavior(errorBehavior.Swap(uint32(b)))
}

/*
GetErrorBehavior returns the current codec error behavior.
*/
func GetErrorBehavior() ErrorBehavior { return ErrorBehavior(errorBehavior.Load()) }

/*
codec holds the encode and decode functions of one value type under
one [Coding].
*/
type codec[V any] struct {
	encode func(V) ([]byte, error)
	decode func([]byte) (V, int, error)
}

/*
Encode writes the coding of v to w.
*/
func Encode[V Value[V]](v V, coding Coding, w io.Writer) (err error) {
	f := familyOf[V]()
	mustBound(v.IsBound(), "encoding an unbound "+f.name+" value")

	c, ok := f.codecs[coding]
	if !ok {
		err = codecErrorf(ErrCodecNotSupported, coding, " encoding is not supported for type ", f.name)
		reportCodecError("encode", coding, f.name, err)
		return
	}

	var b []byte
	if b, err = c.encode(v); err == nil {
		_, err = w.Write(b)
	} else {
		reportCodecError("encode", coding, f.name, err)
	}
	return
}

/*
Decode returns a value of type V decoded from the start of data using
coding, alongside the number of bytes consumed.
*/
func Decode[V Value[V]](coding Coding, data []byte) (v V, n int, err error) {
	f := familyOf[V]()
	c, ok := f.codecs[coding]
	if !ok {
		err = codecErrorf(ErrCodecNotSupported, coding, " decoding is not supported for type ", f.name)
	} else {
		v, n, err = c.decode(data)
	}

	if err != nil {
		reportCodecError("decode", coding, f.name, err)
	}
	return
}

func reportCodecError(op string, coding Coding, typ string, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Stringer("coding", coding),
		zap.String("type", typ),
		zap.Error(err),
	}
	switch GetErrorBehavior() {
	case ErrorWarning:
		Logger().Warn("codec error", fields...)
	case ErrorDefault:
		Logger().Debug("codec error", fields...)
	}
}
