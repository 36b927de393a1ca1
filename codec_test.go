package ttcnplus

import (
	"bytes"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

/*
observeLogs installs an observing logger for the duration of t.
*/
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestCoding_String(t *testing.T) {
	for idx, tc := range []struct {
		c    Coding
		want string
	}{
		{BER, `BER`},
		{JSON, `JSON`},
		{invalidCoding, `invalid`},
		{Coding(9), `Coding(9)`},
	} {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
	}
}

func TestJSON(t *testing.T) {
	hs, _ := ParseHexstring(`'A5F'H`)
	for idx, tc := range []struct {
		encode func(*bytes.Buffer) error
		want   string
	}{
		{func(w *bytes.Buffer) error { return Encode(mustBitstring(t, `'0101'B`), JSON, w) }, `"0101"`},
		{func(w *bytes.Buffer) error { return Encode(hs, JSON, w) }, `"A5F"`},
		{func(w *bytes.Buffer) error { return Encode(NewOctetstring([]byte{0xCA, 0xFE}), JSON, w) }, `"CAFE"`},
		{func(w *bytes.Buffer) error { return Encode(NewBoolean(true), JSON, w) }, `true`},
		{func(w *bytes.Buffer) error { return Encode(NewVerdict(VerdictInconc), JSON, w) }, `"inconc"`},
	} {
		var buf bytes.Buffer
		if err := tc.encode(&buf); err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if got := buf.String(); got != tc.want {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, tc.want, got)
		}
	}

	bs, n, err := Decode[Bitstring](JSON, []byte(`"0101" "11"`))
	if err != nil || n != 6 || bs.String() != `'0101'B` {
		t.Errorf("%s failed: %s after %d bytes (%v)", t.Name(), bs, n, err)
	}
	out, _, err := Decode[Hexstring](JSON, []byte(`"a5f"`))
	if err != nil || !out.Equal(hs) {
		t.Errorf("%s failed: %s (%v)", t.Name(), out, err)
	}
	oct, _, err := Decode[Octetstring](JSON, []byte(`"CAFE"`))
	if err != nil || oct.String() != `'CAFE'O` {
		t.Errorf("%s failed: %s (%v)", t.Name(), oct, err)
	}
	b, _, err := Decode[Boolean](JSON, []byte(` false`))
	if err != nil || b.Bool() {
		t.Errorf("%s failed: %s (%v)", t.Name(), b, err)
	}
	v, _, err := Decode[Verdict](JSON, []byte(`"error"`))
	if err != nil || v.Type() != VerdictError {
		t.Errorf("%s failed: %s (%v)", t.Name(), v, err)
	}
}

func TestJSON_errors(t *testing.T) {
	for idx, fn := range []func() (int, error){
		func() (int, error) { _, n, err := Decode[Bitstring](JSON, []byte(`"012"`)); return n, err },
		func() (int, error) { _, n, err := Decode[Bitstring](JSON, []byte(`0101`)); return n, err },
		func() (int, error) { _, n, err := Decode[Octetstring](JSON, []byte(`"ABC"`)); return n, err },
		func() (int, error) { _, n, err := Decode[Boolean](JSON, []byte(`5`)); return n, err },
		func() (int, error) { _, n, err := Decode[Verdict](JSON, []byte(`"PASS"`)); return n, err },
		func() (int, error) { _, n, err := Decode[Hexstring](JSON, nil); return n, err },
	} {
		if n, err := fn(); !errors.Is(err, ErrBadLiteral) {
			t.Errorf("%s[%d] failed: expected a literal error, got %v", t.Name(), idx, err)
		} else if n != 0 {
			t.Errorf("%s[%d] failed: %d bytes consumed on error", t.Name(), idx, n)
		}
	}
}

func TestCodec_unsupported(t *testing.T) {
	hs, _ := ParseHexstring(`'1'H`)
	var buf bytes.Buffer
	for idx, err := range []error{
		Encode(hs, BER, &buf),
		Encode(NewVerdict(VerdictPass), BER, &buf),
		Encode(mustBitstring(t, `'1'B`), RAW, &buf),
		Encode(NewBoolean(true), XER, &buf),
	} {
		if !errors.Is(err, ErrCodecNotSupported) {
			t.Errorf("%s[%d] failed: expected an unsupported coding error, got %v", t.Name(), idx, err)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("%s failed: %d bytes written", t.Name(), buf.Len())
	}

	if _, _, err := Decode[Hexstring](BER, []byte{0x04, 0x00}); !errors.Is(err, ErrCodecNotSupported) {
		t.Errorf("%s failed: expected an unsupported coding error, got %v", t.Name(), err)
	}
	if err := Catch(func() { Encode(Bitstring{}, BER, &buf) }); err == nil {
		t.Errorf("%s failed: unbound value encoded", t.Name())
	}
}

func TestErrorBehavior(t *testing.T) {
	logs := observeLogs(t)
	prev := SetErrorBehavior(ErrorDefault)
	defer SetErrorBehavior(prev)

	for idx, tc := range []struct {
		b     ErrorBehavior
		name  string
		level zapcore.Level
		count int
	}{
		{ErrorDefault, `default`, zapcore.DebugLevel, 1},
		{ErrorWarning, `warning`, zapcore.WarnLevel, 1},
		{ErrorIgnore, `ignore`, zapcore.DebugLevel, 0},
	} {
		SetErrorBehavior(tc.b)
		if GetErrorBehavior() != tc.b || tc.b.String() != tc.name {
			t.Errorf("%s[%d] failed: behavior %s", t.Name(), idx, GetErrorBehavior())
		}

		_, _, err := Decode[Boolean](BER, []byte{0x02, 0x01, 0x00})
		if !errors.Is(err, ErrBadLiteral) {
			t.Errorf("%s[%d] failed: error not returned under %s (%v)", t.Name(), idx, tc.b, err)
		}

		entries := logs.TakeAll()
		if len(entries) != tc.count {
			t.Errorf("%s[%d] failed: want %d log entries, got %d", t.Name(), idx, tc.count, len(entries))
		} else if tc.count > 0 && (entries[0].Level != tc.level || entries[0].Message != `codec error`) {
			t.Errorf("%s[%d] failed: logged %q at %s", t.Name(), idx, entries[0].Message, entries[0].Level)
		}
	}
}
