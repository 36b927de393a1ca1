package ttcnplus

import (
	"errors"
	"testing"
)

func TestVerdict(t *testing.T) {
	for idx, name := range []string{`none`, `pass`, `inconc`, `fail`, `error`} {
		v, err := ParseVerdict(name)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if v.Type() != VerdictType(idx) || v.String() != name {
			t.Errorf("%s[%d] failed: got %s", t.Name(), idx, v)
		}
	}

	if _, err := ParseVerdict(`PASS`); !errors.Is(err, ErrBadLiteral) {
		t.Errorf("%s failed: upper-case verdict accepted (%v)", t.Name(), err)
	}
	if got := VerdictType(9).String(); got != `VerdictType(9)` {
		t.Errorf("%s failed: %s", t.Name(), got)
	}
	if err := Catch(func() { NewVerdict(VerdictType(5)) }); err == nil {
		t.Errorf("%s failed: invalid verdict accepted", t.Name())
	}
}

func TestVerdict_override(t *testing.T) {
	var v Verdict
	for idx, tc := range []struct {
		set, want VerdictType
	}{
		{VerdictPass, VerdictPass},
		{VerdictNone, VerdictPass},
		{VerdictFail, VerdictFail},
		{VerdictInconc, VerdictFail},
		{VerdictError, VerdictError},
		{VerdictPass, VerdictError},
	} {
		if v = v.Override(tc.set); v.Type() != tc.want {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, tc.want, v)
		}
	}
}

func TestVerdict_text(t *testing.T) {
	buf := NewTextBuf()
	NewVerdict(VerdictInconc).EncodeText(buf)

	var v Verdict
	if err := v.DecodeText(buf); err != nil || v.Type() != VerdictInconc {
		t.Errorf("%s failed: %s (%v)", t.Name(), v, err)
	}

	bad := NewTextBuf(0x05)
	if err := v.DecodeText(bad); !errors.Is(err, ErrBadLiteral) {
		t.Errorf("%s failed: expected a literal error, got %v", t.Name(), err)
	} else if v.Type() != VerdictInconc {
		t.Errorf("%s failed: receiver modified on error", t.Name())
	}
}

func TestOptional(t *testing.T) {
	bs, _ := ParseBitstring(`'01'B`)
	opt := Present(bs)
	if !opt.IsBound() || !opt.IsPresent() || opt.IsOmit() || bs.c.refs != 2 {
		t.Errorf("%s failed: unexpected present state", t.Name())
	}
	if got := opt.String(); got != `'01'B` {
		t.Errorf("%s failed: %s", t.Name(), got)
	}

	v := opt.Value()
	v.Release()
	opt.Release()
	if opt.IsBound() || bs.c.refs != 1 {
		t.Errorf("%s failed: release left %d references", t.Name(), bs.c.refs)
	}

	omitted := Omitted[Bitstring]()
	if !omitted.IsOmit() || omitted.String() != `omit` {
		t.Errorf("%s failed: unexpected omitted state", t.Name())
	}
	if err := Catch(func() { omitted.Value() }); err == nil {
		t.Errorf("%s failed: value of an omitted field returned", t.Name())
	}

	var unbound Optional[Boolean]
	if unbound.IsBound() || unbound.String() != `<unbound>` {
		t.Errorf("%s failed: zero value is bound", t.Name())
	}
	if err := Catch(func() { Present(Boolean{}) }); err == nil {
		t.Errorf("%s failed: unbound value accepted", t.Name())
	}
}
