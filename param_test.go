package ttcnplus

import (
	"errors"
	"testing"
)

func mustParam(t *testing.T, s string) *ParsedParam {
	t.Helper()
	p, err := ParseParam(s)
	if err != nil {
		t.Fatalf("%s failed [parse %s]: %v", t.Name(), s, err)
	}
	return p
}

func TestParseParam(t *testing.T) {
	for idx, tc := range []struct {
		in, want string
		kind     ParamKind
	}{
		{`omit`, `omit`, ParamOmit},
		{` ? `, `?`, ParamAny},
		{`* ifpresent`, `* ifpresent`, ParamAnyOrNone},
		{`'0101'B`, `'0101'B`, ParamBitstring},
		{`'1*0'B`, `'1*0'B`, ParamBitstringTemplate},
		{`'A?'H length (2)`, `'A?'H length (2)`, ParamHexstringTemplate},
		{`'CAFE'O`, `'CAFE'O`, ParamOctetstring},
		{`true`, `true`, ParamBoolean},
		{`inconc`, `inconc`, ParamVerdict},
		{`'1'B & '0'B & '11'B`, `'1'B & '0'B & '11'B`, ParamConcat},
		{`('0'B, omit)`, `('0'B, omit)`, ParamList},
		{`()`, `()`, ParamList},
		{`(? , '1'B)ifpresent`, `(?, '1'B) ifpresent`, ParamList},
		{
			`complement ('00'B, '1*'B) length (2 .. infinity) ifpresent`,
			`complement ('00'B, '1*'B) length (2 .. infinity) ifpresent`,
			ParamComplementList,
		},
		{`('A'H, 'B'H) length (0 .. 1)`, `('A'H, 'B'H) length (0 .. 1)`, ParamList},
	} {
		p, err := ParseParam(tc.in)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if got := p.String(); got != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
		if p.Kind != tc.kind {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, tc.kind, p.Kind)
		}
	}

	p := mustParam(t, `'1'B & '0'B & '11'B`)
	if lhs := p.Operands[0]; lhs.Kind != ParamConcat || p.Operands[1].Literal != `'11'B` {
		t.Errorf("%s failed: concatenation is not left-associative", t.Name())
	}
}

func TestParseParam_errors(t *testing.T) {
	for idx, in := range []string{
		``,
		`'01'X`,
		`('0'B`,
		`'1'B length (x)`,
		`'1'B length (3 .. 1)`,
		`'1'B length (-1)`,
		`('0'B, '1'B length (x))`,
		`'1'B length (x) ifpresent`,
		`'1'B &`,
		`foo`,
	} {
		if p, err := ParseParam(in); !errors.Is(err, ErrParamType) {
			t.Errorf("%s[%d] failed: %q accepted (%v)", t.Name(), idx, in, err)
		} else if p != nil {
			t.Errorf("%s[%d] failed: partial result returned", t.Name(), idx)
		}
	}
}

func TestParamKind_String(t *testing.T) {
	for idx, tc := range []struct {
		kind ParamKind
		want string
	}{
		{ParamAny, `? (any)`},
		{ParamComplementList, `complemented list template`},
		{ParamConcat, `concatenation`},
		{ParamKind(99), `ParamKind(99)`},
	} {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
	}
}

func TestSetParam_values(t *testing.T) {
	var bs Bitstring
	if err := bs.SetParam(mustParam(t, `'01'B & '1'B`)); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	} else if got := bs.GetParam(); got.Kind != ParamBitstring || got.String() != `'011'B` {
		t.Errorf("%s failed: got %s", t.Name(), got)
	}

	err := bs.SetParam(mustParam(t, `'A'H`))
	want := `PARAMETER ERROR: type mismatch: bitstring value or reference was expected instead of hexstring`
	if !errors.Is(err, ErrParamType) || err.Error() != want {
		t.Errorf("%s failed:\n\twant: %s\n\tgot:  %v", t.Name(), want, err)
	} else if bs.String() != `'011'B` {
		t.Errorf("%s failed: receiver modified on error", t.Name())
	}

	var hs Hexstring
	var oct Octetstring
	var b Boolean
	var v Verdict
	for idx, tc := range []struct {
		target interface {
			SetParam(*ParsedParam) error
			String() string
		}
		in, want string
	}{
		{&hs, `'A'H & 'BC'H`, `'ABC'H`},
		{&oct, `'CAFE'O`, `'CAFE'O`},
		{&b, `false`, `false`},
		{&v, `fail`, `fail`},
	} {
		if err = tc.target.SetParam(mustParam(t, tc.in)); err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if got := tc.target.String(); got != tc.want {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, tc.want, got)
		}
	}
	if p := v.GetParam(); p.Kind != ParamVerdict || p.Literal != `fail` {
		t.Errorf("%s failed: got %s", t.Name(), p)
	}
	if p := (Boolean{}).GetParam(); p.Kind != ParamUnbound {
		t.Errorf("%s failed: unbound value described as %s", t.Name(), p.Kind)
	}

	for idx, tc := range []struct {
		target interface{ SetParam(*ParsedParam) error }
		in     string
	}{
		{&b, `true & false`},
		{&b, `true ifpresent`},
		{&oct, `'CA'O length (1)`},
		{&v, `?`},
		{&hs, `'A*'H`},
		{&oct, `'CA'O & '1'B`},
	} {
		if err = tc.target.SetParam(mustParam(t, tc.in)); !errors.Is(err, ErrParamType) {
			t.Errorf("%s[%d] failed: %q accepted (%v)", t.Name(), idx, tc.in, err)
		}
	}
	if err = hs.SetParam(nil); !errors.Is(err, ErrParamType) {
		t.Errorf("%s failed: nil parameter accepted (%v)", t.Name(), err)
	}
}

func TestSetParam_templates(t *testing.T) {
	const lit = `complement ('00'B, '1*'B) length (2 .. infinity) ifpresent`
	var tmpl BitstringTemplate
	if err := tmpl.SetParam(mustParam(t, lit)); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if got := tmpl.String(); got != lit {
		t.Errorf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), lit, got)
	}
	if got := tmpl.GetParam().String(); got != lit {
		t.Errorf("%s failed [GetParam]:\n\twant: %s\n\tgot:  %s", t.Name(), lit, got)
	}

	for idx, tc := range []struct {
		in   string
		want bool
	}{
		{`'11'B`, false},
		{`'01'B`, true},
		{`'0'B`, false},
		{`'010'B`, true},
	} {
		if got := tmpl.Match(mustBitstring(t, tc.in)); got != tc.want {
			t.Errorf("%s[%d] failed: %s against %s: want %t, got %t", t.Name(), idx, tc.in, tmpl, tc.want, got)
		}
	}

	var oct OctetstringTemplate
	if err := oct.SetParam(mustParam(t, `'CA'O & 'FE'O ifpresent`)); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	} else if got := oct.String(); got != `'CAFE'O ifpresent` {
		t.Errorf("%s failed: got %s", t.Name(), got)
	}

	var hs HexstringTemplate
	if err := hs.SetParam(mustParam(t, `('A?'H, *) length (2)`)); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	} else if p := hs.GetParam(); p.Kind != ParamList || p.Elems[0].Kind != ParamHexstringTemplate || !p.Length.IsExact() {
		t.Errorf("%s failed: got %s", t.Name(), p)
	}

	b := NewAny[Boolean]()
	for idx, in := range []string{
		`true length (1)`,
		`'1*'B`,
		`(true, pass)`,
		`true & false`,
	} {
		if err := b.SetParam(mustParam(t, in)); !errors.Is(err, ErrParamType) {
			t.Errorf("%s[%d] failed: %q accepted (%v)", t.Name(), idx, in, err)
		} else if b.Selection() != AnyValue {
			t.Errorf("%s[%d] failed: receiver modified on error", t.Name(), idx)
		}
	}

	if p := (BooleanTemplate{}).GetParam(); p.Kind != ParamUnbound {
		t.Errorf("%s failed: uninitialized template described as %s", t.Name(), p.Kind)
	}
}
