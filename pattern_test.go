package ttcnplus

import (
	"bytes"
	"errors"
	"testing"
)

/*
globMatch runs MatchSequence over a pattern in which '?' and '*' are
wildcards and every other byte is a literal.
*/
func globMatch(pattern, value string) bool {
	return MatchSequence(len(pattern), len(value), func(pi int) PatternKind {
		switch pattern[pi] {
		case '?':
			return PatternAnyElement
		case '*':
			return PatternAnyOrNone
		}
		return PatternLiteral
	}, func(pi, vi int) bool { return pattern[pi] == value[vi] })
}

func TestMatchSequence(t *testing.T) {
	for idx, tc := range []struct {
		pattern, value string
		want           bool
	}{
		{``, ``, true},
		{``, `0`, false},
		{`*`, ``, true},
		{`*`, `0110`, true},
		{`**`, ``, true},
		{`?`, ``, false},
		{`?`, `1`, true},
		{`?`, `11`, false},
		{`1*0`, `10`, true},
		{`1*0`, `110`, true},
		{`1*0`, `1110`, true},
		{`1*0`, `1010`, true},
		{`1*0`, `01`, false},
		{`1*0`, `00`, false},
		{`1*0`, `1`, false},
		{`1*0`, `11`, false},
		{`1*`, `1`, true},
		{`*0`, `0`, true},
		{`*0`, `01`, false},
		{`*01*1`, `0011`, true},
		{`*01*1`, `0010`, false},
		{`0?1*`, `0010111`, true},
		{`0?1*`, `0000111`, false},
		{`*1?`, `0110`, true},
		{`abc`, `abc`, true},
		{`abc`, `abd`, false},
	} {
		if got := globMatch(tc.pattern, tc.value); got != tc.want {
			t.Errorf("%s[%d] failed: %q against %q: want %t, got %t",
				t.Name(), idx, tc.pattern, tc.value, tc.want, got)
		}
	}
}

func TestStrPattern(t *testing.T) {
	for idx, tc := range []struct {
		width   uint
		lit     string
		want    string
		minLen  int
		star    bool
		literal bool
	}{
		{1, `'1?*0'B`, `'1?*0'B`, 3, true, false},
		{1, `''B`, `''B`, 0, false, true},
		{4, `'a*F'h`, `'A*F'H`, 2, true, false},
		{8, `'0A?*'O`, `'0A?*'O`, 2, true, false},
		{8, `'0A0B'O`, `'0A0B'O`, 2, false, true},
	} {
		p, err := parsePattern(tc.width, tc.lit)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if got := p.String(); got != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
		if n, star := p.minLength(); n != tc.minLen || star != tc.star {
			t.Errorf("%s[%d] failed: minLength=(%d,%t)", t.Name(), idx, n, star)
		}
		if p.isLiteral() != tc.literal {
			t.Errorf("%s[%d] failed: isLiteral=%t", t.Name(), idx, p.isLiteral())
		}
	}

	for idx, tc := range []struct {
		width uint
		lit   string
	}{
		{1, `'12'B`},
		{1, `'10'H`},
		{8, `'0A1'O`},
		{8, `'0*A'O`},
		{4, `'G'H`},
	} {
		if _, err := parsePattern(tc.width, tc.lit); !errors.Is(err, ErrBadLiteral) {
			t.Errorf("%s[%d] failed: %q accepted (%v)", t.Name(), idx, tc.lit, err)
		}
	}
}

func TestStrPattern_match(t *testing.T) {
	p, _ := parsePattern(8, `'0A*FF'O`)
	for idx, tc := range []struct {
		in   []byte
		want bool
	}{
		{[]byte{0x0A, 0xFF}, true},
		{[]byte{0x0A, 0x01, 0x02, 0xFF}, true},
		{[]byte{0x0A}, false},
		{[]byte{0xFF, 0x0A, 0xFF}, false},
	} {
		oct := NewOctetstring(tc.in)
		if got := p.match(oct.cellOf()); got != tc.want {
			t.Errorf("%s[%d] failed: %s: want %t, got %t", t.Name(), idx, oct, tc.want, got)
		}
		oct.Release()
	}
}

func TestStrPattern_text(t *testing.T) {
	for idx, tc := range []struct {
		width uint
		lit   string
		want  []byte
	}{
		{1, `'1?*0'B`, []byte{0x04, 0x01, 0x02, 0x03, 0x00}},
		{4, `'F?'H`, []byte{0x02, 0x0F, 0x10}},
		{8, `'0A?*'O`, []byte{0x03, 0x0A, 0x82, 0x00, 0x82, 0x01}},
	} {
		p, _ := parsePattern(tc.width, tc.lit)
		buf := NewTextBuf()
		p.encodeText(buf)
		if got := buf.Data(); !bytes.Equal(got, tc.want) {
			t.Errorf("%s[%d] failed:\n\twant: %x\n\tgot:  %x", t.Name(), idx, tc.want, got)
			continue
		}

		out, err := decodePattern(tc.width, buf)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if out.String() != p.String() {
			t.Errorf("%s[%d] failed: decoded %s", t.Name(), idx, out)
		}
	}

	if _, err := decodePattern(1, NewTextBuf(0x01, 0x04)); !errors.Is(err, ErrBadPattern) {
		t.Errorf("%s failed: undefined element code accepted (%v)", t.Name(), err)
	}
	if _, err := decodePattern(8, NewTextBuf(0x01, 0x82, 0x02)); !errors.Is(err, ErrBadPattern) {
		t.Errorf("%s failed: undefined octet code accepted (%v)", t.Name(), err)
	}
}
