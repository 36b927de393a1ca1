package ttcnplus

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa    func(int) string                    = strconv.Itoa
	atoi    func(string) (int, error)           = strconv.Atoi
	fmtInt  func(int64, int) string             = strconv.FormatInt
	uc      func(string) string                 = strings.ToUpper
	join    func([]string, string) string       = strings.Join
	hasPfx  func(string, string) bool           = strings.HasPrefix
	hasSfx  func(string, string) bool           = strings.HasSuffix
	trimS   func(string) string                 = strings.TrimSpace
	cntns   func(string, string) bool           = strings.Contains
	quote   func(string) string                 = strconv.Quote
	splitN  func(string, string, int) []string  = strings.SplitN
	cutPfx  func(string, string) (string, bool) = strings.CutPrefix
	cutSfx  func(string, string) (string, bool) = strings.CutSuffix
	lastIdx func(string, string) int            = strings.LastIndex
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
hexDigit returns the upper-case hexadecimal character for the low
nibble of b.
*/
func hexDigit(b byte) byte { return "0123456789ABCDEF"[b&0x0F] }

/*
hexValue returns the numeric value of a hexadecimal character alongside
a Boolean value indicative of success.
*/
func hexValue(c byte) (v byte, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		v, ok = c-'0', true
	case 'a' <= c && c <= 'f':
		v, ok = c-'a'+10, true
	case 'A' <= c && c <= 'F':
		v, ok = c-'A'+10, true
	}
	return
}

/*
splitLiteral strips the TTCN-3 string literal decoration from s, e.g.
"'0101'B" yields ("0101", 'B'). The suffix is returned in upper case.
*/
func splitLiteral(s string) (digits string, suffix byte, err error) {
	s = trimS(s)
	if len(s) < 3 {
		err = literalErrorf("input too short for a string literal: ", quote(s))
		return
	}

	suffix = uc(s[len(s)-1:])[0]
	raw := s[:len(s)-1]
	if len(raw) < 2 || raw[0] != '\'' || raw[len(raw)-1] != '\'' {
		err = literalErrorf("incompatible encapsulating characters in ", quote(s))
		return
	}
	digits = stripSpace(raw[1 : len(raw)-1])
	return
}

/*
stripSpace removes whitespace embedded between literal digits, which
TTCN-3 permits for readability.
*/
func stripSpace(s string) string {
	if !cntns(s, " ") && !cntns(s, "\t") && !cntns(s, "\n") {
		return s
	}
	bld := newStrBuilder()
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
		default:
			bld.WriteByte(s[i])
		}
	}
	return bld.String()
}
