package ttcnplus

import (
	"bytes"
	"errors"
	"testing"
)

func TestHexstring(t *testing.T) {
	for idx, tc := range []struct {
		in, want string
	}{
		{`'A5'H`, `'A5'H`},
		{`'a5f'h`, `'A5F'H`},
		{`''H`, `''H`},
		{`'0F'O`, `'0F'H`},
	} {
		hs, err := ParseHexstring(tc.in)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if got := hs.String(); got != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
		hs.Release()
	}

	for idx, bad := range []string{`'1'B`, `'G'H`} {
		if _, err := ParseHexstring(bad); !errors.Is(err, ErrBadLiteral) {
			t.Errorf("%s[%d] failed: %q accepted (%v)", t.Name(), idx, bad, err)
		}
	}
}

func TestHexstring_elements(t *testing.T) {
	hs, _ := ParseHexstring(`'A5'H`)
	if hs.Digit(0) != 0xA || hs.Digit(1) != 0x5 {
		t.Errorf("%s failed: digits %X %X", t.Name(), hs.Digit(0), hs.Digit(1))
	}
	if got := hs.Bytes(); !bytes.Equal(got, []byte{0x5A}) {
		t.Errorf("%s failed: unexpected packing %x", t.Name(), got)
	}

	shared := hs.Clone()
	hs.SetDigit(2, 0xC)
	hs.SetDigit(0, 0x1F)
	if hs.String() != `'F5C'H` || shared.String() != `'A5'H` {
		t.Errorf("%s failed: hs=%s shared=%s", t.Name(), hs, shared)
	}
	if err := Catch(func() { hs.Digit(-1) }); err == nil {
		t.Errorf("%s failed: negative index accepted", t.Name())
	}
	hs.Release()
	shared.Release()
}

func TestHexstring_operators(t *testing.T) {
	a, _ := ParseHexstring(`'F0A'H`)
	b, _ := ParseHexstring(`'3C5'H`)

	for idx, tc := range []struct {
		got  Hexstring
		want string
	}{
		{a.Concat(b), `'F0A3C5'H`},
		{a.Not4b(), `'0F5'H`},
		{a.And4b(b), `'300'H`},
		{a.Or4b(b), `'FCF'H`},
		{a.Xor4b(b), `'CCF'H`},
		{a.Shl(1), `'0A0'H`},
		{a.Shr(1), `'0F0'H`},
		{a.Rotl(1), `'0AF'H`},
		{a.Rotr(1), `'AF0'H`},
	} {
		if s := tc.got.String(); s != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, s)
		}
		tc.got.Release()
	}
}

func TestHexstring_conversions(t *testing.T) {
	hs, _ := ParseHexstring(`'ABC'H`)
	if got := Hex2Oct(hs).String(); got != `'0ABC'O` {
		t.Errorf("%s failed [hex2oct]: %s", t.Name(), got)
	}
	if got := Hex2Bit(hs).String(); got != `'101010111100'B` {
		t.Errorf("%s failed [hex2bit]: %s", t.Name(), got)
	}
	if hs.c.refs != 1 {
		t.Errorf("%s failed: conversion leaked a reference (%d)", t.Name(), hs.c.refs)
	}
}

func TestHexstring_text(t *testing.T) {
	hs, _ := ParseHexstring(`'123'H`)
	buf := NewTextBuf()
	hs.EncodeText(buf)
	if got := buf.Data(); !bytes.Equal(got, []byte{0x03, 0x21, 0x03}) {
		t.Fatalf("%s failed: unexpected encoding %x", t.Name(), got)
	}

	var out Hexstring
	if err := out.DecodeText(buf); err != nil || !out.Equal(hs) {
		t.Errorf("%s failed: decoded %s (%v)", t.Name(), out, err)
	}
}
