package ttcnplus

import (
	"bytes"
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestTextBuf_pushInt(t *testing.T) {
	for idx, tc := range []struct {
		in   int64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{-1, []byte{0x41}},
		{63, []byte{0x3F}},
		{-63, []byte{0x7F}},
		{64, []byte{0x80, 0x40}},
		{-64, []byte{0xC0, 0x40}},
		{127, []byte{0x80, 0x7F}},
		{8191, []byte{0xBF, 0x7F}},
		{8192, []byte{0x80, 0xC0, 0x00}},
	} {
		buf := NewTextBuf()
		buf.PushInt(tc.in)
		if got := buf.Data(); !bytes.Equal(got, tc.want) {
			t.Errorf("%s[%d] failed [encode %d]:\n\twant: %x\n\tgot:  %x",
				t.Name(), idx, tc.in, tc.want, got)
			continue
		}

		v, err := buf.PullInt64()
		if err != nil {
			t.Errorf("%s[%d] failed [decode]: %v", t.Name(), idx, err)
		} else if v != tc.in {
			t.Errorf("%s[%d] failed [decode]: want %d, got %d", t.Name(), idx, tc.in, v)
		}
	}
}

func TestTextBuf_intRoundTrip(t *testing.T) {
	values := []int64{
		math.MinInt64, math.MinInt64 + 1, -1 << 40, -65, 65,
		1 << 62, 1<<62 - 1, math.MaxInt64 - 1, math.MaxInt64,
	}

	buf := NewTextBuf()
	for _, v := range values {
		buf.PushInt(v)
	}
	PushNative(buf, uint16(65535))
	PushNative(buf, int8(-128))

	for idx, want := range values {
		got, err := buf.PullInt()
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if !got.IsNative() {
			t.Errorf("%s[%d] failed: %d decoded as a big integer", t.Name(), idx, want)
		} else if n, _ := got.Int64(); n != want {
			t.Errorf("%s[%d] failed: want %d, got %d", t.Name(), idx, want, n)
		}
	}

	if v, _ := buf.PullInt64(); v != 65535 {
		t.Errorf("%s failed [uint16]: got %d", t.Name(), v)
	}
	if v, _ := buf.PullInt64(); v != -128 {
		t.Errorf("%s failed [int8]: got %d", t.Name(), v)
	}
	if buf.Remaining() != 0 {
		t.Errorf("%s failed: %d bytes left over", t.Name(), buf.Remaining())
	}
}

func TestTextBuf_bigInt(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	neg := new(big.Int).Neg(huge)

	for idx, x := range []*big.Int{huge, neg} {
		buf := NewTextBuf()
		buf.PushInteger(IntegerFromBig(x))
		if got, want := buf.Len(), 15; got != want {
			t.Errorf("%s[%d] failed [size]: want %d, got %d", t.Name(), idx, want, got)
		}

		v, err := buf.PullInt()
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if v.IsNative() {
			t.Fatalf("%s[%d] failed: 2^100 decoded as a native integer", t.Name(), idx)
		} else if got, want := v.String(), x.String(); got != want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, want, got)
		}

		buf.Rewind()
		if _, err = buf.PullInt64(); !errors.Is(err, ErrBadLiteral) {
			t.Errorf("%s[%d] failed: expected a too large error, got %v", t.Name(), idx, err)
		} else if buf.Pos() != 0 {
			t.Errorf("%s[%d] failed: cursor moved to %d", t.Name(), idx, buf.Pos())
		}
	}

	// Native-sized values given as big integers are normalized.
	if v := IntegerFromBig(big.NewInt(-5)); !v.IsNative() {
		t.Errorf("%s failed: -5 kept as a big integer", t.Name())
	}
}

func TestTextBuf_truncated(t *testing.T) {
	for idx, raw := range [][]byte{
		{},
		{0x80},
		{0xFF, 0xFF},
	} {
		buf := NewTextBuf(raw...)
		if _, err := buf.PullInt(); !errors.Is(err, ErrTruncated) {
			t.Errorf("%s[%d] failed: expected truncation, got %v", t.Name(), idx, err)
		} else if buf.Pos() != 0 {
			t.Errorf("%s[%d] failed: cursor moved to %d", t.Name(), idx, buf.Pos())
		}
	}

	buf := NewTextBuf(0x05, 'a', 'b')
	if _, err := buf.PullString(); !errors.Is(err, ErrTruncated) {
		t.Errorf("%s failed [string]: expected truncation, got %v", t.Name(), err)
	} else if buf.Pos() != 0 {
		t.Errorf("%s failed [string]: cursor moved to %d", t.Name(), buf.Pos())
	}

	buf = NewTextBuf(0x41)
	if _, err := buf.PullString(); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("%s failed [negative]: expected a negative length error, got %v", t.Name(), err)
	}

	if _, err := NewTextBuf(1, 2, 3).PullDouble(); !errors.Is(err, ErrTruncated) {
		t.Errorf("%s failed [double]: expected truncation, got %v", t.Name(), err)
	}
	if _, err := NewTextBuf().PullRaw(-1); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("%s failed [raw]: expected a negative length error, got %v", t.Name(), err)
	}
}

func TestTextBuf_primitives(t *testing.T) {
	buf := NewTextBuf()
	buf.PushDouble(-2.5)
	buf.PushString("héllo")
	buf.PushQualifiedName("Mod", "")
	buf.PushRaw([]byte{0xDE, 0xAD})

	if !bytes.Equal(buf.Data()[:8], []byte{0xC0, 0x04, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("%s failed: double is not big-endian: %x", t.Name(), buf.Data()[:8])
	}

	if f, err := buf.PullDouble(); err != nil || f != -2.5 {
		t.Errorf("%s failed [double]: %v, %v", t.Name(), f, err)
	}
	if s, err := buf.PullString(); err != nil || s != "héllo" {
		t.Errorf("%s failed [string]: %q, %v", t.Name(), s, err)
	}
	if m, d, err := buf.PullQualifiedName(); err != nil || m != "Mod" || d != "" {
		t.Errorf("%s failed [qualified name]: %q %q, %v", t.Name(), m, d, err)
	}
	if p, err := buf.PullRaw(2); err != nil || !bytes.Equal(p, []byte{0xDE, 0xAD}) {
		t.Errorf("%s failed [raw]: %x, %v", t.Name(), p, err)
	}
}

func TestTextBuf_growth(t *testing.T) {
	buf := NewTextBuf()
	if got := buf.Cap(); got != 1024 {
		t.Fatalf("%s failed: initial capacity %d", t.Name(), got)
	}

	payload := bytes.Repeat([]byte{0xAB}, 3000)
	buf.PushRaw(payload)
	if got := buf.Cap(); got != 4096 {
		t.Errorf("%s failed: capacity %d after 3000 bytes", t.Name(), got)
	}
	if !bytes.Equal(buf.Data(), payload) {
		t.Errorf("%s failed: payload corrupted by growth", t.Name())
	}

	buf.PushRawFront([]byte{1, 2})
	if d := buf.Data(); d[0] != 1 || d[1] != 2 || d[2] != 0xAB || buf.Len() != 3002 {
		t.Errorf("%s failed [front]: unexpected payload head %x", t.Name(), d[:3])
	}

	buf.Reset()
	if buf.Len() != 0 || buf.Cap() != 1024 {
		t.Errorf("%s failed [reset]: len %d, cap %d", t.Name(), buf.Len(), buf.Cap())
	}
}

func TestTextBuf_framing(t *testing.T) {
	msg := NewTextBuf()
	msg.PushString("abc")
	msg.CalculateLength()
	frame := append([]byte(nil), msg.Data()...)
	if want := []byte{0x04, 0x03, 'a', 'b', 'c'}; !bytes.Equal(frame, want) {
		t.Fatalf("%s failed:\n\twant: %x\n\tgot:  %x", t.Name(), want, frame)
	}

	// two frames followed by a partial one
	stream := NewTextBuf()
	stream.PushRaw(frame)
	stream.PushRaw(frame)
	stream.PushRaw(frame[:3])
	stream.Seek(1)

	for i := 0; i < 2; i++ {
		ok, err := stream.IsCompleteMessage()
		if err != nil || !ok {
			t.Fatalf("%s[%d] failed: complete=%t, err=%v", t.Name(), i, ok, err)
		} else if i == 0 && stream.Pos() != 1 {
			t.Errorf("%s[%d] failed: cursor not restored (%d)", t.Name(), i, stream.Pos())
		}
		if ok, _ = stream.DiscardMessage(); !ok {
			t.Fatalf("%s[%d] failed: nothing discarded", t.Name(), i)
		} else if stream.Pos() != 0 {
			t.Errorf("%s[%d] failed: cursor not rewound", t.Name(), i)
		}
	}

	if ok, err := stream.IsCompleteMessage(); ok || err != nil {
		t.Errorf("%s failed [partial]: complete=%t, err=%v", t.Name(), ok, err)
	} else if stream.Len() != 3 {
		t.Errorf("%s failed [partial]: %d bytes left", t.Name(), stream.Len())
	}

	for idx, prefix := range [][]byte{{0x81}, {0x81, 0x80}, {0xC1, 0xFF}} {
		buf := NewTextBuf(prefix...)
		buf.Seek(1)
		if ok, err := buf.IsCompleteMessage(); ok || err != nil {
			t.Errorf("%s[prefix %d] failed: complete=%t, err=%v", t.Name(), idx, ok, err)
		} else if buf.Pos() != 1 {
			t.Errorf("%s[prefix %d] failed: cursor moved to %d", t.Name(), idx, buf.Pos())
		}
		if ok, err := buf.DiscardMessage(); ok || err != nil || buf.Len() != len(prefix) {
			t.Errorf("%s[prefix %d] failed: incomplete prefix discarded", t.Name(), idx)
		}
	}

	neg := NewTextBuf(0x45, 0x00)
	if _, err := neg.IsCompleteMessage(); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("%s failed [negative]: expected a negative length error, got %v", t.Name(), err)
	}
}

func TestTextBuf_getEnd(t *testing.T) {
	buf := NewTextBuf()
	end := buf.GetEnd()
	if len(end) < 1000 {
		t.Fatalf("%s failed: only %d free bytes", t.Name(), len(end))
	}
	n := copy(end, "socket data")
	buf.IncreaseLength(n)
	if got := string(buf.Data()); got != "socket data" {
		t.Errorf("%s failed: got %q", t.Name(), got)
	}

	if err := Catch(func() { buf.IncreaseLength(-1) }); err == nil {
		t.Errorf("%s failed: negative addition accepted", t.Name())
	}
	if err := Catch(func() { buf.IncreaseLength(1 << 20) }); err == nil {
		t.Errorf("%s failed: oversized addition accepted", t.Name())
	}
}
