package ttcnplus

/*
textbuf.go contains the TextBuf wire buffer and its primitive codecs.
*/

import (
	"encoding/binary"
	"io"
	"math"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

/*
TextBuf implements the growable buffer used to exchange values between
test components.

The buffer reserves a fixed header ahead of the payload so that a message
length prefix may be written once the payload is complete; see
[TextBuf.CalculateLength]. Capacity is always a power of two, starting at
1024 bytes.

A TextBuf is not safe for concurrent use.
*/
type TextBuf struct {
	data  []byte // len(data) is the capacity
	begin int    // start of the logical payload
	pos   int    // read cursor, absolute
	n     int    // payload length measured from begin
}

/*
NewTextBuf returns a freshly allocated *[TextBuf]. If src is non-zero in
length, it is appended as raw payload.
*/
func NewTextBuf(src ...byte) *TextBuf {
	r := &TextBuf{begin: bufHead, pos: bufHead}
	r.reallocate(bufSize)
	if len(src) > 0 {
		r.PushRaw(src)
	}
	return r
}

/*
reallocate resizes the backing store to the smallest power of two (from
1024 up) able to hold size payload bytes after the current begin offset.
The store may shrink.
*/
func (r *TextBuf) reallocate(size int) {
	newSize := bufSize + bufHead
	for newSize < size+r.begin {
		newSize *= 2
	}
	if newSize != len(r.data) {
		data := make([]byte, newSize)
		copy(data, r.data[:min(len(r.data), newSize)])
		r.data = data
	}
}

/*
Reset discards all content and returns the receiver to its initial state.
*/
func (r *TextBuf) Reset() {
	r.begin = bufHead
	r.reallocate(bufSize)
	r.pos = bufHead
	r.n = 0
}

/*
Rewind moves the read cursor to the start of the payload.
*/
func (r *TextBuf) Rewind() { r.pos = r.begin }

/*
Pos returns the read cursor relative to the start of the payload.
*/
func (r *TextBuf) Pos() int { return r.pos - r.begin }

/*
Seek moves the read cursor to off bytes past the start of the payload.
*/
func (r *TextBuf) Seek(off int) {
	if off < 0 || off > r.n {
		usagef("TextBuf.Seek", "offset ", off, " out of range [0..", r.n, "]")
	}
	r.pos = r.begin + off
}

/*
Len returns the payload length in bytes.
*/
func (r *TextBuf) Len() int { return r.n }

/*
Cap returns the size of the backing store.
*/
func (r *TextBuf) Cap() int { return len(r.data) }

/*
Remaining returns the number of payload bytes past the read cursor.
*/
func (r *TextBuf) Remaining() int { return r.begin + r.n - r.pos }

/*
Data returns the payload. The slice aliases the receiver and is only valid
until the next mutating call.
*/
func (r *TextBuf) Data() []byte { return r.data[r.begin : r.begin+r.n] }

/*
WriteTo writes the payload to w. It implements [io.WriterTo].
*/
func (r *TextBuf) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Data())
	return int64(n), err
}

/*
Write appends p to the payload. It implements [io.Writer] and never fails.
*/
func (r *TextBuf) Write(p []byte) (int, error) {
	r.PushRaw(p)
	return len(p), nil
}

/*
varintLen returns the number of bytes needed to encode mag: six payload
bits in the first byte, seven in each following byte.
*/
func varintLen[T constraints.Unsigned](mag T) (n int) {
	n = 1
	for tmp := mag >> 6; tmp != 0; tmp >>= 7 {
		n++
	}
	return
}

/*
putVarint writes mag into dst most significant group first. len(dst)
must equal varintLen(mag).
*/
func putVarint[T constraints.Unsigned](dst []byte, mag T, neg bool) {
	last := len(dst) - 1
	for i := last; i >= 0; i-- {
		if i > 0 {
			dst[i] = byte(mag & 0x7F)
			mag >>= 7
		} else {
			dst[i] = byte(mag & 0x3F)
		}
		if i < last {
			dst[i] |= 0x80
		}
	}
	if neg {
		dst[0] |= 0x40
	}
}

func (r *TextBuf) grow(add int) []byte {
	r.reallocate(r.n + add)
	end := r.begin + r.n
	r.n += add
	return r.data[end : end+add]
}

func (r *TextBuf) pushMagnitude(mag uint64, neg bool) {
	putVarint(r.grow(varintLen(mag)), mag, neg)
}

/*
PushInt appends v using the variable-length signed integer encoding.
*/
func (r *TextBuf) PushInt(v int64) { PushNative(r, v) }

/*
PushNative appends any native integer v to r using the variable-length
signed integer encoding.
*/
func PushNative[T constraints.Integer](r *TextBuf, v T) {
	if v < 0 {
		r.pushMagnitude(uint64(-int64(v)), true)
	} else {
		r.pushMagnitude(uint64(v), false)
	}
}

/*
PushInteger appends v, which may exceed the native word.
*/
func (r *TextBuf) PushInteger(v Integer) {
	if v.IsNative() {
		r.PushInt(v.native)
		return
	}

	b := v.big
	mag := b.Bytes()
	size := b.BitLen()/7 + 1
	dst := r.grow(size)
	for i := size - 1; i >= 0; i-- {
		off := 7 * (size - 1 - i)
		if i > 0 {
			dst[i] = magnitudeBits(mag, off, 7)
		} else {
			dst[i] = magnitudeBits(mag, off, 6)
		}
		if i < size-1 {
			dst[i] |= 0x80
		}
	}
	if b.IsNegative() {
		dst[0] |= 0x40
	}
}

/*
magnitudeBits returns width bits of the big-endian magnitude mag,
starting at bit offset off counted from the least significant bit.
*/
func magnitudeBits(mag []byte, off, width int) (out byte) {
	for k := width - 1; k >= 0; k-- {
		bit := off + k
		idx := len(mag) - 1 - bit/8
		out <<= 1
		if idx >= 0 {
			out |= (mag[idx] >> (bit % 8)) & 1
		}
	}
	return
}

/*
PullInt extracts an integer at the read cursor. On error the cursor is
left unchanged.
*/
func (r *TextBuf) PullInt() (v Integer, err error) {
	end := r.begin + r.n
	if r.pos >= end {
		err = errorTruncatedInt
		return
	}

	p := r.pos
	for p < end && r.data[p]&0x80 != 0 {
		p++
	}
	if p >= end {
		err = errorTruncatedInt
		return
	}

	buf := r.data[r.pos : p+1]
	neg := buf[0]&0x40 != 0
	last := len(buf) - 1

	if len(buf) <= maxNativePullSize {
		var mag uint64
		for i, b := range buf {
			if i > 0 {
				mag |= uint64(b & 0x7F)
			} else {
				mag |= uint64(b & 0x3F)
			}
			if i < last {
				mag <<= 7
			}
		}
		if v.native = int64(mag); neg {
			v.native = -v.native
		}
	} else {
		d := newBigInteger()
		for i, b := range buf {
			if i > 0 {
				d = d.AddUint(uint64(b & 0x7F))
			} else {
				d = d.AddUint(uint64(b & 0x3F))
			}
			if i < last {
				d = d.Lsh(7)
			}
		}
		if neg {
			d = d.Neg()
		}
		v = NewBigInteger(d)
	}

	r.pos = p + 1
	return
}

/*
PullInt64 extracts an integer that must fit a native int64.
*/
func (r *TextBuf) PullInt64() (v int64, err error) {
	save := r.pos
	var i Integer
	if i, err = r.PullInt(); err == nil {
		var ok bool
		if v, ok = i.Int64(); !ok {
			r.pos = save
			err = errorIntegerTooLarge
		}
	}
	return
}

/*
pullLength extracts a non-negative length, naming what in the error.
*/
func (r *TextBuf) pullLength(what string) (n int, err error) {
	save := r.pos
	var v int64
	if v, err = r.PullInt64(); err == nil {
		if v < 0 {
			r.pos = save
			err = negativeErrorf("text decoder: negative ", what, " (", v, ")")
		} else if v > math.MaxInt32 {
			r.pos = save
			err = truncatedErrorf("text decoder: ", what, " ", v, " exceeds buffer")
		} else {
			n = int(v)
		}
	}
	return
}

/*
PushDouble appends v as eight big-endian IEEE 754 bytes.
*/
func (r *TextBuf) PushDouble(v float64) {
	binary.BigEndian.PutUint64(r.grow(8), math.Float64bits(v))
}

/*
PullDouble extracts eight big-endian IEEE 754 bytes.
*/
func (r *TextBuf) PullDouble() (v float64, err error) {
	if r.pos+8 > r.begin+r.n {
		err = errorTruncatedFloat
		return
	}
	v = math.Float64frombits(binary.BigEndian.Uint64(r.data[r.pos:]))
	r.pos += 8
	return
}

/*
PushRaw appends p verbatim.
*/
func (r *TextBuf) PushRaw(p []byte) { copy(r.grow(len(p)), p) }

/*
PushRawFront inserts p verbatim ahead of the current payload.
*/
func (r *TextBuf) PushRawFront(p []byte) {
	if len(p) == 0 {
		return
	}
	old := r.n
	r.grow(len(p))
	copy(r.data[r.begin+len(p):], r.data[r.begin:r.begin+old])
	copy(r.data[r.begin:], p)
}

/*
PullRaw extracts n bytes verbatim. The returned slice is a copy.
*/
func (r *TextBuf) PullRaw(n int) (p []byte, err error) {
	if n < 0 {
		err = negativeErrorf("text decoder: decoding raw data with negative length (", n, ")")
		return
	} else if r.pos+n > r.begin+r.n {
		err = errorTruncatedRaw
		return
	}
	p = make([]byte, n)
	copy(p, r.data[r.pos:])
	r.pos += n
	return
}

/*
PushString appends the length of s followed by its bytes.
*/
func (r *TextBuf) PushString(s string) {
	r.PushInt(int64(len(s)))
	copy(r.grow(len(s)), s)
}

/*
PullString extracts a length-prefixed string. On error the cursor is left
unchanged.
*/
func (r *TextBuf) PullString() (s string, err error) {
	save := r.pos
	var n int
	if n, err = r.pullLength("string length"); err == nil {
		var p []byte
		if p, err = r.PullRaw(n); err != nil {
			r.pos = save
		} else {
			s = string(p)
		}
	}
	return
}

/*
PushQualifiedName appends a module name and a definition name. Empty
names denote absent components.
*/
func (r *TextBuf) PushQualifiedName(module, definition string) {
	r.PushString(module)
	r.PushString(definition)
}

/*
PullQualifiedName extracts the pair written by [TextBuf.PushQualifiedName].
*/
func (r *TextBuf) PullQualifiedName() (module, definition string, err error) {
	save := r.pos
	if module, err = r.PullString(); err == nil {
		if definition, err = r.PullString(); err != nil {
			r.pos = save
			module = ""
		}
	}
	return
}

/*
CalculateLength writes the current payload length into the reserved
header immediately ahead of the payload and moves the payload start onto
that prefix. It may be called once per message.
*/
func (r *TextBuf) CalculateLength() {
	value := uint(r.n)
	size := varintLen(value)
	if r.begin < size {
		usagef("TextBuf.CalculateLength", "there is not enough space to calculate message length")
	}
	putVarint(r.data[r.begin-size:r.begin], value, false)
	r.begin -= size
	r.n += size
}

/*
GetEnd returns the free space past the payload, growing the store so that
at least 1000 bytes are available. Bytes written into the returned slice
are committed with [TextBuf.IncreaseLength].
*/
func (r *TextBuf) GetEnd() []byte {
	end := r.begin + r.n
	if len(r.data)-end < bufSize {
		r.reallocate(r.n + bufSize)
	}
	return r.data[end:]
}

/*
IncreaseLength commits n bytes previously written into the slice returned
by [TextBuf.GetEnd].
*/
func (r *TextBuf) IncreaseLength(n int) {
	if n < 0 {
		usagef("TextBuf.IncreaseLength", "addition is negative (", n, ")")
	} else if r.begin+r.n+n > len(r.data) {
		usagef("TextBuf.IncreaseLength", "addition is too big")
	}
	r.n += n
}

/*
peekMessage reads the length prefix at the start of the payload and
returns the absolute end offset of the first message, or -1 if it is not
yet complete. The read cursor is restored.
*/
func (r *TextBuf) peekMessage() (msgEnd int, err error) {
	save := r.pos
	defer func() { r.pos = save }()

	msgEnd = -1
	r.pos = r.begin
	var v Integer
	if v, err = r.PullInt(); err != nil {
		err = nil // partial prefix
		return
	}

	n, native := v.Int64()
	if (native && n < 0) || (!native && v.big.IsNegative()) {
		err = negativeErrorf("text decoder: negative message length (", v.String(), ")")
	} else if native && n <= int64(r.begin+r.n-r.pos) {
		msgEnd = r.pos + int(n)
	}
	return
}

/*
IsCompleteMessage returns a Boolean value indicative of the payload
starting with a complete length-prefixed message. The read cursor is left
unchanged. A negative length prefix is reported as an error.
*/
func (r *TextBuf) IsCompleteMessage() (ok bool, err error) {
	var end int
	end, err = r.peekMessage()
	ok = end >= 0
	return
}

/*
DiscardMessage removes the first complete message, prefix included, from
the front of the payload and rewinds the read cursor. It returns false if
no complete message is present.
*/
func (r *TextBuf) DiscardMessage() (ok bool, err error) {
	var end int
	if end, err = r.peekMessage(); err != nil || end < 0 {
		return
	}

	cut := end - r.begin
	r.n -= cut
	copy(r.data[r.begin:], r.data[end:end+r.n])
	r.reallocate(r.n)
	r.Rewind()
	Logger().Debug("wire message discarded", zap.Int("length", cut), zap.Int("remaining", r.n))
	return true, nil
}
