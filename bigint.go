package ttcnplus

/*
bigint.go contains the Integer type, which carries either a native
64-bit word or an arbitrary-precision magnitude.
*/

import "math/big"

/*
BigInteger describes the arbitrary-precision arithmetic required by the
wire codec. Implementations are treated as immutable: every method that
yields a number returns a new instance.

The default implementation wraps [math/big.Int]; see [SetBigIntegerFactory].
*/
type BigInteger interface {
	IsNegative() bool
	BitLen() int     // bit length of the magnitude
	Bytes() []byte   // big-endian magnitude
	Lsh(uint) BigInteger
	AddUint(uint64) BigInteger
	Neg() BigInteger
	IsInt64() bool
	Int64() int64
	String() string
}

var newBigInteger func() BigInteger = func() BigInteger { return mathBig{new(big.Int)} }

/*
SetBigIntegerFactory replaces the constructor used to obtain a zero
[BigInteger] when a decoded integer exceeds the native word. A nil
input restores the [math/big] backed default.
*/
func SetBigIntegerFactory(fn func() BigInteger) {
	if fn == nil {
		fn = func() BigInteger { return mathBig{new(big.Int)} }
	}
	newBigInteger = fn
}

type mathBig struct{ v *big.Int }

func (r mathBig) IsNegative() bool { return r.v.Sign() < 0 }
func (r mathBig) BitLen() int      { return r.v.BitLen() }
func (r mathBig) Bytes() []byte    { return r.v.Bytes() }
func (r mathBig) IsInt64() bool    { return r.v.IsInt64() }
func (r mathBig) Int64() int64     { return r.v.Int64() }
func (r mathBig) String() string   { return r.v.String() }

func (r mathBig) Lsh(n uint) BigInteger { return mathBig{new(big.Int).Lsh(r.v, n)} }
func (r mathBig) Neg() BigInteger       { return mathBig{new(big.Int).Neg(r.v)} }

func (r mathBig) AddUint(n uint64) BigInteger {
	return mathBig{new(big.Int).Add(r.v, new(big.Int).SetUint64(n))}
}

/*
Integer implements a TTCN-3 integer value. The zero value is the native
integer zero. Values are kept native whenever they fit an int64.
*/
type Integer struct {
	native int64
	big    BigInteger
}

/*
NewInteger returns a native instance of [Integer].
*/
func NewInteger(v int64) Integer { return Integer{native: v} }

/*
NewBigInteger returns an instance of [Integer] wrapping b, normalised to
the native representation if b fits an int64.
*/
func NewBigInteger(b BigInteger) (i Integer) {
	if b == nil || b.IsInt64() {
		if b != nil {
			i.native = b.Int64()
		}
		return
	}
	i.big = b
	return
}

/*
IntegerFromBig returns an instance of [Integer] holding a copy of x.
*/
func IntegerFromBig(x *big.Int) Integer {
	return NewBigInteger(mathBig{new(big.Int).Set(x)})
}

/*
IsNative returns a Boolean value indicative of the receiver fitting a
native int64.
*/
func (r Integer) IsNative() bool { return r.big == nil }

/*
Int64 returns the native value alongside a Boolean value indicative of
the receiver fitting an int64.
*/
func (r Integer) Int64() (int64, bool) { return r.native, r.big == nil }

/*
Big returns the arbitrary-precision form of the receiver, or nil if the
receiver is native.
*/
func (r Integer) Big() BigInteger { return r.big }

/*
Equal returns a Boolean value indicative of r and o representing the
same number.
*/
func (r Integer) Equal(o Integer) bool {
	if r.IsNative() != o.IsNative() {
		return false
	} else if r.IsNative() {
		return r.native == o.native
	}
	return r.big.String() == o.big.String()
}

func (r Integer) String() string {
	if r.IsNative() {
		return fmtInt(r.native, 10)
	}
	return r.big.String()
}
