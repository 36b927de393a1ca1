package ttcnplus

/*
var.go contains global variables and constants used throughout this package.
*/

/*
Wire buffer geometry. Every [TextBuf] reserves bufHead bytes ahead of
the payload for a retroactively written length prefix.
*/
const (
	bufHead = 24
	bufSize = 1000
)

/*
maxNativePullSize is the longest varint that always fits a native
int64: 6 + 8*7 = 62 payload bits.
*/
const maxNativePullSize = 9

/*
BER universal tags of the family types that have a primitive BER
representation.
*/
const (
	tagBoolean     = 1
	tagBitString   = 3
	tagOctetString = 4
)

/*
String restriction kinds, as passed to [Template.CheckRestriction].
*/
const (
	RestrictionNone    Restriction = iota // no restriction
	RestrictionOmit                       // omit
	RestrictionValue                      // value
	RestrictionPresent                    // present
)

/*
Restriction describes a template restriction (omit, value or present).
*/
type Restriction uint8

func (r Restriction) String() (s string) {
	switch r {
	case RestrictionOmit:
		s = `omit`
	case RestrictionValue:
		s = `value`
	case RestrictionPresent:
		s = `present`
	default:
		s = `none`
	}
	return
}
