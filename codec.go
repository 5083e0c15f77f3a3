package uuid25

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

const base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// uint128 is a 128-bit unsigned integer held as two big-endian halves. It is
// the canonical intermediate representation: every conversion between two
// UUID formats passes through it.
type uint128 struct {
	hi, lo uint64
}

// uint128FromBytes interprets b as a big-endian 128-bit integer.
// b must be exactly 16 bytes.
func uint128FromBytes(b []byte) uint128 {
	return uint128{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// bytes returns the big-endian 16-byte representation of n.
func (n uint128) bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], n.hi)
	binary.BigEndian.PutUint64(b[8:16], n.lo)
	return b
}

// divMod36 returns n/36 and n%36. The remainder of the high-half division is
// carried into the low half, so the low quotient never overflows.
func (n uint128) divMod36() (uint128, uint64) {
	qhi, r := n.hi/36, n.hi%36
	qlo, rem := bits.Div64(r, n.lo, 36)
	return uint128{hi: qhi, lo: qlo}, rem
}

// mulAdd36 returns n*36 + d. The result must fit in 128 bits, which holds
// for every in-range 25-digit base-36 string.
func (n uint128) mulAdd36(d uint64) uint128 {
	hi, lo := bits.Mul64(n.lo, 36)
	hi += n.hi * 36
	lo, carry := bits.Add64(lo, d, 0)
	return uint128{hi: hi + carry, lo: lo}
}

// shiftInHex shifts n left by four bits and ors in a hex digit.
func (n uint128) shiftInHex(d uint64) uint128 {
	return uint128{
		hi: n.hi<<4 | n.lo>>60,
		lo: n.lo<<4 | d,
	}
}

// encodeBase36 formats n as exactly 25 lowercase base-36 digits, zero-padded
// on the left, by repeated division with the most significant digit first.
func (n uint128) encodeBase36() string {
	var buf [25]byte
	for i := 24; i >= 0; i-- {
		var rem uint64
		n, rem = n.divMod36()
		buf[i] = base36Digits[rem]
	}
	return string(buf[:])
}

// decodeBase36 is the inverse of encodeBase36. It expects a canonical
// lowercase 25-digit base-36 string already validated to be within range.
func decodeBase36(s string) uint128 {
	var n uint128
	for i := 0; i < len(s); i++ {
		n = n.mulAdd36(base36Val(s[i]))
	}
	return n
}

// encodeHex formats n as 32 zero-padded lowercase hexadecimal digits.
func (n uint128) encodeHex() string {
	b := n.bytes()
	return hex.EncodeToString(b[:])
}

// encodeHyphenated formats n in the 8-4-4-4-12 hyphenated layout: five hex
// groups of bit widths 32/16/16/16/48, each independently zero-padded.
func (n uint128) encodeHyphenated() string {
	b := n.bytes()
	var buf [36]byte
	hex.Encode(buf[0:8], b[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], b[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], b[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], b[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:36], b[10:16])
	return string(buf[:])
}

// base36Val maps a byte to its base-36 digit value. The byte must already be
// validated against [0-9a-z].
func base36Val(c byte) uint64 {
	if c <= '9' {
		return uint64(c - '0')
	}
	return uint64(c-'a') + 10
}

// hexVal maps a hex character to its value, case-insensitively. ok is false
// for anything outside [0-9a-fA-F].
func hexVal(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}
