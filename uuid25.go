package uuid25

import (
	"fmt"
	"strings"
)

// Uuid25 is the 25-digit base-36 representation of a UUID. The underlying
// string is always lowercase, exactly 25 characters over [0-9a-z], and never
// exceeds 2^128 - 1 as a base-36 integer. Because the encoding is fixed-width
// in a single radix, the native ==, < and map-key semantics of the string
// coincide with numeric equality, numeric ordering and value hashing.
type Uuid25 string

// maxUuid25 is 2^128 - 1 in base 36. Fixed-width same-radix strings sort
// identically to their numeric values, so the range check on parse is a plain
// string comparison against this constant.
const maxUuid25 = "f5lxx1zz5pnorynqglhzmsp33"

const urnPrefix = "urn:uuid:"

// Parse parses a UUID from its string representation.
// It accepts the following formats, selected by input length alone:
//   - 25 characters: the base-36 Uuid25 format
//   - 32 characters: hexadecimal without hyphens
//   - 36 characters: 8-4-4-4-12 hyphenated
//   - 38 characters: hyphenated with surrounding braces
//   - 45 characters: RFC 4122 URN (urn:uuid: prefix)
//
// A length match never falls through to another format: a 25-character input
// containing a hyphen fails rather than being retried as hyphenated. Any
// other length returns ErrParse immediately.
func Parse(s string) (Uuid25, error) {
	switch len(s) {
	case 25:
		return ParseUuid25(s)
	case 32:
		return ParseHex(s)
	case 36:
		return ParseHyphenated(s)
	case 38:
		return ParseBraced(s)
	case 45:
		return ParseURN(s)
	}
	return "", ErrParse
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) Uuid25 {
	u, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuid25: Parse(%q): %v", s, err))
	}
	return u
}

// ParseUuid25 parses the 25-digit base-36 Uuid25 format:
// 3ud3gtvgolimgu9lah6aie99o. Input is matched case-insensitively and
// normalized to lowercase; values above 2^128 - 1 are rejected.
func ParseUuid25(s string) (Uuid25, error) {
	if len(s) != 25 {
		return "", ErrParse
	}
	var buf [25]byte
	for i := 0; i < 25; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		default:
			return "", ErrParse
		}
		buf[i] = c
	}
	v := string(buf[:])
	if v > maxUuid25 {
		return "", ErrParse
	}
	return Uuid25(v), nil
}

// ParseHex parses the 32-digit hexadecimal format without hyphens:
// 40eb9860cf3e45e2a90eb82236ac806c.
func ParseHex(s string) (Uuid25, error) {
	if len(s) != 32 {
		return "", ErrParse
	}
	var n uint128
	for i := 0; i < 32; i++ {
		d, ok := hexVal(s[i])
		if !ok {
			return "", ErrParse
		}
		n = n.shiftInHex(d)
	}
	return Uuid25(n.encodeBase36()), nil
}

// ParseHyphenated parses the 8-4-4-4-12 hyphenated format:
// 40eb9860-cf3e-45e2-a90e-b82236ac806c.
func ParseHyphenated(s string) (Uuid25, error) {
	n, ok := scanHyphenated(s)
	if !ok {
		return "", ErrParse
	}
	return Uuid25(n.encodeBase36()), nil
}

// ParseBraced parses the hyphenated format with surrounding braces:
// {40eb9860-cf3e-45e2-a90e-b82236ac806c}.
func ParseBraced(s string) (Uuid25, error) {
	if len(s) != 38 || s[0] != '{' || s[37] != '}' {
		return "", ErrParse
	}
	n, ok := scanHyphenated(s[1:37])
	if !ok {
		return "", ErrParse
	}
	return Uuid25(n.encodeBase36()), nil
}

// ParseURN parses the RFC 4122 URN format:
// urn:uuid:40eb9860-cf3e-45e2-a90e-b82236ac806c.
// The urn:uuid: prefix is matched case-insensitively.
func ParseURN(s string) (Uuid25, error) {
	if len(s) != 45 || !strings.EqualFold(s[:len(urnPrefix)], urnPrefix) {
		return "", ErrParse
	}
	n, ok := scanHyphenated(s[len(urnPrefix):])
	if !ok {
		return "", ErrParse
	}
	return Uuid25(n.encodeBase36()), nil
}

// scanHyphenated validates the exact 8-4-4-4-12 layout, with hyphens at
// positions 8, 13, 18 and 23 and hex digits everywhere else, and accumulates
// the 32 digits into a 128-bit integer, most significant first.
func scanHyphenated(s string) (uint128, bool) {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uint128{}, false
	}
	var n uint128
	for i := 0; i < 36; i++ {
		if i == 8 || i == 13 || i == 18 || i == 23 {
			continue
		}
		d, ok := hexVal(s[i])
		if !ok {
			return uint128{}, false
		}
		n = n.shiftInHex(d)
	}
	return n, true
}

// FromBytes creates a Uuid25 from a 16-byte UUID binary representation,
// interpreted as a big-endian 128-bit integer.
func FromBytes(b []byte) (Uuid25, error) {
	if len(b) != 16 {
		return "", ErrInvalidLength
	}
	return Uuid25(uint128FromBytes(b).encodeBase36()), nil
}

// MustFromBytes is like FromBytes but panics on error.
func MustFromBytes(b []byte) Uuid25 {
	u, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return u
}

// Bytes returns the 16-byte big-endian binary representation of the UUID.
func (u Uuid25) Bytes() []byte {
	b := decodeBase36(string(u)).bytes()
	return b[:]
}

// String returns the canonical 25-digit base-36 representation.
func (u Uuid25) String() string {
	return string(u)
}

// Equal returns true if u and other represent the same UUID. Raw strings in
// canonical form compare the same way after a type conversion; operands are
// not re-validated or lowercased.
func (u Uuid25) Equal(other Uuid25) bool {
	return u == other
}

// Compare returns an integer comparing two values. The result is 0 if
// u == other, -1 if u < other, and +1 if u > other. Lexicographic order of
// the canonical strings is identical to numeric order of the underlying
// 128-bit integers.
func (u Uuid25) Compare(other Uuid25) int {
	return strings.Compare(string(u), string(other))
}
