package uuid25

import (
	"database/sql/driver"
	"fmt"
)

// ToHex formats the UUID in the 32-digit hexadecimal format without hyphens:
// 40eb9860cf3e45e2a90eb82236ac806c.
func (u Uuid25) ToHex() string {
	return decodeBase36(string(u)).encodeHex()
}

// ToHyphenated formats the UUID in the 8-4-4-4-12 hyphenated format:
// 40eb9860-cf3e-45e2-a90e-b82236ac806c.
func (u Uuid25) ToHyphenated() string {
	return decodeBase36(string(u)).encodeHyphenated()
}

// ToBraced formats the UUID in the hyphenated format with surrounding braces:
// {40eb9860-cf3e-45e2-a90e-b82236ac806c}.
func (u Uuid25) ToBraced() string {
	return "{" + u.ToHyphenated() + "}"
}

// ToURN formats the UUID in the RFC 4122 URN format:
// urn:uuid:40eb9860-cf3e-45e2-a90e-b82236ac806c.
func (u Uuid25) ToURN() string {
	return urnPrefix + u.ToHyphenated()
}

// MarshalText implements the encoding.TextMarshaler interface. It emits the
// canonical 25-digit form, which also makes the type JSON-encodable.
func (u Uuid25) MarshalText() ([]byte, error) {
	return []byte(u), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// any of the five supported textual formats.
func (u *Uuid25) UnmarshalText(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (u Uuid25) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (u *Uuid25) UnmarshalBinary(data []byte) error {
	v, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// It accepts any supported textual format, a raw 16-byte value, or nil.
func (u *Uuid25) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		v, err := Parse(src)
		if err != nil {
			return err
		}
		*u = v
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		if len(src) == 16 {
			v, err := FromBytes(src)
			if err != nil {
				return err
			}
			*u = v
			return nil
		}
		v, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = v
		return nil
	default:
		return fmt.Errorf("uuid25: cannot scan type %T into Uuid25", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility.
func (u Uuid25) Value() (driver.Value, error) {
	return u.String(), nil
}
