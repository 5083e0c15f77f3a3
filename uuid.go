package uuid25

import "github.com/google/uuid"

// FromUUID converts a uuid.UUID into its Uuid25 representation via the
// 128-bit integer value.
func FromUUID(id uuid.UUID) Uuid25 {
	return Uuid25(uint128FromBytes(id[:]).encodeBase36())
}

// UUID converts the value back into a uuid.UUID.
func (u Uuid25) UUID() uuid.UUID {
	return uuid.UUID(decodeBase36(string(u)).bytes())
}

// NewV4 generates a random (version 4) UUID and returns it in the Uuid25
// representation. Generation is delegated entirely to github.com/google/uuid.
func NewV4() Uuid25 {
	return FromUUID(uuid.New())
}
