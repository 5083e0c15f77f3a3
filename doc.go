// Package uuid25 implements Uuid25, an alternative UUID representation that
// shortens a UUID string to just 25 digits using the case-insensitive base-36
// encoding. The package provides lossless, bit-exact conversions between the
// Uuid25 form and the conventional UUID representations:
//   - 25-digit base-36 Uuid25 format: 3ud3gtvgolimgu9lah6aie99o
//   - 32-digit hexadecimal format: 40eb9860cf3e45e2a90eb82236ac806c
//   - 8-4-4-4-12 hyphenated format: 40eb9860-cf3e-45e2-a90e-b82236ac806c
//   - Hyphenated format with braces: {40eb9860-cf3e-45e2-a90e-b82236ac806c}
//   - RFC 4122 URN format: urn:uuid:40eb9860-cf3e-45e2-a90e-b82236ac806c
//
// Basic Usage:
//
//	// Parse any supported format; the result is the canonical Uuid25 form
//	a, err := uuid25.Parse("8da942a4-1fbe-4ca6-852c-95c473229c7d")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(a)                 // 8dx554y5rzerz1syhqsvsdw8t
//	fmt.Println(a.ToHyphenated())  // 8da942a4-1fbe-4ca6-852c-95c473229c7d
//
//	// Convert from/to the 16-byte binary representation
//	b, err := uuid25.FromBytes(raw)
//
//	// Bridge to github.com/google/uuid
//	c := uuid25.NewV4()
//	id := c.UUID()
//
// Parsing dispatches on input length alone (25, 32, 36, 38 or 45 characters)
// and each format grammar is matched strictly: no surrounding whitespace, no
// misplaced separators, no partial recovery. Input casing is accepted
// case-insensitively and always normalized to lowercase.
//
// Thread Safety:
//
// A Uuid25 is an immutable value and every operation is a pure function of
// its inputs, so all operations are safe for concurrent use without
// synchronization.
//
// Construction:
//
// Create values through Parse, the format-pinned parsers, FromBytes, FromUUID
// or NewV4. Converting an arbitrary string directly to the Uuid25 type
// bypasses validation and is strongly discouraged: every value produced by
// this package holds a valid, in-range, lowercase 25-digit string, and the
// comparison and formatting methods rely on that invariant.
package uuid25
