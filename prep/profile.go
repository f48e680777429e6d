// Package prep implements RFC 3454 string preparation (stringprep) with
// the auxiliary mappings required by SASL mechanisms, notably the RFC 5802
// SCRAM login-character escaping.
//
// The pipeline is profile-driven: a Profile bitmask selects which mapping
// and prohibition rules apply. Encode walks the input, applies character
// mappings (deletions, space normalization, case folding), normalizes to
// NFKC when requested, checks prohibited-character tables and RFC 3454
// section 6 bidirectional requirements, and writes the result as UTF-8 to
// the caller's sink. Any violation aborts with an ArgumentError; partial
// sink output must be discarded by the caller.
package prep

// Profile is a bitmask selecting the mapping and prohibition behavior of
// Encode. Flags combine with bitwise OR. Mapping flags and forbid flags
// are independent; callers fix their own combinations (see the sasl
// package for the standard ones).
type Profile uint64

const (
	// MapToNothing deletes the characters of RFC 3454 table B.1.
	MapToNothing Profile = 1 << iota
	// MapToSpace maps the non-ASCII spaces of table C.1.2 to U+0020.
	MapToSpace
	// MapScramLoginChars replaces "," with "=2C" and "=" with "=3D"
	// (RFC 5802 section 5.1).
	MapScramLoginChars
	// NormalizeKC applies table B.2 case folding followed by Unicode
	// normalization form KC.
	NormalizeKC
	// ForbidNonASCIISpaces rejects table C.1.2.
	ForbidNonASCIISpaces
	// ForbidASCIIControl rejects table C.2.1 (U+0000..U+001F, U+007F).
	ForbidASCIIControl
	// ForbidNonASCIIControl rejects table C.2.2.
	ForbidNonASCIIControl
	// ForbidPrivateUse rejects table C.3.
	ForbidPrivateUse
	// ForbidNonCharacter rejects table C.4.
	ForbidNonCharacter
	// ForbidSurrogate rejects table C.5 (U+D800..U+DFFF as scalars).
	ForbidSurrogate
	// ForbidInappropriateForPlainText rejects table C.6.
	ForbidInappropriateForPlainText
	// ForbidInappropriateForCanonRep rejects table C.7.
	ForbidInappropriateForCanonRep
	// ForbidChangeDisplayAndDeprecated rejects table C.8.
	ForbidChangeDisplayAndDeprecated
	// ForbidTagging rejects table C.9.
	ForbidTagging
	// ForbidUnassigned rejects code points not assigned in Unicode 3.2
	// (the members of RFC 3454 table A.1).
	ForbidUnassigned
)

// has reports whether every flag in mask is set.
func (p Profile) has(mask Profile) bool {
	return p&mask == mask
}
