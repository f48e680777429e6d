// Package sasl provides the standard string preparation profiles used by
// SASL mechanisms: RFC 4013 SASLprep and the RFC 5802 SCRAM username
// variant with login-character escaping, plus the SCRAM credential
// derivation that consumes prepared passwords.
package sasl

import (
	"errors"

	"github.com/georgepadayatti/stringprep/bytestring"
	"github.com/georgepadayatti/stringprep/prep"
)

// Common errors
var (
	// ErrEmpty reports that preparation produced an empty string where
	// the mechanism requires a non-empty one.
	ErrEmpty = errors.New("sasl: prepared string is empty")
)

// saslprepForbid enables every prohibition class of RFC 4013 section 2.3.
const saslprepForbid = prep.ForbidNonASCIISpaces |
	prep.ForbidASCIIControl |
	prep.ForbidNonASCIIControl |
	prep.ForbidPrivateUse |
	prep.ForbidNonCharacter |
	prep.ForbidSurrogate |
	prep.ForbidInappropriateForPlainText |
	prep.ForbidInappropriateForCanonRep |
	prep.ForbidChangeDisplayAndDeprecated |
	prep.ForbidTagging

const (
	// ProfileQuery is RFC 4013 SASLprep for query strings: unassigned
	// code points are allowed.
	ProfileQuery = prep.MapToNothing |
		prep.MapToSpace |
		prep.NormalizeKC |
		saslprepForbid

	// ProfileStored is RFC 4013 SASLprep for stored strings: unassigned
	// code points are prohibited.
	ProfileStored = ProfileQuery | prep.ForbidUnassigned

	// ProfileSCRAMUsername is ProfileStored plus the RFC 5802 section
	// 5.1 escaping of "," and "=" in usernames.
	ProfileSCRAMUsername = ProfileStored | prep.MapScramLoginChars
)

// Prepare runs input through the given profile and returns the prepared
// UTF-8 bytes.
func Prepare(input string, profile prep.Profile) ([]byte, error) {
	b := bytestring.NewBuilder(len(input))
	if err := prep.Encode(input, b, profile); err != nil {
		return nil, err
	}
	return b.ToArray(), nil
}

// PrepareString is Prepare returning a string.
func PrepareString(input string, profile prep.Profile) (string, error) {
	out, err := Prepare(input, profile)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// PrepareStored prepares a stored string (a password or other credential
// material) per RFC 4013. The result must be non-empty.
func PrepareStored(input string) ([]byte, error) {
	return prepareNonEmpty(input, ProfileStored)
}

// PrepareQuery prepares a query string (a comparison value) per
// RFC 4013. The result must be non-empty.
func PrepareQuery(input string) ([]byte, error) {
	return prepareNonEmpty(input, ProfileQuery)
}

// PrepareUsername prepares a SCRAM authentication identity per RFC 5802:
// SASLprep for stored strings with "," and "=" escaped to "=2C" and
// "=3D". The result must be non-empty.
func PrepareUsername(input string) ([]byte, error) {
	return prepareNonEmpty(input, ProfileSCRAMUsername)
}

func prepareNonEmpty(input string, profile prep.Profile) ([]byte, error) {
	out, err := Prepare(input, profile)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}
