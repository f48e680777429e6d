package prep

import (
	"golang.org/x/text/unicode/norm"
)

// Sink is the narrow output capability the codec writes through. The
// bytestring package provides the standard growable implementation;
// callers may substitute pre-sized or fixed-capacity buffers.
type Sink interface {
	// AppendByte appends a single byte.
	AppendByte(c byte)
	// AppendUTF8Raw appends the UTF-8 encoding of a scalar without
	// validation.
	AppendUTF8Raw(c rune)
}

// Encode prepares input under the given profile and appends the UTF-8
// bytes of the result to out.
//
// The pipeline is the RFC 3454 one: character mapping, NFKC
// normalization when the profile requests it, prohibited-character
// checks, the section 6 bidirectional checks, then UTF-8 serialization.
// On error nothing further is written, but out may already hold a
// partial prefix; callers must discard it.
func Encode(input string, out Sink, profile Profile) error {
	scalars, err := decodeString(input)
	if err != nil {
		return err
	}
	return encode(scalars, out, profile)
}

// EncodeUTF16 is Encode over a sequence of 16-bit code units. Surrogate
// pairs combine into supplementary scalars; lone or mis-ordered
// surrogates fail with InvalidSurrogatePair regardless of profile.
func EncodeUTF16(units []uint16, out Sink, profile Profile) error {
	scalars, err := decodeUTF16(units)
	if err != nil {
		return err
	}
	return encode(scalars, out, profile)
}

// EncodeRunes is Encode over an already-composed sequence of scalar
// values; the decoding stage is a no-op. Surrogate scalars are passed
// through to the prohibition checks (table C.5).
func EncodeRunes(scalars []rune, out Sink, profile Profile) error {
	return encode(scalars, out, profile)
}

func encode(scalars []rune, out Sink, profile Profile) error {
	seq := applyMappings(scalars, profile)
	if profile.has(NormalizeKC) {
		seq = normalizeKC(seq)
	}
	if err := checkProhibited(seq, profile); err != nil {
		return err
	}
	if err := checkBidi(seq); err != nil {
		return err
	}
	for _, c := range seq {
		out.AppendUTF8Raw(c)
	}
	return nil
}

// applyMappings runs the per-scalar mapping stage. The B.2 case fold
// fires first and subsumes the rest; deletion, space mapping and SCRAM
// escaping are tried in that order and at most one of them fires for a
// given scalar. U+200B is in both B.1 and C.1.2, so it is deleted when
// MapToNothing is set and mapped to a space otherwise.
func applyMappings(in []rune, profile Profile) []rune {
	out := make([]rune, 0, len(in))
	for _, c := range in {
		if profile.has(NormalizeKC) {
			if repl := foldLookup(c); repl != nil {
				out = append(out, repl...)
				continue
			}
		}
		switch {
		case profile.has(MapToNothing) && tableB1.contains(c):
		case profile.has(MapToSpace) && tableC12.contains(c):
			out = append(out, ' ')
		case profile.has(MapScramLoginChars) && c == ',':
			out = append(out, '=', '2', 'C')
		case profile.has(MapScramLoginChars) && c == '=':
			out = append(out, '=', '3', 'D')
		default:
			out = append(out, c)
		}
	}
	return out
}

// normalizeKC applies Unicode normalization form KC. The B.2 fold has
// already run, so the lower-case target is fixed before the normalizer
// sees the text. Surrogate scalars cannot round-trip through a Go
// string; the sequence is normalized in maximal surrogate-free segments
// with any surrogate scalars carried over verbatim for the prohibition
// checks to see.
func normalizeKC(in []rune) []rune {
	start := 0
	var out []rune
	for i, c := range in {
		if !isSurrogate(c) {
			continue
		}
		if out == nil {
			out = make([]rune, 0, len(in))
		}
		out = append(out, []rune(norm.NFKC.String(string(in[start:i])))...)
		out = append(out, c)
		start = i + 1
	}
	if out == nil {
		return []rune(norm.NFKC.String(string(in)))
	}
	return append(out, []rune(norm.NFKC.String(string(in[start:])))...)
}

// prohibitions pairs each forbid flag with its class table, in the scan
// order used by checkProhibited.
var prohibitions = []struct {
	flag  Profile
	table rangeTable
	class string
}{
	{ForbidNonASCIISpaces, tableC12, classC12},
	{ForbidASCIIControl, tableC21, classC21},
	{ForbidNonASCIIControl, tableC22, classC22},
	{ForbidPrivateUse, tableC3, classC3},
	{ForbidNonCharacter, tableC4, classC4},
	{ForbidSurrogate, tableC5, classC5},
	{ForbidInappropriateForPlainText, tableC6, classC6},
	{ForbidInappropriateForCanonRep, tableC7, classC7},
	{ForbidChangeDisplayAndDeprecated, tableC8, classC8},
	{ForbidTagging, tableC9, classC9},
}

// checkProhibited rejects the first scalar matching any enabled forbid
// table. ForbidUnassigned tests membership in A.1, the set of code
// points unassigned in Unicode 3.2.
func checkProhibited(seq []rune, profile Profile) error {
	for _, c := range seq {
		for _, p := range prohibitions {
			if profile.has(p.flag) && p.table.contains(c) {
				return prohibitedError(c, p.class)
			}
		}
		if profile.has(ForbidUnassigned) && tableA1.contains(c) {
			return prohibitedError(c, classA1)
		}
	}
	return nil
}
