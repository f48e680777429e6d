package prep

import (
	"bytes"
	"errors"
	"testing"

	"github.com/georgepadayatti/stringprep/bytestring"
)

// encodeBytes runs Encode into a fresh builder and returns the output.
func encodeBytes(t *testing.T, input string, profile Profile) ([]byte, error) {
	t.Helper()
	b := bytestring.NewBuilder(len(input))
	err := Encode(input, b, profile)
	return b.ToArray(), err
}

func wantBytes(t *testing.T, input string, profile Profile, want []byte) {
	t.Helper()
	got, err := encodeBytes(t, input, profile)
	if err != nil {
		t.Fatalf("Encode(%q) failed: %v", input, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode(%q) = % X, want % X", input, got, want)
	}
}

func wantKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgumentError, got %T: %v", err, err)
	}
	if argErr.Kind != kind {
		t.Errorf("error kind = %v, want %v", argErr.Kind, kind)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("error does not unwrap to ErrInvalidArgument")
	}
}

func TestEncodeUTF8Forms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"Empty", "", []byte{}},
		{"ASCII", "abc", []byte{'a', 'b', 'c'}},
		{"OneByte", "a", []byte{0x61}},
		{"TwoBytes", "\u0438", []byte{0xD0, 0xB8}},
		{"ThreeBytes", "\u4F60", []byte{0xE4, 0xBD, 0xA0}},
		{"FourBytes", "\U0001F0A1", []byte{0xF0, 0x9F, 0x82, 0xA1}},
		{"SurroundedSupplementary", "a\U0001F0A1b", []byte{0x61, 0xF0, 0x9F, 0x82, 0xA1, 0x62}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantBytes(t, tt.input, 0, tt.want)
		})
	}
}

func TestEncodeASCIIIdentity(t *testing.T) {
	// Every printable ASCII scalar under the empty profile encodes to
	// itself.
	for c := rune(0x20); c <= 0x7E; c++ {
		got, err := encodeBytes(t, string(c), 0)
		if err != nil {
			t.Fatalf("Encode(%#U) failed: %v", c, err)
		}
		if len(got) != 1 || got[0] != byte(c) {
			t.Fatalf("Encode(%#U) = % X, want %02X", c, got, byte(c))
		}
	}
}

func TestEncodeEmptyInputAnyProfile(t *testing.T) {
	profiles := []Profile{
		0,
		MapToNothing | MapToSpace | MapScramLoginChars,
		NormalizeKC,
		ForbidASCIIControl | ForbidUnassigned | ForbidSurrogate,
	}
	for _, p := range profiles {
		got, err := encodeBytes(t, "", p)
		if err != nil {
			t.Fatalf("Encode(\"\", %b) failed: %v", uint64(p), err)
		}
		if len(got) != 0 {
			t.Errorf("Encode(\"\", %b) = % X, want empty", uint64(p), got)
		}
	}
}

func TestEncodeUTF16Surrogates(t *testing.T) {
	t.Run("PairedSupplementary", func(t *testing.T) {
		b := bytestring.NewBuilder(8)
		if err := EncodeUTF16([]uint16{'a', 0xD83C, 0xDCA1, 'b'}, b, 0); err != nil {
			t.Fatalf("EncodeUTF16 failed: %v", err)
		}
		want := []byte{0x61, 0xF0, 0x9F, 0x82, 0xA1, 0x62}
		if !bytes.Equal(b.ToArray(), want) {
			t.Errorf("EncodeUTF16 = % X, want % X", b.ToArray(), want)
		}
	})

	invalid := []struct {
		name  string
		units []uint16
	}{
		{"HighWithoutLow", []uint16{0xD83C}},
		{"LowWithoutHigh", []uint16{0xDC00}},
		{"TwoHighSurrogates", []uint16{0xD83C, 0xD83C}},
		{"WrongOrder", []uint16{0xDCA1, 0xD83C}},
		{"HighThenBMP", []uint16{0xD83C, 'a'}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			b := bytestring.NewBuilder(8)
			err := EncodeUTF16(tt.units, b, 0)
			wantKind(t, err, InvalidSurrogatePair)
		})
	}
}

func TestEncodeRawSurrogateFixtures(t *testing.T) {
	raw := func(scalars ...rune) string {
		b := bytestring.NewBuilder(8)
		for _, c := range scalars {
			b.AppendUTF8Raw(c)
		}
		return b.String()
	}

	t.Run("RawPairCombines", func(t *testing.T) {
		// A raw high/low pair decodes like UTF-16 code-unit input.
		wantBytes(t, raw(0xD83C, 0xDCA1), 0, []byte{0xF0, 0x9F, 0x82, 0xA1})
	})

	t.Run("LoneRawSurrogatesFail", func(t *testing.T) {
		for _, c := range []rune{0xD800, 0xD83C, 0xDBFF, 0xDC00, 0xDFFF} {
			_, err := encodeBytes(t, raw(c), 0)
			wantKind(t, err, InvalidSurrogatePair)
		}
	})

	t.Run("HighThenBMPFails", func(t *testing.T) {
		_, err := encodeBytes(t, raw(0xD83C)+"a", 0)
		wantKind(t, err, InvalidSurrogatePair)
	})
}

func TestMappingToNothing(t *testing.T) {
	input := "a\u00AD\u1806\u200B\u2060\uFEFF\u034F\u180B\u180C\u180D\u200C\u200D" +
		"\uFE00\uFE01\uFE02\uFE03\uFE04\uFE05\uFE06\uFE07" +
		"\uFE08\uFE09\uFE0A\uFE0B\uFE0C\uFE0D\uFE0E\uFE0Fa"
	wantBytes(t, input, MapToNothing, []byte{'a', 'a'})
}

func TestMappingToSpace(t *testing.T) {
	input := "a\u00A0\u1680\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007" +
		"\u2008\u2009\u200A\u200B\u202F\u205F\u3000a"
	want := make([]byte, 0, 19)
	want = append(want, 'a')
	for i := 0; i < 17; i++ {
		want = append(want, ' ')
	}
	want = append(want, 'a')
	wantBytes(t, input, MapToSpace, want)
}

func TestMappingScramLoginChars(t *testing.T) {
	wantBytes(t, "a,b=c", MapScramLoginChars,
		[]byte{'a', '=', '2', 'C', 'b', '=', '3', 'D', 'c'})
}

func TestMappingsAreIndependent(t *testing.T) {
	// Without the mapping flags, the same characters pass through
	// untouched (and unprohibited under the empty profile).
	wantBytes(t, "a\u00ADa", 0, []byte{0x61, 0xC2, 0xAD, 0x61})
	wantBytes(t, "a,b", 0, []byte{'a', ',', 'b'})
}

func TestNormalizeKC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"UppercaseASCII", "AbC", []byte("abc")},
		{"SharpS", "\u00DF", []byte("ss")},
		{"RomanNumeral", "\u2168", []byte("ix")},
		{"AngstromFoldsBeforeNFKC", "\u212B", []byte{0xC3, 0xA5}},
		{"FullwidthCapital", "\uFF21", []byte("a")},
		{"CombiningComposes", "a\u0301", []byte{0xC3, 0xA1}},
		{"DottedCapitalI", "\u0130", []byte{0x69, 0xCC, 0x87}},
		{"GreekFinalSigma", "\u03A3\u03C2", []byte{0xCF, 0x83, 0xCF, 0x83}},
		{"CyrillicCapital", "\u0418", []byte{0xD0, 0xB8}},
		{"IotaSubscript", "\u1FBC", []byte{0xCE, 0xB1, 0xCE, 0xB9}},
		{"AlreadyFolded", "abc", []byte("abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantBytes(t, tt.input, NormalizeKC, tt.want)
		})
	}
}

func TestProhibitedClasses(t *testing.T) {
	tests := []struct {
		name  string
		flag  Profile
		c     rune
		class string
	}{
		{"NonASCIISpace", ForbidNonASCIISpaces, 0x00A0, "C.1.2"},
		{"IdeographicSpace", ForbidNonASCIISpaces, 0x3000, "C.1.2"},
		{"Null", ForbidASCIIControl, 0x0000, "C.2.1"},
		{"UnitSeparator", ForbidASCIIControl, 0x001F, "C.2.1"},
		{"Delete", ForbidASCIIControl, 0x007F, "C.2.1"},
		{"C1Control", ForbidNonASCIIControl, 0x0080, "C.2.2"},
		{"EndOfAyah", ForbidNonASCIIControl, 0x06DD, "C.2.2"},
		{"MusicalFormatting", ForbidNonASCIIControl, 0x1D173, "C.2.2"},
		{"PrivateUseBMP", ForbidPrivateUse, 0xE000, "C.3"},
		{"PrivateUsePlane16", ForbidPrivateUse, 0x10FFFD, "C.3"},
		{"NonCharFDD0", ForbidNonCharacter, 0xFDD0, "C.4"},
		{"NonCharFFFE", ForbidNonCharacter, 0xFFFE, "C.4"},
		{"NonCharPlane16", ForbidNonCharacter, 0x10FFFE, "C.4"},
		{"HighSurrogate", ForbidSurrogate, 0xD800, "C.5"},
		{"LowSurrogate", ForbidSurrogate, 0xDFFF, "C.5"},
		{"ReplacementChar", ForbidInappropriateForPlainText, 0xFFFD, "C.6"},
		{"IdeographicDesc", ForbidInappropriateForCanonRep, 0x2FF0, "C.7"},
		{"LTRMark", ForbidChangeDisplayAndDeprecated, 0x200E, "C.8"},
		{"ToneMark", ForbidChangeDisplayAndDeprecated, 0x0340, "C.8"},
		{"LanguageTag", ForbidTagging, 0xE0001, "C.9"},
		{"CancelTag", ForbidTagging, 0xE007F, "C.9"},
		{"Unassigned0221", ForbidUnassigned, 0x0221, "A.1"},
		{"UnassignedPlayingCard", ForbidUnassigned, 0x1F0A1, "A.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bytestring.NewBuilder(4)
			err := EncodeRunes([]rune{tt.c}, b, tt.flag)
			wantKind(t, err, ProhibitedCharacter)
			var argErr *ArgumentError
			errors.As(err, &argErr)
			if argErr.Rune != tt.c {
				t.Errorf("offending rune = %#U, want %#U", argErr.Rune, tt.c)
			}
			if argErr.Class != tt.class {
				t.Errorf("class = %s, want %s", argErr.Class, tt.class)
			}

			// The same scalar passes when its flag is off.
			b.Reset()
			if err := EncodeRunes([]rune{tt.c}, b, 0); err != nil {
				t.Errorf("EncodeRunes(%#U, 0) failed: %v", tt.c, err)
			}
		})
	}
}

func TestForbidSurrogateWholeRange(t *testing.T) {
	for c := rune(0xD800); c <= 0xDFFF; c++ {
		b := bytestring.NewBuilder(4)
		err := EncodeRunes([]rune{c}, b, ForbidSurrogate)
		var argErr *ArgumentError
		if !errors.As(err, &argErr) || argErr.Kind != ProhibitedCharacter {
			t.Fatalf("EncodeRunes(%#U) = %v, want prohibited", c, err)
		}
	}
}

func TestForbidUnassignedAcceptsAssigned(t *testing.T) {
	for _, input := range []string{"a", "\u0438", "\u4F60"} {
		if _, err := encodeBytes(t, input, ForbidUnassigned); err != nil {
			t.Errorf("Encode(%q, ForbidUnassigned) failed: %v", input, err)
		}
	}
}

func TestBidi(t *testing.T) {
	pass := []struct {
		name  string
		input string
		want  []byte
	}{
		{"SingleRandAL", "\u05BE", []byte{0xD6, 0xBE}},
		{"RandALWithNeutrals", "\u05BE - \uFBA8",
			[]byte{0xD6, 0xBE, 0x20, 0x2D, 0x20, 0xEF, 0xAE, 0xA8}},
		{"RandALNeutralRandAL", "\u06271\u0628",
			[]byte{0xD8, 0xA7, 0x31, 0xD8, 0xA8}},
		{"PureLCat", "abc", []byte("abc")},
		{"NeutralsOnly", "123 456", []byte("123 456")},
	}
	for _, tt := range pass {
		t.Run(tt.name, func(t *testing.T) {
			wantBytes(t, tt.input, 0, tt.want)
		})
	}

	fail := []struct {
		name  string
		input string
	}{
		{"LCatInsideRandAL", "\u05BE\uFBA8a\u05BE\uFBA8"},
		{"MissingTrailingRandAL", "\u06271"},
		{"MissingLeadingRandAL", "1\u0627"},
		{"NeutralBothEnds", "1\u06272"},
	}
	for _, tt := range fail {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encodeBytes(t, tt.input, 0)
			wantKind(t, err, BidiViolation)
		})
	}
}

func TestIdempotence(t *testing.T) {
	// After one application of a mapping-only profile the output is a
	// fixed point: re-encoding it yields the same bytes.
	profile := MapToNothing | MapToSpace
	first, err := encodeBytes(t, "a\u00A0\u00ADb", profile)
	if err != nil {
		t.Fatalf("first Encode failed: %v", err)
	}
	second, err := encodeBytes(t, string(first), profile)
	if err != nil {
		t.Fatalf("second Encode failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("not idempotent: % X then % X", first, second)
	}
}

func TestNothingWrittenOnFailure(t *testing.T) {
	// The contract allows a partial prefix in the sink after a failure;
	// this implementation checks before emitting, so the sink stays
	// empty.
	b := bytestring.NewBuilder(8)
	err := Encode("ab\x00", b, ForbidASCIIControl)
	wantKind(t, err, ProhibitedCharacter)
	if b.Len() != 0 {
		t.Errorf("sink holds % X after failure", b.ToArray())
	}
}
