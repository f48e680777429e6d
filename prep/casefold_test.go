package prep

import (
	"reflect"
	"testing"
)

func TestFoldLookup(t *testing.T) {
	tests := []struct {
		name string
		c    rune
		want []rune
	}{
		{"ASCIIUpper", 'A', []rune{'a'}},
		{"ASCIIUpperZ", 'Z', []rune{'z'}},
		{"LatinCapitalAGrave", 0x00C0, []rune{0x00E0}},
		{"SharpS", 0x00DF, []rune{0x0073, 0x0073}},
		{"Micro", 0x00B5, []rune{0x03BC}},
		{"DottedI", 0x0130, []rune{0x0069, 0x0307}},
		{"LongS", 0x017F, []rune{0x0073}},
		{"CapitalYDiaeresis", 0x0178, []rune{0x00FF}},
		{"TitlecaseDZCaron", 0x01C5, []rune{0x01C6}},
		{"GreekCapitalAlpha", 0x0391, []rune{0x03B1}},
		{"GreekFinalSigma", 0x03C2, []rune{0x03C3}},
		{"GreekIotaDialytika", 0x0390, []rune{0x03B9, 0x0308, 0x0301}},
		{"Ypogegrammeni", 0x0345, []rune{0x03B9}},
		{"CyrillicCapitalA", 0x0410, []rune{0x0430}},
		{"CyrillicCapitalIE", 0x0415, []rune{0x0435}},
		{"ArmenianCapitalAyb", 0x0531, []rune{0x0561}},
		{"ArmenianEchYiwn", 0x0587, []rune{0x0565, 0x0582}},
		{"LatinHWithLineBelow", 0x1E96, []rune{0x0068, 0x0331}},
		{"GreekAlphaWithPsili", 0x1F08, []rune{0x1F00}},
		{"GreekAlphaIotaSub", 0x1F88, []rune{0x1F00, 0x03B9}},
		{"GreekOmegaIotaSub", 0x1FFC, []rune{0x03C9, 0x03B9}},
		{"RupeeSign", 0x20A8, []rune{0x0072, 0x0073}},
		{"Kelvin", 0x212A, []rune{0x006B}},
		{"Angstrom", 0x212B, []rune{0x00E5}},
		{"Ohm", 0x2126, []rune{0x03C9}},
		{"RomanNine", 0x2168, []rune{0x2178}},
		{"CircledA", 0x24B6, []rune{0x24D0}},
		{"SquareKHz", 0x3391, []rune{0x006B, 0x0068, 0x007A}},
		{"FullwidthA", 0xFF21, []rune{0xFF41}},
		{"DeseretLongI", 0x10400, []rune{0x10428}},
		{"MathBoldA", 0x1D400, []rune{0x0061}},
		{"MathBoldZ", 0x1D419, []rune{0x007A}},
		{"MathScriptV", 0x1D4B1, []rune{0x0076}},
		{"MathThetaSymbol", 0x1D6B9, []rune{0x03B8}},
		{"MathGreekOmega", 0x1D6C0, []rune{0x03C9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := foldLookup(tt.c)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("foldLookup(%#U) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestFoldLookupNoMapping(t *testing.T) {
	for _, c := range []rune{'a', 'z', '0', ' ', 0x00F7, 0x0438, 0x05D0, 0x4F60, 0x1F0A1} {
		if got := foldLookup(c); got != nil {
			t.Errorf("foldLookup(%#U) = %v, want nil", c, got)
		}
	}
}

func TestFoldMapInvariants(t *testing.T) {
	for key, repl := range foldMap {
		if len(repl) == 0 {
			t.Errorf("foldMap[%#U] is empty", key)
		}
		for _, c := range repl {
			if isSurrogate(c) {
				t.Errorf("foldMap[%#U] contains surrogate %#U", key, c)
			}
			if c == key {
				t.Errorf("foldMap[%#U] maps to itself", key)
			}
		}
		// The fold target must itself be a fixed point of B.2: folding
		// twice never differs from folding once.
		for _, c := range repl {
			if again := foldLookup(c); again != nil {
				t.Errorf("foldMap[%#U] target %#U folds further to %v", key, c, again)
			}
		}
	}
}
