package prep

// B.2 Mapping for case-folding used with NFKC.
//
// The table is RFC 3454 B.2: Unicode 3.2 case folding closed under
// compatibility normalization, lower-case target. Regular one-to-one runs
// are stored as stride/delta descriptors and expanded once at package
// init; the iota-subscript blocks of Greek Extended fold to base plus
// U+03B9 and are stored as base-offset descriptors; everything irregular
// or multi-scalar is listed explicitly. Applying B.2 before the
// normalizer keeps the lower-case target the RFC mandates, independent of
// any case behavior of the host NFKC.

// foldRun describes the keys lo, lo+stride, ..., hi, each mapping to
// key+delta.
type foldRun struct {
	lo, hi rune
	stride rune
	delta  rune
}

var foldRuns = []foldRun{
	{0x0041, 0x005A, 1, 32},
	{0x00C0, 0x00D6, 1, 32},
	{0x00D8, 0x00DE, 1, 32},
	{0x0100, 0x012E, 2, 1},
	{0x0132, 0x0136, 2, 1},
	{0x0139, 0x0147, 2, 1},
	{0x014A, 0x0176, 2, 1},
	{0x0179, 0x017D, 2, 1},
	{0x0182, 0x0184, 2, 1},
	{0x01A0, 0x01A4, 2, 1},
	{0x01B3, 0x01B5, 2, 1},
	{0x01CD, 0x01DB, 2, 1},
	{0x01DE, 0x01EE, 2, 1},
	{0x01F8, 0x021E, 2, 1},
	{0x0222, 0x0232, 2, 1},
	{0x0388, 0x038A, 1, 0x03AD - 0x0388},
	{0x0391, 0x03A1, 1, 32},
	{0x03A3, 0x03AB, 1, 32},
	{0x03DA, 0x03EE, 2, 1},
	{0x0400, 0x040F, 1, 80},
	{0x0410, 0x042F, 1, 32},
	{0x0460, 0x0480, 2, 1},
	{0x048A, 0x04BE, 2, 1},
	{0x04D0, 0x04F4, 2, 1},
	{0x0500, 0x050E, 2, 1},
	{0x0531, 0x0556, 1, 48},
	{0x1E00, 0x1E94, 2, 1},
	{0x1EA0, 0x1EF8, 2, 1},
	{0x1F08, 0x1F0F, 1, -8},
	{0x1F18, 0x1F1D, 1, -8},
	{0x1F28, 0x1F2F, 1, -8},
	{0x1F38, 0x1F3F, 1, -8},
	{0x1F48, 0x1F4D, 1, -8},
	{0x1F68, 0x1F6F, 1, -8},
	{0x1FC8, 0x1FCB, 1, 0x1F72 - 0x1FC8},
	{0x2160, 0x216F, 1, 16},
	{0x24B6, 0x24CF, 1, 26},
	{0xFF21, 0xFF3A, 1, 32},
	{0x10400, 0x10425, 1, 40},
	// Mathematical alphanumeric capitals fold to plain lower-case
	// letters; script, fraktur and double-struck have holes where the
	// letters live in the Letterlike Symbols block.
	{0x1D400, 0x1D419, 1, 0x0061 - 0x1D400},
	{0x1D434, 0x1D44D, 1, 0x0061 - 0x1D434},
	{0x1D468, 0x1D481, 1, 0x0061 - 0x1D468},
	{0x1D49C, 0x1D49C, 1, 0x0061 - 0x1D49C},
	{0x1D49E, 0x1D49F, 1, 0x0063 - 0x1D49E},
	{0x1D4A2, 0x1D4A2, 1, 0x0067 - 0x1D4A2},
	{0x1D4A5, 0x1D4A6, 1, 0x006A - 0x1D4A5},
	{0x1D4A9, 0x1D4AC, 1, 0x006D - 0x1D4A9},
	{0x1D4AE, 0x1D4B5, 1, 0x0073 - 0x1D4AE},
	{0x1D4D0, 0x1D4E9, 1, 0x0061 - 0x1D4D0},
	{0x1D504, 0x1D505, 1, 0x0061 - 0x1D504},
	{0x1D507, 0x1D50A, 1, 0x0064 - 0x1D507},
	{0x1D50D, 0x1D514, 1, 0x006A - 0x1D50D},
	{0x1D516, 0x1D51C, 1, 0x0073 - 0x1D516},
	{0x1D538, 0x1D539, 1, 0x0061 - 0x1D538},
	{0x1D53B, 0x1D53E, 1, 0x0064 - 0x1D53B},
	{0x1D540, 0x1D544, 1, 0x0069 - 0x1D540},
	{0x1D546, 0x1D546, 1, 0x006F - 0x1D546},
	{0x1D54A, 0x1D550, 1, 0x0073 - 0x1D54A},
	{0x1D56C, 0x1D585, 1, 0x0061 - 0x1D56C},
	{0x1D5A0, 0x1D5B9, 1, 0x0061 - 0x1D5A0},
	{0x1D5D4, 0x1D5ED, 1, 0x0061 - 0x1D5D4},
	{0x1D608, 0x1D621, 1, 0x0061 - 0x1D608},
	{0x1D63C, 0x1D655, 1, 0x0061 - 0x1D63C},
	{0x1D670, 0x1D689, 1, 0x0061 - 0x1D670},
	// Greek mathematical capitals, alpha..rho and sigma..omega around
	// the theta symbol.
	{0x1D6A8, 0x1D6B8, 1, 0x03B1 - 0x1D6A8},
	{0x1D6BA, 0x1D6C0, 1, 0x03C3 - 0x1D6BA},
	{0x1D6E2, 0x1D6F2, 1, 0x03B1 - 0x1D6E2},
	{0x1D6F4, 0x1D6FA, 1, 0x03C3 - 0x1D6F4},
	{0x1D71C, 0x1D72C, 1, 0x03B1 - 0x1D71C},
	{0x1D72E, 0x1D734, 1, 0x03C3 - 0x1D72E},
	{0x1D756, 0x1D766, 1, 0x03B1 - 0x1D756},
	{0x1D768, 0x1D76E, 1, 0x03C3 - 0x1D768},
	{0x1D790, 0x1D7A0, 1, 0x03B1 - 0x1D790},
	{0x1D7A2, 0x1D7A8, 1, 0x03C3 - 0x1D7A2},
}

// foldIotaRun describes the Greek Extended blocks whose keys fold to
// base+(key-lo) followed by U+03B9 (combining iota as a separate letter).
type foldIotaRun struct {
	lo, hi rune
	base   rune
}

var foldIotaRuns = []foldIotaRun{
	{0x1F80, 0x1F87, 0x1F00},
	{0x1F88, 0x1F8F, 0x1F00},
	{0x1F90, 0x1F97, 0x1F20},
	{0x1F98, 0x1F9F, 0x1F20},
	{0x1FA0, 0x1FA7, 0x1F60},
	{0x1FA8, 0x1FAF, 0x1F60},
}

// foldExceptions holds the B.2 entries that are not part of a regular
// run: multi-scalar replacements and isolated mappings.
var foldExceptions = map[rune][]rune{
	0x00B5:  {0x03BC},
	0x00DF:  {0x0073, 0x0073},
	0x0130:  {0x0069, 0x0307},
	0x0149:  {0x02BC, 0x006E},
	0x0178:  {0x00FF},
	0x017F:  {0x0073},
	0x0181:  {0x0253},
	0x0186:  {0x0254},
	0x0187:  {0x0188},
	0x0189:  {0x0256},
	0x018A:  {0x0257},
	0x018B:  {0x018C},
	0x018E:  {0x01DD},
	0x018F:  {0x0259},
	0x0190:  {0x025B},
	0x0191:  {0x0192},
	0x0193:  {0x0260},
	0x0194:  {0x0263},
	0x0196:  {0x0269},
	0x0197:  {0x0268},
	0x0198:  {0x0199},
	0x019C:  {0x026F},
	0x019D:  {0x0272},
	0x019F:  {0x0275},
	0x01A6:  {0x0280},
	0x01A7:  {0x01A8},
	0x01A9:  {0x0283},
	0x01AC:  {0x01AD},
	0x01AE:  {0x0288},
	0x01AF:  {0x01B0},
	0x01B1:  {0x028A},
	0x01B2:  {0x028B},
	0x01B7:  {0x0292},
	0x01B8:  {0x01B9},
	0x01BC:  {0x01BD},
	0x01C4:  {0x01C6},
	0x01C5:  {0x01C6},
	0x01C7:  {0x01C9},
	0x01C8:  {0x01C9},
	0x01CA:  {0x01CC},
	0x01CB:  {0x01CC},
	0x01F0:  {0x006A, 0x030C},
	0x01F1:  {0x01F3},
	0x01F2:  {0x01F3},
	0x01F4:  {0x01F5},
	0x01F6:  {0x0195},
	0x01F7:  {0x01BF},
	0x0345:  {0x03B9},
	0x037A:  {0x0020, 0x03B9},
	0x0386:  {0x03AC},
	0x038C:  {0x03CC},
	0x038E:  {0x03CD},
	0x038F:  {0x03CE},
	0x0390:  {0x03B9, 0x0308, 0x0301},
	0x03B0:  {0x03C5, 0x0308, 0x0301},
	0x03C2:  {0x03C3},
	0x03D0:  {0x03B2},
	0x03D1:  {0x03B8},
	0x03D2:  {0x03C5},
	0x03D3:  {0x03CD},
	0x03D4:  {0x03CB},
	0x03D5:  {0x03C6},
	0x03D6:  {0x03C0},
	0x03D8:  {0x03D9},
	0x03F0:  {0x03BA},
	0x03F1:  {0x03C1},
	0x03F2:  {0x03C3},
	0x03F4:  {0x03B8},
	0x03F5:  {0x03B5},
	0x04C1:  {0x04C2},
	0x04C3:  {0x04C4},
	0x04C7:  {0x04C8},
	0x04CB:  {0x04CC},
	0x04F8:  {0x04F9},
	0x0587:  {0x0565, 0x0582},
	0x1E96:  {0x0068, 0x0331},
	0x1E97:  {0x0074, 0x0308},
	0x1E98:  {0x0077, 0x030A},
	0x1E99:  {0x0079, 0x030A},
	0x1E9A:  {0x0061, 0x02BE},
	0x1E9B:  {0x1E61},
	0x1F50:  {0x03C5, 0x0313},
	0x1F52:  {0x03C5, 0x0313, 0x0300},
	0x1F54:  {0x03C5, 0x0313, 0x0301},
	0x1F56:  {0x03C5, 0x0313, 0x0342},
	0x1F59:  {0x1F51},
	0x1F5B:  {0x1F53},
	0x1F5D:  {0x1F55},
	0x1F5F:  {0x1F57},
	0x1FB2:  {0x1F70, 0x03B9},
	0x1FB3:  {0x03B1, 0x03B9},
	0x1FB4:  {0x03AC, 0x03B9},
	0x1FB6:  {0x03B1, 0x0342},
	0x1FB7:  {0x03B1, 0x0342, 0x03B9},
	0x1FB8:  {0x1FB0},
	0x1FB9:  {0x1FB1},
	0x1FBA:  {0x1F70},
	0x1FBB:  {0x1F71},
	0x1FBC:  {0x03B1, 0x03B9},
	0x1FBE:  {0x03B9},
	0x1FC2:  {0x1F74, 0x03B9},
	0x1FC3:  {0x03B7, 0x03B9},
	0x1FC4:  {0x03AE, 0x03B9},
	0x1FC6:  {0x03B7, 0x0342},
	0x1FC7:  {0x03B7, 0x0342, 0x03B9},
	0x1FCC:  {0x03B7, 0x03B9},
	0x1FD2:  {0x03B9, 0x0308, 0x0300},
	0x1FD3:  {0x03B9, 0x0308, 0x0301},
	0x1FD6:  {0x03B9, 0x0342},
	0x1FD7:  {0x03B9, 0x0308, 0x0342},
	0x1FD8:  {0x1FD0},
	0x1FD9:  {0x1FD1},
	0x1FDA:  {0x1F76},
	0x1FDB:  {0x1F77},
	0x1FE2:  {0x03C5, 0x0308, 0x0300},
	0x1FE3:  {0x03C5, 0x0308, 0x0301},
	0x1FE4:  {0x03C1, 0x0313},
	0x1FE6:  {0x03C5, 0x0342},
	0x1FE7:  {0x03C5, 0x0308, 0x0342},
	0x1FE8:  {0x1FE0},
	0x1FE9:  {0x1FE1},
	0x1FEA:  {0x1F7A},
	0x1FEB:  {0x1F7B},
	0x1FEC:  {0x1FE5},
	0x1FF2:  {0x1F7C, 0x03B9},
	0x1FF3:  {0x03C9, 0x03B9},
	0x1FF4:  {0x03CE, 0x03B9},
	0x1FF6:  {0x03C9, 0x0342},
	0x1FF7:  {0x03C9, 0x0342, 0x03B9},
	0x1FF8:  {0x1F78},
	0x1FF9:  {0x1F79},
	0x1FFA:  {0x1F7C},
	0x1FFB:  {0x1F7D},
	0x1FFC:  {0x03C9, 0x03B9},
	0x20A8:  {0x0072, 0x0073},
	0x2102:  {0x0063},
	0x2103:  {0x00B0, 0x0063},
	0x2107:  {0x025B},
	0x2109:  {0x00B0, 0x0066},
	0x210B:  {0x0068},
	0x210C:  {0x0068},
	0x210D:  {0x0068},
	0x2110:  {0x0069},
	0x2111:  {0x0069},
	0x2112:  {0x006C},
	0x2115:  {0x006E},
	0x2116:  {0x006E, 0x006F},
	0x2119:  {0x0070},
	0x211A:  {0x0071},
	0x211B:  {0x0072},
	0x211C:  {0x0072},
	0x211D:  {0x0072},
	0x2120:  {0x0073, 0x006D},
	0x2121:  {0x0074, 0x0065, 0x006C},
	0x2122:  {0x0074, 0x006D},
	0x2124:  {0x007A},
	0x2126:  {0x03C9},
	0x2128:  {0x007A},
	0x212A:  {0x006B},
	0x212B:  {0x00E5},
	0x212C:  {0x0062},
	0x212D:  {0x0063},
	0x2130:  {0x0065},
	0x2131:  {0x0066},
	0x2133:  {0x006D},
	0x213E:  {0x03B3},
	0x213F:  {0x03C0},
	0x2145:  {0x0064},
	0x3371:  {0x0068, 0x0070, 0x0061},
	0x3373:  {0x0061, 0x0075},
	0x3375:  {0x006F, 0x0076},
	0x3380:  {0x0070, 0x0061},
	0x3381:  {0x006E, 0x0061},
	0x3382:  {0x03BC, 0x0061},
	0x3383:  {0x006D, 0x0061},
	0x3384:  {0x006B, 0x0061},
	0x3385:  {0x006B, 0x0062},
	0x3386:  {0x006D, 0x0062},
	0x3387:  {0x0067, 0x0062},
	0x338A:  {0x0070, 0x0066},
	0x338B:  {0x006E, 0x0066},
	0x338C:  {0x03BC, 0x0066},
	0x3390:  {0x0068, 0x007A},
	0x3391:  {0x006B, 0x0068, 0x007A},
	0x3392:  {0x006D, 0x0068, 0x007A},
	0x3393:  {0x0067, 0x0068, 0x007A},
	0x3394:  {0x0074, 0x0068, 0x007A},
	0x33A9:  {0x0070, 0x0061},
	0x33AA:  {0x006B, 0x0070, 0x0061},
	0x33AB:  {0x006D, 0x0070, 0x0061},
	0x33AC:  {0x0067, 0x0070, 0x0061},
	0x33B4:  {0x0070, 0x0076},
	0x33B5:  {0x006E, 0x0076},
	0x33B6:  {0x03BC, 0x0076},
	0x33B7:  {0x006D, 0x0076},
	0x33B8:  {0x006B, 0x0076},
	0x33B9:  {0x006D, 0x0076},
	0x33BA:  {0x0070, 0x0077},
	0x33BB:  {0x006E, 0x0077},
	0x33BC:  {0x03BC, 0x0077},
	0x33BD:  {0x006D, 0x0077},
	0x33BE:  {0x006B, 0x0077},
	0x33BF:  {0x006D, 0x0077},
	0x33C0:  {0x006B, 0x03C9},
	0x33C1:  {0x006D, 0x03C9},
	0x33C3:  {0x0062, 0x0071},
	0x33C6:  {0x0063, 0x2215, 0x006B, 0x0067},
	0x33C7:  {0x0063, 0x006F, 0x002E},
	0x33C8:  {0x0064, 0x0062},
	0x33C9:  {0x0067, 0x0079},
	0x33CB:  {0x0068, 0x0070},
	0x33CD:  {0x006B, 0x006B},
	0x33D7:  {0x0070, 0x0068},
	0x33D9:  {0x0070, 0x0070, 0x006D},
	0x33DA:  {0x0070, 0x0072},
	0x33DC:  {0x0073, 0x0076},
	0x33DD:  {0x0077, 0x0062},
	0x1D6B9: {0x03B8},
	0x1D6F3: {0x03B8},
	0x1D72D: {0x03B8},
	0x1D767: {0x03B8},
	0x1D7A1: {0x03B8},
}

// foldMap is the expanded B.2 lookup, built once at init and immutable
// thereafter.
var foldMap map[rune][]rune

func init() {
	n := len(foldExceptions)
	for _, r := range foldRuns {
		n += int((r.hi-r.lo)/r.stride) + 1
	}
	foldMap = make(map[rune][]rune, n)
	for _, r := range foldRuns {
		for c := r.lo; c <= r.hi; c += r.stride {
			foldMap[c] = []rune{c + r.delta}
		}
	}
	for _, r := range foldIotaRuns {
		for c := r.lo; c <= r.hi; c++ {
			foldMap[c] = []rune{r.base + (c - r.lo), 0x03B9}
		}
	}
	for c, repl := range foldExceptions {
		foldMap[c] = repl
	}
}

// foldLookup returns the B.2 replacement sequence for c, or nil when c
// has no mapping.
func foldLookup(c rune) []rune {
	return foldMap[c]
}
