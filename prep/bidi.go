package prep

// checkBidi enforces RFC 3454 section 6 requirements 2 and 3 over the
// mapped and normalized sequence:
//
//   - a sequence containing any RandALCat character (table D.1) must not
//     contain any LCat character (table D.2), and
//   - such a sequence must both begin and end with a RandALCat character.
//
// A sequence with no RandALCat character is unconstrained; an empty
// sequence passes trivially.
func checkBidi(seq []rune) error {
	var hasRandAL, hasL, firstRandAL, lastRandAL bool
	var firstL rune
	for i, c := range seq {
		randAL := tableD1.contains(c)
		if randAL {
			hasRandAL = true
		} else if !hasL && tableD2.contains(c) {
			hasL = true
			firstL = c
		}
		if i == 0 {
			firstRandAL = randAL
		}
		lastRandAL = randAL
	}
	if !hasRandAL {
		return nil
	}
	if hasL {
		return bidiError(firstL)
	}
	if !firstRandAL {
		return bidiError(seq[0])
	}
	if !lastRandAL {
		return bidiError(seq[len(seq)-1])
	}
	return nil
}
