package nlp

// SplitSkills partitions skills into those present in tokens and those absent.
// Matching is exact token equality, so a skill containing a space or punctuation
// that normalization strips (e.g. "data structures", "c++") is always absent.
// Both slices keep the order of skills.
func SplitSkills(tokens TokenSet, skills []string) (present, absent []string) {
	present = []string{}
	absent = []string{}
	for _, s := range skills {
		if tokens.Has(s) {
			present = append(present, s)
		} else {
			absent = append(absent, s)
		}
	}
	return present, absent
}

// CountPresent returns how many skills appear in tokens.
func CountPresent(tokens TokenSet, skills []string) int {
	n := 0
	for _, s := range skills {
		if tokens.Has(s) {
			n++
		}
	}
	return n
}
