package text

import "strings"

// vowels is the vowel set used for syllable estimation, including the
// accented variants that occur in Dutch loanwords (café, reëel, beïnvloed).
const vowels = "aeiouáéíóúàèìòùäëïöüâêîôûy"

// CountSyllables estimates the number of syllables in a word by counting
// maximal runs of vowel characters. Consecutive vowels count as one
// syllable. A non-empty word always yields at least 1; the empty string
// yields 0. This is a heuristic, not a dictionary lookup.
func CountSyllables(word string) int {
	word = strings.TrimSpace(strings.ToLower(word))
	if word == "" {
		return 0
	}

	count := 0
	inRun := false
	for _, r := range word {
		if strings.ContainsRune(vowels, r) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}

	if count == 0 {
		return 1
	}
	return count
}
