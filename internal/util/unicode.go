package util

import "unicode"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Host editors report selection offsets in UTF-16 code units. Characters
// outside the BMP (codepoint > 0xFFFF) take 2 code units; all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// IsSpace reports whether r is trimmed as white space.
// U+FEFF is included because host editors trim it along with Unicode spaces.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// TrimLeft returns runes without leading white space. The result shares
// storage with runes.
func TrimLeft(runes []rune) []rune {
	i := 0
	for i < len(runes) && IsSpace(runes[i]) {
		i++
	}
	return runes[i:]
}

// TrimRight returns runes without trailing white space.
func TrimRight(runes []rune) []rune {
	j := len(runes)
	for j > 0 && IsSpace(runes[j-1]) {
		j--
	}
	return runes[:j]
}

// Trim returns runes without leading and trailing white space.
func Trim(runes []rune) []rune {
	return TrimRight(TrimLeft(runes))
}

// IsBlank reports whether text is empty or white space only.
func IsBlank(text string) bool {
	for _, r := range text {
		if !IsSpace(r) {
			return false
		}
	}
	return true
}

// Concat joins rune slices into a freshly allocated slice so that later
// appends never write into the storage of an input.
func Concat(parts ...[]rune) []rune {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]rune, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
