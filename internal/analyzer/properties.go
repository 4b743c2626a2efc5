// Package analyzer derives the descriptive properties of a text string.
//
// All functions are pure: they never mutate their input and always succeed.
// Characters are Unicode code points; invalid UTF-8 bytes count as U+FFFD.
package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Properties holds everything computed for one text.
type Properties struct {
	Length                int            `json:"length"`
	IsPalindrome          bool           `json:"is_palindrome"`
	UniqueCharacters      int            `json:"unique_characters"`
	WordCount             int            `json:"word_count"`
	SHA256Hash            string         `json:"sha256_hash"`
	CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
}

// Clone returns a deep copy so the frequency map can be handed out safely.
func (p Properties) Clone() Properties {
	out := p
	out.CharacterFrequencyMap = make(map[string]int, len(p.CharacterFrequencyMap))
	for k, v := range p.CharacterFrequencyMap {
		out.CharacterFrequencyMap[k] = v
	}
	return out
}

// Analyze computes all properties of text.
func Analyze(text string) Properties {
	return Properties{
		Length:                Length(text),
		IsPalindrome:          IsPalindrome(text),
		UniqueCharacters:      UniqueCharacters(text),
		WordCount:             WordCount(text),
		SHA256Hash:            ID(text),
		CharacterFrequencyMap: CharacterFrequency(text),
	}
}

// Length counts code points, not bytes.
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

// IsPalindrome reports whether the lowercase form of text reads the same in
// both directions. Whitespace and punctuation are significant.
func IsPalindrome(text string) bool {
	runes := []rune(Lower(text))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// UniqueCharacters counts distinct code points, case-sensitively.
func UniqueCharacters(text string) int {
	seen := make(map[rune]struct{})
	for _, r := range text {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// WordCount counts whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.FieldsFunc(text, isWordSeparator))
}

// CharacterFrequency maps each distinct code point to its number of
// occurrences. The result is never nil.
func CharacterFrequency(text string) map[string]int {
	freq := make(map[string]int)
	for _, r := range text {
		freq[string(r)]++
	}
	return freq
}

// Lower applies full Unicode lowercasing (special casing included).
func Lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// U+001C..U+001F are field separators that also split words.
func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
