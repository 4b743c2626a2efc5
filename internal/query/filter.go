// Package query filters analysis records with conjunctive predicates.
package query

import (
	"strings"
	"unicode/utf8"

	"string-analyzer/internal/analyzer"
	"string-analyzer/internal/records"
	"string-analyzer/internal/shared/errors"
)

var (
	ErrInvalidRange     = errors.Mark(errors.New("min_length cannot be greater than max_length"), errors.ErrInvalidArgument)
	ErrInvalidCharacter = errors.Mark(errors.New("contains_character must be a single character"), errors.ErrInvalidArgument)
)

const vowels = "aeiou"

// Filter is a set of optional constraints. Unset fields impose nothing; a
// record matches when every set field holds.
type Filter struct {
	IsPalindrome      *bool  `json:"is_palindrome,omitempty"`
	MinLength         *int   `json:"min_length,omitempty"`
	MaxLength         *int   `json:"max_length,omitempty"`
	WordCount         *int   `json:"word_count,omitempty"`
	ContainsCharacter string `json:"contains_character,omitempty"`
	ContainsVowel     bool   `json:"contains_vowel,omitempty"`
}

// IsEmpty reports whether no constraint is set.
func (f Filter) IsEmpty() bool {
	return f.IsPalindrome == nil &&
		f.MinLength == nil &&
		f.MaxLength == nil &&
		f.WordCount == nil &&
		f.ContainsCharacter == "" &&
		!f.ContainsVowel
}

// Validate checks the filter before any record is examined.
func (f Filter) Validate() error {
	if f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength {
		return errors.Wrapf(ErrInvalidRange, "min_length=%d max_length=%d", *f.MinLength, *f.MaxLength)
	}
	if f.ContainsCharacter != "" && utf8.RuneCountInString(f.ContainsCharacter) != 1 {
		return errors.Wrapf(ErrInvalidCharacter, "got %q", f.ContainsCharacter)
	}
	return nil
}

// Match reports whether rec satisfies every set field. It does not validate.
func (f Filter) Match(rec records.Record) bool {
	props := rec.Properties
	if f.IsPalindrome != nil && props.IsPalindrome != *f.IsPalindrome {
		return false
	}
	if f.MinLength != nil && props.Length < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && props.Length > *f.MaxLength {
		return false
	}
	if f.WordCount != nil && props.WordCount != *f.WordCount {
		return false
	}
	if f.ContainsCharacter == "" && !f.ContainsVowel {
		return true
	}
	lowered := analyzer.Lower(rec.Value)
	if f.ContainsCharacter != "" && !strings.Contains(lowered, analyzer.Lower(f.ContainsCharacter)) {
		return false
	}
	if f.ContainsVowel && !strings.ContainsAny(lowered, vowels) {
		return false
	}
	return true
}

// Apply validates f and returns the records matching it, in input order.
func Apply(recs []records.Record, f Filter) ([]records.Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	out := make([]records.Record, 0, len(recs))
	for _, rec := range recs {
		if f.Match(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Bool returns a pointer to v, for building filters.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for building filters.
func Int(v int) *int { return &v }
