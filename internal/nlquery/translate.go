// Package nlquery turns a small set of English phrasings into query filters.
//
// It is an ordered decision table, not a language model. The rules run in
// this order against the lowercased query:
//
//  1. "single word palindromic strings"      word_count=1, is_palindrome=true
//  2. otherwise "single word"                word_count=1, and when "longer than"
//     is present the following integer N sets min_length=N+1
//  3. "longer than N characters"             min_length=N+1
//  4. "palindromic strings"                  is_palindrome=true
//  5. "strings containing the letter X"      contains_character=X
//  6. "contains a vowel"                     contains_vowel=true
//
// Rules 3 to 6 are evaluated whether or not rule 1 or 2 matched.
package nlquery

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"string-analyzer/internal/query"
	"string-analyzer/internal/shared/errors"
)

const (
	phraseSingleWordPalindromes = "single word palindromic strings"
	phraseSingleWord            = "single word"
	phraseLongerThan            = "longer than"
	phrasePalindromes           = "palindromic strings"
	phraseContainsVowel         = "contains a vowel"
)

var (
	ErrUnsupportedQuery = errors.Mark(errors.New("unsupported query"), errors.ErrInvalidArgument)
	ErrUnparsableLength = errors.Mark(errors.New("cannot parse length"), errors.ErrInvalidArgument)
)

var (
	longerThanPattern = regexp.MustCompile(`longer than (\d+) characters`)
	letterPattern     = regexp.MustCompile(`strings containing the letter ([a-z])`)
)

// Examples lists phrasings the translator understands; used in error hints.
var Examples = []string{
	"all single word palindromic strings",
	"single word strings longer than 3 characters",
	"strings longer than 10 characters",
	"palindromic strings",
	"strings containing the letter z",
	"strings that contains a vowel",
}

// Translate maps q to a filter. A blank q yields an empty filter, meaning
// "everything". A non-blank q that no rule recognizes is an error.
func Translate(q string) (query.Filter, error) {
	var f query.Filter
	if strings.TrimSpace(q) == "" {
		return f, nil
	}
	lowered := strings.ToLower(q)

	if strings.Contains(lowered, phraseSingleWordPalindromes) {
		f.WordCount = query.Int(1)
		f.IsPalindrome = query.Bool(true)
	} else if strings.Contains(lowered, phraseSingleWord) {
		f.WordCount = query.Int(1)
		if strings.Contains(lowered, phraseLongerThan) {
			n, err := lengthAfterLongerThan(lowered)
			if err == nil {
				n, err = minLengthAbove(n)
			}
			if err != nil {
				return query.Filter{}, errors.WithHintf(err,
					"specify a whole number, for example %q", "single word strings longer than 3 characters")
			}
			f.MinLength = query.Int(n)
		}
	}

	if m := longerThanPattern.FindStringSubmatch(lowered); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return query.Filter{}, errors.Wrapf(ErrUnparsableLength, "%q", m[1])
		}
		if n, err = minLengthAbove(n); err != nil {
			return query.Filter{}, err
		}
		f.MinLength = query.Int(n)
	}

	if strings.Contains(lowered, phrasePalindromes) {
		f.IsPalindrome = query.Bool(true)
	}

	if m := letterPattern.FindStringSubmatch(lowered); m != nil {
		f.ContainsCharacter = m[1]
	}

	if strings.Contains(lowered, phraseContainsVowel) {
		f.ContainsVowel = true
	}

	if f.IsEmpty() {
		return query.Filter{}, errors.WithHintf(
			errors.Wrapf(ErrUnsupportedQuery, "%q", q),
			"supported phrasings include: %s", strings.Join(Examples, "; "),
		)
	}
	return f, nil
}

// lengthAfterLongerThan reads the integer between "longer than" and an
// optional trailing "characters".
func lengthAfterLongerThan(lowered string) (int, error) {
	_, rest, _ := strings.Cut(lowered, phraseLongerThan)
	segment, _, _ := strings.Cut(rest, " characters")
	raw := strings.TrimSpace(segment)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(ErrUnparsableLength, "%q", raw)
	}
	return n, nil
}

// minLengthAbove returns the smallest length strictly greater than n.
func minLengthAbove(n int) (int, error) {
	if n == math.MaxInt {
		return 0, errors.Wrapf(ErrUnparsableLength, "%d has no successor", n)
	}
	return n + 1, nil
}
