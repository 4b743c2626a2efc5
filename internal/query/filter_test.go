package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"string-analyzer/internal/records"
	"string-analyzer/internal/shared/errors"
)

func sample() []records.Record {
	now := time.Date(2025, time.August, 27, 10, 0, 0, 0, time.UTC)
	texts := []string{"racecar", "hello world", "Noon", "rhythm", "a", "Zebra crossing"}
	out := make([]records.Record, 0, len(texts))
	for _, text := range texts {
		out = append(out, records.New(text, now))
	}
	return out
}

func values(recs []records.Record) []string {
	out := make([]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Value)
	}
	return out
}

func TestApplyEmptyFilterReturnsEverything(t *testing.T) {
	got, err := Apply(sample(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, values(sample()), values(got))
}

func TestApplyFields(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "palindromes", filter: Filter{IsPalindrome: Bool(true)}, want: []string{"racecar", "Noon", "a"}},
		{name: "non palindromes", filter: Filter{IsPalindrome: Bool(false)}, want: []string{"hello world", "rhythm", "Zebra crossing"}},
		{name: "min length inclusive", filter: Filter{MinLength: Int(7)}, want: []string{"racecar", "hello world", "Zebra crossing"}},
		{name: "max length inclusive", filter: Filter{MaxLength: Int(4)}, want: []string{"Noon", "a"}},
		{name: "length window", filter: Filter{MinLength: Int(4), MaxLength: Int(7)}, want: []string{"racecar", "Noon", "rhythm"}},
		{name: "equal bounds", filter: Filter{MinLength: Int(1), MaxLength: Int(1)}, want: []string{"a"}},
		{name: "word count", filter: Filter{WordCount: Int(2)}, want: []string{"hello world", "Zebra crossing"}},
		{name: "contains character ignores case", filter: Filter{ContainsCharacter: "z"}, want: []string{"Zebra crossing"}},
		{name: "contains upper character", filter: Filter{ContainsCharacter: "N"}, want: []string{"Noon", "Zebra crossing"}},
		{name: "contains vowel", filter: Filter{ContainsVowel: true}, want: []string{"racecar", "hello world", "Noon", "a", "Zebra crossing"}},
		{name: "conjunction", filter: Filter{IsPalindrome: Bool(true), WordCount: Int(1), MinLength: Int(2)}, want: []string{"racecar", "Noon"}},
		{name: "no match", filter: Filter{WordCount: Int(5)}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(sample(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values(got))
		})
	}
}

func TestApplyRejectsInvertedRange(t *testing.T) {
	_, err := Apply(sample(), Filter{MinLength: Int(5), MaxLength: Int(2)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))
	assert.Equal(t, errors.KindInvalidArgument, errors.KindOf(err))
}

func TestApplyRejectsInvertedRangeOnEmptyInput(t *testing.T) {
	_, err := Apply(nil, Filter{MinLength: Int(5), MaxLength: Int(2)})
	assert.Equal(t, errors.KindInvalidArgument, errors.KindOf(err))
}

func TestValidateContainsCharacter(t *testing.T) {
	assert.NoError(t, Filter{ContainsCharacter: "é"}.Validate())

	err := Filter{ContainsCharacter: "ab"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCharacter))
}

func TestContainsCharacterUsesUnicodeLowering(t *testing.T) {
	now := time.Date(2025, time.August, 27, 10, 0, 0, 0, time.UTC)
	recs := []records.Record{records.New("ΟΔΟΣ", now), records.New("hello", now)}

	// Full lowering turns a word-final capital sigma into ς.
	got, err := Apply(recs, Filter{ContainsCharacter: "ς"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ΟΔΟΣ"}, values(got))

	got, err = Apply(recs, Filter{ContainsCharacter: "Δ"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ΟΔΟΣ"}, values(got))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Filter{}.IsEmpty())
	assert.False(t, Filter{ContainsVowel: true}.IsEmpty())
	assert.False(t, Filter{MaxLength: Int(0)}.IsEmpty())
}
