package records

import (
	"time"

	"string-analyzer/internal/analyzer"
)

// Record is the stored analysis of one text. Records are write-once.
type Record struct {
	ID         string
	Value      string
	Properties analyzer.Properties
	CreatedAt  time.Time
}

// New analyzes text and builds the record created at the given instant.
func New(text string, createdAt time.Time) Record {
	props := analyzer.Analyze(text)
	return Record{
		ID:         props.SHA256Hash,
		Value:      text,
		Properties: props,
		CreatedAt:  createdAt.UTC(),
	}
}

func (r Record) clone() Record {
	r.Properties = r.Properties.Clone()
	return r
}
