// Package analyses exposes the string analysis use cases: analyze and store,
// look up, list with structured or natural-language filters, and delete.
package analyses

import (
	"context"
	"time"

	"string-analyzer/internal/analyzer"
	"string-analyzer/internal/nlquery"
	"string-analyzer/internal/query"
	"string-analyzer/internal/records"
	"string-analyzer/internal/shared/errors"
	"string-analyzer/internal/shared/metrics"
	"string-analyzer/internal/shared/telemetry"
)

// Service contains business logic for string analyses.
type Service struct {
	Repo records.Repo
	Now  func() time.Time
}

// NewService constructs a Service backed by repo.
func NewService(repo records.Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// NaturalResult is the outcome of a natural-language listing.
type NaturalResult struct {
	Records []records.Record
	Filter  query.Filter
}

// Analyze computes the properties of text and stores the record. Analyzing
// text that is already stored fails with a conflict and stores nothing.
func (s *Service) Analyze(ctx context.Context, text string) (records.Record, error) {
	start := time.Now()
	rec := records.New(text, s.now())
	metrics.ObserveAnalysisDuration(time.Since(start))

	stored, err := s.Repo.Insert(ctx, rec)
	if err != nil {
		if errors.Is(err, records.ErrConflict) {
			metrics.IncStringsConflicts()
		}
		return records.Record{}, err
	}
	metrics.IncStringsCreated()
	telemetry.Info("string.created", map[string]any{
		"id":         stored.ID,
		"length":     stored.Properties.Length,
		"palindrome": stored.Properties.IsPalindrome,
	})
	return stored, nil
}

// Get returns the record with the given identifier, in any letter case.
func (s *Service) Get(ctx context.Context, id string) (records.Record, error) {
	return s.Repo.GetByID(ctx, analyzer.NormalizeID(id))
}

// GetByText returns the record whose value is exactly text.
func (s *Service) GetByText(ctx context.Context, text string) (records.Record, error) {
	return s.Repo.FindByText(ctx, text)
}

// Delete removes the record with the given identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = analyzer.NormalizeID(id)
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.IncStringsDeleted()
	telemetry.Info("string.deleted", map[string]any{"id": id})
	return nil
}

// DeleteByText removes the record whose value is exactly text and returns its
// identifier.
func (s *Service) DeleteByText(ctx context.Context, text string) (string, error) {
	rec, err := s.Repo.FindByText(ctx, text)
	if err != nil {
		return "", err
	}
	if err := s.Delete(ctx, rec.ID); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// List returns the stored records matching f, in insertion order. The filter
// is validated before the store is read.
func (s *Service) List(ctx context.Context, f query.Filter) ([]records.Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	metrics.IncStringsQueries()
	return query.Apply(all, f)
}

// ListNatural translates q into a filter and lists the matching records. A
// blank q lists everything.
func (s *Service) ListNatural(ctx context.Context, q string) (NaturalResult, error) {
	f, err := nlquery.Translate(q)
	if err != nil {
		metrics.IncNLQueriesRejected()
		return NaturalResult{}, err
	}
	recs, err := s.List(ctx, f)
	if err != nil {
		return NaturalResult{}, err
	}
	return NaturalResult{Records: recs, Filter: f}, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
