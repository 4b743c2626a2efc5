package records

import "context"

// Repo defines storage operations for analysis records.
type Repo interface {
	Insert(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	FindByText(ctx context.Context, text string) (Record, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Record, error)
	Count(ctx context.Context) (int, error)
}
